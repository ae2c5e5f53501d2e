package api

import (
	"net/http"                    // HTTP status codes
	"tokenfolio/internal/domain"  // Importing domain models
	"tokenfolio/internal/service" // Domain service

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// RegisterRequest carries a user registration body
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`    // Username must be provided
	Password string `json:"password" binding:"required"`    // Password must be provided
	Email    string `json:"email" binding:"required,email"` // Email must be provided and well formed
	FullName string `json:"fullName" binding:"required"`    // Display name must be provided
	Company  string `json:"company"`                        // Optional company
	Plan     string `json:"plan"`                           // Optional plan, defaults to Starter
}

// RegisterHandler creates a user account. The password is hashed by the
// service and never appears in any response body.
func RegisterHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindingError(c, err, "user")
			return
		}
		user := domain.User{
			Username: req.Username,
			Password: req.Password,
			Email:    req.Email,
			FullName: req.FullName,
			Company:  req.Company,
			Plan:     req.Plan,
		}
		if err := svc.CreateUser(c.Request.Context(), &user); err != nil {
			respondError(c, err, "Error creating user")
			return
		}
		// Log successful registration
		logrus.WithFields(logrus.Fields{
			"user_id":  user.ID,
			"username": user.Username,
		}).Info("User registered")
		c.JSON(http.StatusCreated, user) // Password is json:"-"
	}
}

// GetUserHandler returns a user by id, password stripped.
func GetUserHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id", "user")
		if !ok {
			return
		}
		user, err := svc.GetUser(c.Request.Context(), id)
		if err != nil {
			respondError(c, err, "Error fetching user")
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
