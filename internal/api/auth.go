package api

import (
	"net/http"                    // HTTP status codes
	"tokenfolio/internal/service" // Domain service
	"tokenfolio/internal/utils"   // JWT utility functions

	"github.com/gin-gonic/gin" // Gin web framework
)

// LoginRequest carries a credentials pair
type LoginRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// AuthResponse carries an issued token
type AuthResponse struct {
	Token string `json:"token"` // JWT token
}

// LoginHandler authenticates a user and returns a JWT token
func LoginHandler(svc *service.Service, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindingError(c, err, "login")
			return
		}
		user, err := svc.Authenticate(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			respondError(c, err, "Error logging in")
			return
		}
		// Generate JWT token
		token, err := utils.GenerateJWT(user.ID, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate token"})
			return
		}
		c.JSON(http.StatusOK, AuthResponse{Token: token})
	}
}

// MeHandler returns the authenticated user, password stripped.
func MeHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Set by the JWT middleware
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		user, err := svc.GetUser(c.Request.Context(), userID.(int))
		if err != nil {
			respondError(c, err, "Error fetching user")
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
