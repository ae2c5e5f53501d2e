package api

import (
	"tokenfolio/internal/middleware" // JWT middleware
	"tokenfolio/internal/service"    // Domain service
	"tokenfolio/internal/tokenize"   // Tokenization pipeline

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// SetupRouter wires every route under /api. A nil redis client disables
// caching without changing any route's behavior.
func SetupRouter(svc *service.Service, pipeline *tokenize.Pipeline, rdb *redis.Client, jwtSecret string) *gin.Engine {
	r := gin.Default() // Gin router instance

	api := r.Group("/api")

	// User routes
	api.POST("/users", RegisterHandler(svc))                        // Registration endpoint
	api.GET("/users/:id", GetUserHandler(svc))                      // Single user endpoint
	api.GET("/users/:id/assets", ListUserAssetsHandler(svc))        // User's assets endpoint
	api.GET("/users/:id/transactions", ListUserTransactionsHandler(svc)) // User's transactions endpoint
	api.GET("/users/:id/portfolio", GetUserPortfolioHandler(svc, rdb))   // Portfolio summary endpoint

	// Auth routes
	api.POST("/auth/login", LoginHandler(svc, jwtSecret)) // Login endpoint
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.JWTAuthMiddleware(jwtSecret))
	authGroup.GET("/me", MeHandler(svc)) // Current user endpoint

	// Asset routes
	api.GET("/assets", ListAssetsHandler(svc, rdb))                      // List assets endpoint
	api.POST("/assets", CreateAssetHandler(svc, rdb))                    // Create asset endpoint
	api.GET("/assets/:id", GetAssetHandler(svc))                         // Single asset endpoint
	api.PATCH("/assets/:id", UpdateAssetHandler(svc, rdb))               // Update asset endpoint
	api.DELETE("/assets/:id", DeleteAssetHandler(svc, rdb))              // Delete asset endpoint
	api.GET("/assets/:id/compliance", GetAssetComplianceHandler(svc))    // Asset compliance endpoint
	api.GET("/assets/:id/transactions", ListAssetTransactionsHandler(svc)) // Asset transactions endpoint

	// Compliance routes
	api.POST("/compliance", CreateComplianceHandler(svc))       // Create compliance endpoint
	api.PATCH("/compliance/:id", UpdateComplianceHandler(svc)) // Update compliance endpoint

	// Transaction routes
	api.GET("/transactions", ListTransactionsHandler(svc, rdb))     // List transactions endpoint
	api.POST("/transactions", CreateTransactionHandler(svc, rdb))   // Create transaction endpoint
	api.PATCH("/transactions/:id", UpdateTransactionHandler(svc, rdb)) // Update transaction endpoint

	// Regulatory update routes; the static jurisdiction segment must be
	// registered alongside the :id parameter.
	api.GET("/regulatory-updates", ListRegulatoryUpdatesHandler(svc))                                        // List updates endpoint
	api.GET("/regulatory-updates/jurisdiction/:jurisdiction", ListRegulatoryUpdatesByJurisdictionHandler(svc)) // Updates by jurisdiction endpoint
	api.GET("/regulatory-updates/:id", GetRegulatoryUpdateHandler(svc))                                      // Single update endpoint

	// Tokenization wizard endpoint
	api.POST("/tokenize", TokenizeHandler(svc, pipeline, rdb))

	return r
}
