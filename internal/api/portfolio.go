package api

import (
	"net/http"                    // HTTP status codes
	"tokenfolio/internal/metrics" // Portfolio aggregates
	"tokenfolio/internal/service" // Domain service
	"tokenfolio/internal/utils"   // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// GetUserPortfolioHandler returns a user's portfolio summary, cached for a
// minute and invalidated by every asset write touching that user.
func GetUserPortfolioHandler(svc *service.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := pathID(c, "id", "user")
		if !ok {
			return
		}
		ctx := c.Request.Context()
		key := utils.PortfolioCacheKey(userID)
		var cached metrics.Summary
		// Try to get from cache
		if found, err := utils.GetCache(ctx, rdb, key, &cached); err == nil && found {
			c.JSON(http.StatusOK, cached)
			return
		}
		if _, err := svc.GetUser(ctx, userID); err != nil {
			respondError(c, err, "Error fetching portfolio")
			return
		}
		assets, err := svc.ListAssetsByUser(ctx, userID)
		if err != nil {
			respondError(c, err, "Error fetching portfolio")
			return
		}
		summary := metrics.Summarize(assets)
		_ = utils.SetCache(ctx, rdb, key, summary, listCacheTTL)
		c.JSON(http.StatusOK, summary)
	}
}
