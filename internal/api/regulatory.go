package api

import (
	"net/http"                    // HTTP status codes
	"tokenfolio/internal/service" // Domain service

	"github.com/gin-gonic/gin" // Gin web framework
)

// ListRegulatoryUpdatesHandler returns every regulatory update, expired ones
// included.
func ListRegulatoryUpdatesHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		updates, err := svc.ListRegulatoryUpdates(c.Request.Context())
		if err != nil {
			respondError(c, err, "Error fetching regulatory updates")
			return
		}
		c.JSON(http.StatusOK, updates)
	}
}

// GetRegulatoryUpdateHandler returns one regulatory update by id.
func GetRegulatoryUpdateHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id", "update")
		if !ok {
			return
		}
		update, err := svc.GetRegulatoryUpdate(c.Request.Context(), id)
		if err != nil {
			respondError(c, err, "Error fetching regulatory update")
			return
		}
		c.JSON(http.StatusOK, update)
	}
}

// ListRegulatoryUpdatesByJurisdictionHandler filters updates by exact
// jurisdiction match. An unknown jurisdiction yields an empty list.
func ListRegulatoryUpdatesByJurisdictionHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		jurisdiction := c.Param("jurisdiction")
		updates, err := svc.ListRegulatoryUpdatesByJurisdiction(c.Request.Context(), jurisdiction)
		if err != nil {
			respondError(c, err, "Error fetching regulatory updates")
			return
		}
		c.JSON(http.StatusOK, updates)
	}
}
