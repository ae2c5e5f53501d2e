package api

import (
	"context"                     // Context for Redis operations
	"net/http"                    // HTTP status codes
	"time"                        // Cache TTLs
	"tokenfolio/internal/domain"  // Importing domain models
	"tokenfolio/internal/service" // Domain service
	"tokenfolio/internal/utils"   // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

const listCacheTTL = 60 * time.Second

// CreateAssetRequest carries an asset creation body. Unknown fields are
// dropped by the JSON decoder; tokenizedValue is accepted but recomputed by
// the service from value and tokenized.
type CreateAssetRequest struct {
	Name            string             `json:"name" binding:"required"`
	UserID          int                `json:"userId" binding:"required"`
	Type            domain.AssetType   `json:"type" binding:"required,oneof=real_estate invoice equipment"`
	Subtype         string             `json:"subtype"`
	Description     string             `json:"description"`
	Location        string             `json:"location"`
	Company         string             `json:"company"`
	Value           *float64           `json:"value" binding:"required,gte=0"`
	Tokenized       float64            `json:"tokenized" binding:"gte=0,lte=100"`
	TokenizedValue  float64            `json:"tokenizedValue"`
	Liquidity       string             `json:"liquidity" binding:"omitempty,oneof=high medium low"`
	Blockchain      domain.Blockchain  `json:"blockchain" binding:"required,oneof=ethereum polygon"`
	Status          domain.AssetStatus `json:"status" binding:"omitempty,oneof=draft pending active compliance_issue"`
	IPFSHash        string             `json:"ipfsHash"`
	ContractAddress string             `json:"contractAddress"`
	Metadata        domain.JSONMap     `json:"metadata"`
}

func (r CreateAssetRequest) toAsset() domain.Asset {
	return domain.Asset{
		Name:            r.Name,
		UserID:          r.UserID,
		Type:            r.Type,
		Subtype:         r.Subtype,
		Description:     r.Description,
		Location:        r.Location,
		Company:         r.Company,
		Value:           *r.Value,
		Tokenized:       r.Tokenized,
		TokenizedValue:  r.TokenizedValue,
		Liquidity:       r.Liquidity,
		Blockchain:      r.Blockchain,
		Status:          r.Status,
		IPFSHash:        r.IPFSHash,
		ContractAddress: r.ContractAddress,
		Metadata:        r.Metadata,
	}
}

// ListAssetsHandler returns every asset, cached for a minute.
func ListAssetsHandler(svc *service.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var cached []domain.Asset
		// Try to get from cache
		if found, err := utils.GetCache(ctx, rdb, utils.AssetsCacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, cached)
			return
		}
		assets, err := svc.ListAssets(ctx)
		if err != nil {
			respondError(c, err, "Error fetching assets")
			return
		}
		_ = utils.SetCache(ctx, rdb, utils.AssetsCacheKey, assets, listCacheTTL)
		c.JSON(http.StatusOK, assets)
	}
}

// GetAssetHandler returns one asset by id.
func GetAssetHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id", "asset")
		if !ok {
			return
		}
		asset, err := svc.GetAsset(c.Request.Context(), id)
		if err != nil {
			respondError(c, err, "Error fetching asset")
			return
		}
		c.JSON(http.StatusOK, asset)
	}
}

// ListUserAssetsHandler returns a user's assets.
func ListUserAssetsHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := pathID(c, "id", "user")
		if !ok {
			return
		}
		assets, err := svc.ListAssetsByUser(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err, "Error fetching assets")
			return
		}
		c.JSON(http.StatusOK, assets)
	}
}

// CreateAssetHandler creates an asset for an existing user.
func CreateAssetHandler(svc *service.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateAssetRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindingError(c, err, "asset")
			return
		}
		asset := req.toAsset()
		if err := svc.CreateAsset(c.Request.Context(), &asset); err != nil {
			respondError(c, err, "Error creating asset")
			return
		}
		// Log successful creation
		logrus.WithFields(logrus.Fields{
			"asset_id": asset.ID,
			"user_id":  asset.UserID,
			"type":     asset.Type,
			"value":    asset.Value,
		}).Info("Asset created")
		invalidateAssetCaches(c.Request.Context(), rdb, asset.UserID)
		c.JSON(http.StatusCreated, asset)
	}
}

// UpdateAssetHandler applies a partial update to an asset.
func UpdateAssetHandler(svc *service.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id", "asset")
		if !ok {
			return
		}
		var patch domain.AssetPatch // Bind partial body, nil means untouched
		if err := c.ShouldBindJSON(&patch); err != nil {
			respondBindingError(c, err, "asset")
			return
		}
		asset, err := svc.UpdateAsset(c.Request.Context(), id, patch)
		if err != nil {
			respondError(c, err, "Error updating asset")
			return
		}
		logrus.WithField("asset_id", asset.ID).Info("Asset updated")
		invalidateAssetCaches(c.Request.Context(), rdb, asset.UserID)
		c.JSON(http.StatusOK, asset)
	}
}

// DeleteAssetHandler removes an asset.
func DeleteAssetHandler(svc *service.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id", "asset")
		if !ok {
			return
		}
		// The removed asset carries the owner id for cache invalidation.
		asset, err := svc.DeleteAsset(c.Request.Context(), id)
		if err != nil {
			respondError(c, err, "Error deleting asset")
			return
		}
		logrus.WithField("asset_id", id).Info("Asset deleted")
		invalidateAssetCaches(c.Request.Context(), rdb, asset.UserID)
		c.Status(http.StatusNoContent)
	}
}

// invalidateAssetCaches drops the cached asset list and the owning user's
// portfolio summary after any asset write.
func invalidateAssetCaches(ctx context.Context, rdb *redis.Client, userID int) {
	_ = utils.DeleteCache(ctx, rdb, utils.AssetsCacheKey, utils.PortfolioCacheKey(userID))
}
