package api

import (
	"net/http"                    // HTTP status codes
	"tokenfolio/internal/domain"  // Importing domain models
	"tokenfolio/internal/service" // Domain service
	"tokenfolio/internal/utils"   // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// CreateTransactionRequest carries a transaction creation body. Buyer and
// seller are optional; a listing has neither.
type CreateTransactionRequest struct {
	AssetID         int                      `json:"assetId" binding:"required"`
	BuyerID         *int                     `json:"buyerId"`
	SellerID        *int                     `json:"sellerId"`
	TokenAmount     float64                  `json:"tokenAmount" binding:"required,gt=0"`
	ValueAmount     *float64                 `json:"valueAmount" binding:"required,gte=0"`
	TransactionType domain.TransactionType   `json:"transactionType" binding:"required,oneof=offer sale purchase listing"`
	Status          domain.TransactionStatus `json:"status" binding:"required,oneof=pending completed cancelled active"`
	TransactionHash string                   `json:"transactionHash"`
}

// ListTransactionsHandler returns every transaction, cached for a minute.
func ListTransactionsHandler(svc *service.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var cached []domain.Transaction
		// Try to get from cache
		if found, err := utils.GetCache(ctx, rdb, utils.TransactionsCacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, cached)
			return
		}
		txs, err := svc.ListTransactions(ctx)
		if err != nil {
			respondError(c, err, "Error fetching transactions")
			return
		}
		_ = utils.SetCache(ctx, rdb, utils.TransactionsCacheKey, txs, listCacheTTL)
		c.JSON(http.StatusOK, txs)
	}
}

// ListAssetTransactionsHandler returns the transactions recorded for an asset.
func ListAssetTransactionsHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		assetID, ok := pathID(c, "id", "asset")
		if !ok {
			return
		}
		txs, err := svc.ListTransactionsByAsset(c.Request.Context(), assetID)
		if err != nil {
			respondError(c, err, "Error fetching transactions")
			return
		}
		c.JSON(http.StatusOK, txs)
	}
}

// ListUserTransactionsHandler returns the transactions a user participated in.
func ListUserTransactionsHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := pathID(c, "id", "user")
		if !ok {
			return
		}
		txs, err := svc.ListTransactionsByUser(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err, "Error fetching transactions")
			return
		}
		c.JSON(http.StatusOK, txs)
	}
}

// CreateTransactionHandler records a transaction against an existing asset.
func CreateTransactionHandler(svc *service.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateTransactionRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindingError(c, err, "transaction")
			return
		}
		tx := domain.Transaction{
			AssetID:         req.AssetID,
			BuyerID:         req.BuyerID,
			SellerID:        req.SellerID,
			TokenAmount:     req.TokenAmount,
			ValueAmount:     *req.ValueAmount,
			TransactionType: req.TransactionType,
			Status:          req.Status,
			TransactionHash: req.TransactionHash,
		}
		if err := svc.CreateTransaction(c.Request.Context(), &tx); err != nil {
			respondError(c, err, "Error creating transaction")
			return
		}
		logrus.WithFields(logrus.Fields{
			"transaction_id": tx.ID,
			"asset_id":       tx.AssetID,
			"type":           tx.TransactionType,
			"token_amount":   tx.TokenAmount,
		}).Info("Transaction created")
		_ = utils.DeleteCache(c.Request.Context(), rdb, utils.TransactionsCacheKey)
		c.JSON(http.StatusCreated, tx)
	}
}

// UpdateTransactionHandler applies a partial update to a transaction. The
// asset reference and type are immutable once recorded.
func UpdateTransactionHandler(svc *service.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id", "transaction")
		if !ok {
			return
		}
		var patch domain.TransactionPatch // Bind partial body, nil means untouched
		if err := c.ShouldBindJSON(&patch); err != nil {
			respondBindingError(c, err, "transaction")
			return
		}
		tx, err := svc.UpdateTransaction(c.Request.Context(), id, patch)
		if err != nil {
			respondError(c, err, "Error updating transaction")
			return
		}
		logrus.WithField("transaction_id", tx.ID).Info("Transaction updated")
		_ = utils.DeleteCache(c.Request.Context(), rdb, utils.TransactionsCacheKey)
		c.JSON(http.StatusOK, tx)
	}
}
