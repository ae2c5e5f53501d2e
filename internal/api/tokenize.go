package api

import (
	"errors"                      // Error inspection
	"net/http"                    // HTTP status codes
	"tokenfolio/internal/domain"  // Importing domain models
	"tokenfolio/internal/service" // Domain service
	"tokenfolio/internal/tokenize"
	"tokenfolio/internal/utils" // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// TokenizeDocument is an optional supporting document. Content is base64 in
// JSON and decoded by the binder.
type TokenizeDocument struct {
	Name    string `json:"name" binding:"required"`
	Content []byte `json:"content" binding:"required"`
}

// TokenizeRequest carries the accumulated wizard form in one body: the asset
// draft, the compliance draft and an optional document upload.
type TokenizeRequest struct {
	UserID     int                    `json:"userId" binding:"required"`
	Asset      domain.AssetPatch      `json:"asset" binding:"required"`
	Compliance domain.CompliancePatch `json:"compliance"`
	Document   *TokenizeDocument      `json:"document"`
}

// TokenizeHandler drives the wizard end to end for a single request: apply
// the submitted drafts, walk the stages so every gate is enforced, then
// submit through the pipeline. Gate failures surface as 400s naming the step
// that failed.
func TokenizeHandler(svc *service.Service, pipeline *tokenize.Pipeline, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TokenizeRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindingError(c, err, "tokenization")
			return
		}

		w := tokenize.NewWizard(pipeline, req.UserID)
		if req.Asset.Type != nil {
			w.SelectAssetType(*req.Asset.Type)
		}
		w.Apply(req.Asset, req.Compliance)
		if req.Document != nil {
			w.AttachDocument(tokenize.Document{Name: req.Document.Name, Content: req.Document.Content})
		}

		// Walk the stages; every gate must hold before the deploy step.
		for w.Step() != tokenize.StepDeploy {
			step := w.Step()
			if err := w.Next(); err != nil {
				if errors.Is(err, tokenize.ErrStepIncomplete) {
					c.JSON(http.StatusBadRequest, gin.H{"message": "Step incomplete: " + step.String()})
					return
				}
				respondError(c, err, "Error advancing tokenization")
				return
			}
		}

		asset, err := w.Submit(c.Request.Context())
		if err != nil {
			respondError(c, err, "Error tokenizing asset")
			return
		}
		logrus.WithFields(logrus.Fields{
			"asset_id": asset.ID,
			"user_id":  asset.UserID,
			"contract": asset.ContractAddress,
		}).Info("Asset tokenized")
		_ = utils.DeleteCache(c.Request.Context(), rdb, utils.AssetsCacheKey, utils.PortfolioCacheKey(asset.UserID))
		c.JSON(http.StatusCreated, asset)
	}
}
