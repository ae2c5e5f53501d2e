package api

import (
	"net/http"                    // HTTP status codes
	"tokenfolio/internal/domain"  // Importing domain models
	"tokenfolio/internal/service" // Domain service

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// CreateComplianceRequest carries a compliance creation body. KYCRequired is
// a pointer so an absent field can default to true.
type CreateComplianceRequest struct {
	AssetID         int    `json:"assetId" binding:"required"`
	Jurisdiction    string `json:"jurisdiction" binding:"required"`
	KYCRequired     *bool  `json:"kycRequired"`
	KYCCompleted    bool   `json:"kycCompleted"`
	TemplateUsed    string `json:"templateUsed"`
	RegulatoryNotes string `json:"regulatoryNotes"`
	ComplianceScore *int   `json:"complianceScore" binding:"omitempty,gte=0,lte=100"`
}

// GetAssetComplianceHandler returns the compliance record for an asset.
func GetAssetComplianceHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		assetID, ok := pathID(c, "id", "asset")
		if !ok {
			return
		}
		record, err := svc.GetComplianceByAsset(c.Request.Context(), assetID)
		if err != nil {
			respondError(c, err, "Error fetching compliance record")
			return
		}
		c.JSON(http.StatusOK, record)
	}
}

// CreateComplianceHandler creates the single compliance record for an asset.
// A second create for the same asset yields a conflict.
func CreateComplianceHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateComplianceRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindingError(c, err, "compliance")
			return
		}
		kycRequired := true
		if req.KYCRequired != nil {
			kycRequired = *req.KYCRequired
		}
		record := domain.Compliance{
			AssetID:         req.AssetID,
			Jurisdiction:    req.Jurisdiction,
			KYCRequired:     kycRequired,
			KYCCompleted:    req.KYCCompleted,
			TemplateUsed:    req.TemplateUsed,
			RegulatoryNotes: req.RegulatoryNotes,
			ComplianceScore: req.ComplianceScore,
		}
		if err := svc.CreateCompliance(c.Request.Context(), &record); err != nil {
			respondError(c, err, "Error creating compliance record")
			return
		}
		logrus.WithFields(logrus.Fields{
			"compliance_id": record.ID,
			"asset_id":      record.AssetID,
			"jurisdiction":  record.Jurisdiction,
		}).Info("Compliance record created")
		c.JSON(http.StatusCreated, record)
	}
}

// UpdateComplianceHandler applies a partial update to a compliance record.
func UpdateComplianceHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id", "compliance")
		if !ok {
			return
		}
		var patch domain.CompliancePatch // Bind partial body, nil means untouched
		if err := c.ShouldBindJSON(&patch); err != nil {
			respondBindingError(c, err, "compliance")
			return
		}
		record, err := svc.UpdateCompliance(c.Request.Context(), id, patch)
		if err != nil {
			respondError(c, err, "Error updating compliance record")
			return
		}
		logrus.WithField("compliance_id", record.ID).Info("Compliance record updated")
		c.JSON(http.StatusOK, record)
	}
}
