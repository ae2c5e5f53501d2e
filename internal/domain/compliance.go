package domain

import "time"

// Compliance Model
type Compliance struct {
	ID              int       `gorm:"primaryKey" json:"id"`                  // Primary key
	AssetID         int       `gorm:"not null;uniqueIndex" json:"assetId"`   // 1:1 with Asset, must exist
	Jurisdiction    string    `gorm:"not null" json:"jurisdiction"`          // EU, US, Asia, ...
	KYCRequired     bool      `gorm:"default:true;not null" json:"kycRequired"`
	KYCCompleted    bool      `gorm:"default:false;not null" json:"kycCompleted"`
	TemplateUsed    string    `json:"templateUsed,omitempty"`                // Legal template reference
	RegulatoryNotes string    `json:"regulatoryNotes,omitempty"`             // Free-text notes
	ComplianceScore *int      `json:"complianceScore"`                       // 0-100, assigned externally, nil until set
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updatedAt"`       // Timestamp of last change
}
