package domain

import "time"

// Severity levels for regulatory updates.
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// RegulatoryUpdate Model
type RegulatoryUpdate struct {
	ID                 int        `gorm:"primaryKey" json:"id"`           // Primary key
	Title              string     `gorm:"not null" json:"title"`          // Headline
	Description        string     `gorm:"not null" json:"description"`    // Full description
	Jurisdiction       string     `gorm:"not null;index" json:"jurisdiction"` // EU, US, Asia, ...
	Severity           string     `gorm:"not null" json:"severity"`       // info, warning, critical
	AssetTypesAffected StringList `gorm:"type:json" json:"assetTypesAffected"` // Asset types the update applies to
	ActionRequired     bool       `gorm:"default:false;not null" json:"actionRequired"`
	ActionDescription  string     `json:"actionDescription,omitempty"`    // What the holder must do, if anything
	PublishDate        time.Time  `gorm:"autoCreateTime" json:"publishDate"`
	ExpiryDate         *time.Time `json:"expiryDate"`                     // Advisory only, never enforced by the service
}
