package domain

import "time"

// AssetType enumerates the classes of real-world assets the platform tokenizes.
type AssetType string

const (
	AssetTypeRealEstate AssetType = "real_estate"
	AssetTypeInvoice    AssetType = "invoice"
	AssetTypeEquipment  AssetType = "equipment"
)

// AssetTypes lists every valid asset type in bucket order.
var AssetTypes = []AssetType{AssetTypeRealEstate, AssetTypeInvoice, AssetTypeEquipment}

// Valid reports whether t is a known asset type.
func (t AssetType) Valid() bool {
	switch t {
	case AssetTypeRealEstate, AssetTypeInvoice, AssetTypeEquipment:
		return true
	}
	return false
}

// AssetStatus enumerates the asset lifecycle states.
type AssetStatus string

const (
	AssetStatusDraft           AssetStatus = "draft"
	AssetStatusPending         AssetStatus = "pending"
	AssetStatusActive          AssetStatus = "active"
	AssetStatusComplianceIssue AssetStatus = "compliance_issue"
)

// Blockchain enumerates the supported target chains.
type Blockchain string

const (
	BlockchainEthereum Blockchain = "ethereum"
	BlockchainPolygon  Blockchain = "polygon"
)

// Liquidity levels.
const (
	LiquidityHigh   = "high"
	LiquidityMedium = "medium"
	LiquidityLow    = "low"
)

// Asset Model
type Asset struct {
	ID              int         `gorm:"primaryKey" json:"id"`              // Primary key
	Name            string      `gorm:"not null" json:"name"`              // Asset name
	UserID          int         `gorm:"not null;index" json:"userId"`      // Owning user, must exist
	Type            AssetType   `gorm:"not null" json:"type"`              // real_estate, invoice, equipment
	Subtype         string      `json:"subtype,omitempty"`                 // E.g. commercial/residential for real estate
	Description     string      `json:"description,omitempty"`             // Free-text description
	Location        string      `json:"location,omitempty"`                // For real estate
	Company         string      `json:"company,omitempty"`                 // For invoices
	Value           float64     `gorm:"not null" json:"value"`             // Asset value in USD
	Tokenized       float64     `gorm:"not null;default:0" json:"tokenized"`      // Percentage tokenized, 0-100
	TokenizedValue  float64     `gorm:"not null;default:0" json:"tokenizedValue"` // Value tokenized in USD, kept equal to Value*Tokenized/100
	Liquidity       string      `gorm:"default:low" json:"liquidity"`      // high, medium, low
	Blockchain      Blockchain  `gorm:"not null" json:"blockchain"`        // ethereum or polygon
	Status          AssetStatus `gorm:"not null;default:draft" json:"status"`
	IPFSHash        string      `json:"ipfsHash,omitempty"`                // Content reference for stored documents
	ContractAddress string      `json:"contractAddress,omitempty"`         // On-chain token contract address
	Metadata        JSONMap     `gorm:"type:json" json:"metadata"`         // Asset-type-specific data bag
	CreatedAt       time.Time   `gorm:"autoCreateTime" json:"createdAt"`   // Timestamp of creation
	UpdatedAt       time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`   // Timestamp of last change
}

// ComputeTokenizedValue returns the derived tokenized value for the
// given base value and tokenized percentage.
func ComputeTokenizedValue(value, tokenized float64) float64 {
	return value * tokenized / 100
}
