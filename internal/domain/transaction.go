package domain

import "time"

// TransactionType enumerates the marketplace activity kinds.
type TransactionType string

const (
	TransactionTypeOffer    TransactionType = "offer"
	TransactionTypeSale     TransactionType = "sale"
	TransactionTypePurchase TransactionType = "purchase"
	TransactionTypeListing  TransactionType = "listing"
)

// TransactionStatus enumerates the states of a marketplace transaction.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusCancelled TransactionStatus = "cancelled"
	TransactionStatusActive    TransactionStatus = "active"
)

// Transaction Model
type Transaction struct {
	ID              int               `gorm:"primaryKey" json:"id"`         // Primary key
	AssetID         int               `gorm:"not null;index" json:"assetId"` // Asset traded, must exist
	BuyerID         *int              `json:"buyerId"`                      // Buying user, nil for sales/listings
	SellerID        *int              `json:"sellerId"`                     // Selling user, nil for purchases/offers
	TokenAmount     float64           `gorm:"not null" json:"tokenAmount"`  // Number of tokens traded
	ValueAmount     float64           `gorm:"not null" json:"valueAmount"`  // USD value of the trade
	TransactionType TransactionType   `gorm:"not null" json:"transactionType"` // offer, sale, purchase, listing
	Status          TransactionStatus `gorm:"not null" json:"status"`       // pending, completed, cancelled, active
	TransactionHash string            `json:"transactionHash,omitempty"`    // On-chain transaction hash
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"createdAt"` // Timestamp of creation
}
