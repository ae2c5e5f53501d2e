package storage

import (
	"context"
	"errors"

	"tokenfolio/internal/domain"
)

// ErrNotFound is returned by every lookup whose id (or related id) does not
// resolve to a stored record.
var ErrNotFound = errors.New("not found")

// Store is the persistence port. Two adapters implement it: MemStore for
// tests and demo mode, GormStore for a relational database.
type Store interface {
	// User operations
	GetUser(ctx context.Context, id int) (domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
	CreateUser(ctx context.Context, user *domain.User) error

	// Asset operations
	GetAsset(ctx context.Context, id int) (domain.Asset, error)
	GetAssetsByUserID(ctx context.Context, userID int) ([]domain.Asset, error)
	GetAllAssets(ctx context.Context) ([]domain.Asset, error)
	CreateAsset(ctx context.Context, asset *domain.Asset) error
	UpdateAsset(ctx context.Context, asset *domain.Asset) error
	DeleteAsset(ctx context.Context, id int) error

	// Compliance operations
	GetCompliance(ctx context.Context, id int) (domain.Compliance, error)
	GetComplianceByAssetID(ctx context.Context, assetID int) (domain.Compliance, error)
	CreateCompliance(ctx context.Context, record *domain.Compliance) error
	UpdateCompliance(ctx context.Context, record *domain.Compliance) error

	// Transaction operations
	GetTransaction(ctx context.Context, id int) (domain.Transaction, error)
	GetAllTransactions(ctx context.Context) ([]domain.Transaction, error)
	GetTransactionsByAssetID(ctx context.Context, assetID int) ([]domain.Transaction, error)
	GetTransactionsByUserID(ctx context.Context, userID int) ([]domain.Transaction, error)
	CreateTransaction(ctx context.Context, tx *domain.Transaction) error
	UpdateTransaction(ctx context.Context, tx *domain.Transaction) error

	// Regulatory update operations
	GetRegulatoryUpdate(ctx context.Context, id int) (domain.RegulatoryUpdate, error)
	GetAllRegulatoryUpdates(ctx context.Context) ([]domain.RegulatoryUpdate, error)
	GetRegulatoryUpdatesByJurisdiction(ctx context.Context, jurisdiction string) ([]domain.RegulatoryUpdate, error)
	CreateRegulatoryUpdate(ctx context.Context, update *domain.RegulatoryUpdate) error
}

// applyUserDefaults fills documented defaults on a user about to be stored.
func applyUserDefaults(u *domain.User) {
	if u.Plan == "" {
		u.Plan = domain.DefaultPlan
	}
}

// applyAssetDefaults fills documented defaults on an asset about to be stored.
func applyAssetDefaults(a *domain.Asset) {
	if a.Liquidity == "" {
		a.Liquidity = domain.LiquidityLow
	}
	if a.Status == "" {
		a.Status = domain.AssetStatusDraft
	}
	if a.Metadata == nil {
		a.Metadata = domain.JSONMap{}
	}
}
