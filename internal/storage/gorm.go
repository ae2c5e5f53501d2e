package storage

import (
	"context"
	"errors"

	"tokenfolio/internal/domain"

	"gorm.io/gorm"
)

// GormStore is the relational Store implementation. Single-row statements
// keep each operation atomic; the database owns id generation.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an open gorm connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// User operations

func (s *GormStore) GetUser(ctx context.Context, id int) (domain.User, error) {
	var u domain.User
	err := s.db.WithContext(ctx).First(&u, id).Error
	return u, translate(err)
}

func (s *GormStore) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	var u domain.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	return u, translate(err)
}

func (s *GormStore) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	var u domain.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	return u, translate(err)
}

func (s *GormStore) CreateUser(ctx context.Context, user *domain.User) error {
	applyUserDefaults(user)
	return s.db.WithContext(ctx).Create(user).Error
}

// Asset operations

func (s *GormStore) GetAsset(ctx context.Context, id int) (domain.Asset, error) {
	var a domain.Asset
	err := s.db.WithContext(ctx).First(&a, id).Error
	return a, translate(err)
}

func (s *GormStore) GetAssetsByUserID(ctx context.Context, userID int) ([]domain.Asset, error) {
	assets := make([]domain.Asset, 0)
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&assets).Error
	return assets, err
}

func (s *GormStore) GetAllAssets(ctx context.Context) ([]domain.Asset, error) {
	assets := make([]domain.Asset, 0)
	err := s.db.WithContext(ctx).Order("id").Find(&assets).Error
	return assets, err
}

func (s *GormStore) CreateAsset(ctx context.Context, asset *domain.Asset) error {
	applyAssetDefaults(asset)
	return s.db.WithContext(ctx).Create(asset).Error
}

func (s *GormStore) UpdateAsset(ctx context.Context, asset *domain.Asset) error {
	var existing domain.Asset
	if err := s.db.WithContext(ctx).First(&existing, asset.ID).Error; err != nil {
		return translate(err)
	}
	return s.db.WithContext(ctx).Save(asset).Error
}

func (s *GormStore) DeleteAsset(ctx context.Context, id int) error {
	res := s.db.WithContext(ctx).Delete(&domain.Asset{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Compliance operations

func (s *GormStore) GetCompliance(ctx context.Context, id int) (domain.Compliance, error) {
	var c domain.Compliance
	err := s.db.WithContext(ctx).First(&c, id).Error
	return c, translate(err)
}

func (s *GormStore) GetComplianceByAssetID(ctx context.Context, assetID int) (domain.Compliance, error) {
	var c domain.Compliance
	err := s.db.WithContext(ctx).Where("asset_id = ?", assetID).First(&c).Error
	return c, translate(err)
}

func (s *GormStore) CreateCompliance(ctx context.Context, record *domain.Compliance) error {
	return s.db.WithContext(ctx).Create(record).Error
}

func (s *GormStore) UpdateCompliance(ctx context.Context, record *domain.Compliance) error {
	var existing domain.Compliance
	if err := s.db.WithContext(ctx).First(&existing, record.ID).Error; err != nil {
		return translate(err)
	}
	return s.db.WithContext(ctx).Save(record).Error
}

// Transaction operations

func (s *GormStore) GetTransaction(ctx context.Context, id int) (domain.Transaction, error) {
	var t domain.Transaction
	err := s.db.WithContext(ctx).First(&t, id).Error
	return t, translate(err)
}

func (s *GormStore) GetAllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txs := make([]domain.Transaction, 0)
	err := s.db.WithContext(ctx).Order("id").Find(&txs).Error
	return txs, err
}

func (s *GormStore) GetTransactionsByAssetID(ctx context.Context, assetID int) ([]domain.Transaction, error) {
	txs := make([]domain.Transaction, 0)
	err := s.db.WithContext(ctx).Where("asset_id = ?", assetID).Order("id").Find(&txs).Error
	return txs, err
}

func (s *GormStore) GetTransactionsByUserID(ctx context.Context, userID int) ([]domain.Transaction, error) {
	txs := make([]domain.Transaction, 0)
	err := s.db.WithContext(ctx).Where("buyer_id = ? OR seller_id = ?", userID, userID).Order("id").Find(&txs).Error
	return txs, err
}

func (s *GormStore) CreateTransaction(ctx context.Context, tx *domain.Transaction) error {
	return s.db.WithContext(ctx).Create(tx).Error
}

func (s *GormStore) UpdateTransaction(ctx context.Context, tx *domain.Transaction) error {
	var existing domain.Transaction
	if err := s.db.WithContext(ctx).First(&existing, tx.ID).Error; err != nil {
		return translate(err)
	}
	return s.db.WithContext(ctx).Save(tx).Error
}

// Regulatory update operations

func (s *GormStore) GetRegulatoryUpdate(ctx context.Context, id int) (domain.RegulatoryUpdate, error) {
	var u domain.RegulatoryUpdate
	err := s.db.WithContext(ctx).First(&u, id).Error
	return u, translate(err)
}

func (s *GormStore) GetAllRegulatoryUpdates(ctx context.Context) ([]domain.RegulatoryUpdate, error) {
	updates := make([]domain.RegulatoryUpdate, 0)
	err := s.db.WithContext(ctx).Order("id").Find(&updates).Error
	return updates, err
}

func (s *GormStore) GetRegulatoryUpdatesByJurisdiction(ctx context.Context, jurisdiction string) ([]domain.RegulatoryUpdate, error) {
	updates := make([]domain.RegulatoryUpdate, 0)
	err := s.db.WithContext(ctx).Where("jurisdiction = ?", jurisdiction).Order("id").Find(&updates).Error
	return updates, err
}

func (s *GormStore) CreateRegulatoryUpdate(ctx context.Context, update *domain.RegulatoryUpdate) error {
	return s.db.WithContext(ctx).Create(update).Error
}
