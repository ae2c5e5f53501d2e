package service

import (
	"context"
	"errors"
	"fmt"

	"tokenfolio/internal/domain"
	"tokenfolio/internal/storage"

	"golang.org/x/crypto/bcrypt"
)

// Service layers entity-specific validation on top of the persistence
// store: uniqueness checks, referential existence checks, the compliance
// 1:1 invariant and the tokenizedValue consistency rule.
type Service struct {
	store storage.Store
}

// New wraps a Store.
func New(store storage.Store) *Service {
	return &Service{store: store}
}

// User operations

// CreateUser hashes the password and stores the user. Fails with a conflict
// if the username or email is already taken.
func (s *Service) CreateUser(ctx context.Context, user *domain.User) error {
	if _, err := s.store.GetUserByUsername(ctx, user.Username); err == nil {
		return Conflict("Username already exists")
	} else if !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("checking username: %w", err)
	}
	if _, err := s.store.GetUserByEmail(ctx, user.Email); err == nil {
		return Conflict("Email already exists")
	} else if !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("checking email: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	user.Password = string(hash)
	return s.store.CreateUser(ctx, user)
}

// GetUser fetches a user by id.
func (s *Service) GetUser(ctx context.Context, id int) (domain.User, error) {
	user, err := s.store.GetUser(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return domain.User{}, NotFound("User not found")
	}
	return user, err
}

// Authenticate checks a username/password pair and returns the user.
func (s *Service) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if errors.Is(err, storage.ErrNotFound) {
		return domain.User{}, Unauthorized("Invalid credentials")
	}
	if err != nil {
		return domain.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return domain.User{}, Unauthorized("Invalid credentials")
	}
	return user, nil
}

// Asset operations

// CreateAsset validates the owner reference and the metadata bag, recomputes
// the derived tokenizedValue and stores the asset. A caller-supplied
// tokenizedValue that disagrees with value*tokenized/100 is overwritten.
func (s *Service) CreateAsset(ctx context.Context, asset *domain.Asset) error {
	if _, err := s.store.GetUser(ctx, asset.UserID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return NotFound("User not found")
		}
		return err
	}
	if err := domain.ValidateMetadata(asset.Metadata); err != nil {
		return Invalid(err.Error())
	}
	asset.TokenizedValue = domain.ComputeTokenizedValue(asset.Value, asset.Tokenized)
	return s.store.CreateAsset(ctx, asset)
}

// GetAsset fetches an asset by id.
func (s *Service) GetAsset(ctx context.Context, id int) (domain.Asset, error) {
	asset, err := s.store.GetAsset(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return domain.Asset{}, NotFound("Asset not found")
	}
	return asset, err
}

// ListAssets returns every asset in insertion order.
func (s *Service) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	return s.store.GetAllAssets(ctx)
}

// ListAssetsByUser returns a user's assets. An unknown user yields an empty
// list, matching the read semantics of the list endpoints.
func (s *Service) ListAssetsByUser(ctx context.Context, userID int) ([]domain.Asset, error) {
	return s.store.GetAssetsByUserID(ctx, userID)
}

// UpdateAsset applies a partial update and restores the tokenizedValue
// invariant whenever value or tokenized changed.
func (s *Service) UpdateAsset(ctx context.Context, id int, patch domain.AssetPatch) (domain.Asset, error) {
	asset, err := s.GetAsset(ctx, id)
	if err != nil {
		return domain.Asset{}, err
	}
	if patch.Metadata != nil {
		if err := domain.ValidateMetadata(patch.Metadata); err != nil {
			return domain.Asset{}, Invalid(err.Error())
		}
	}
	if patch.Apply(&asset) {
		asset.TokenizedValue = domain.ComputeTokenizedValue(asset.Value, asset.Tokenized)
	}
	if err := s.store.UpdateAsset(ctx, &asset); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domain.Asset{}, NotFound("Asset not found")
		}
		return domain.Asset{}, err
	}
	return asset, nil
}

// DeleteAsset removes an asset and returns the removed record, so callers
// can invalidate per-owner state without a second lookup. Compliance and
// transaction records attached to the asset are left in place; ids are never
// reused so they cannot be adopted by a later asset.
func (s *Service) DeleteAsset(ctx context.Context, id int) (domain.Asset, error) {
	asset, err := s.store.GetAsset(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return domain.Asset{}, NotFound("Asset not found")
	}
	if err != nil {
		return domain.Asset{}, err
	}
	if err := s.store.DeleteAsset(ctx, id); err != nil {
		// A concurrent delete can win between the fetch and the delete.
		if errors.Is(err, storage.ErrNotFound) {
			return domain.Asset{}, NotFound("Asset not found")
		}
		return domain.Asset{}, err
	}
	return asset, nil
}

// Compliance operations

// CreateCompliance validates the asset reference and enforces the one
// compliance record per asset invariant.
func (s *Service) CreateCompliance(ctx context.Context, record *domain.Compliance) error {
	if _, err := s.store.GetAsset(ctx, record.AssetID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return NotFound("Asset not found")
		}
		return err
	}
	if _, err := s.store.GetComplianceByAssetID(ctx, record.AssetID); err == nil {
		return Conflict("Compliance record already exists for this asset")
	} else if !errors.Is(err, storage.ErrNotFound) {
		return err
	}
	return s.store.CreateCompliance(ctx, record)
}

// GetComplianceByAsset fetches the compliance record attached to an asset.
func (s *Service) GetComplianceByAsset(ctx context.Context, assetID int) (domain.Compliance, error) {
	record, err := s.store.GetComplianceByAssetID(ctx, assetID)
	if errors.Is(err, storage.ErrNotFound) {
		return domain.Compliance{}, NotFound("Compliance record not found")
	}
	return record, err
}

// UpdateCompliance applies a partial update to a compliance record.
func (s *Service) UpdateCompliance(ctx context.Context, id int, patch domain.CompliancePatch) (domain.Compliance, error) {
	record, err := s.store.GetCompliance(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return domain.Compliance{}, NotFound("Compliance record not found")
	}
	if err != nil {
		return domain.Compliance{}, err
	}
	patch.Apply(&record)
	if err := s.store.UpdateCompliance(ctx, &record); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domain.Compliance{}, NotFound("Compliance record not found")
		}
		return domain.Compliance{}, err
	}
	return record, nil
}

// Transaction operations

// CreateTransaction validates the asset reference and stores the transaction.
func (s *Service) CreateTransaction(ctx context.Context, tx *domain.Transaction) error {
	if _, err := s.store.GetAsset(ctx, tx.AssetID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return NotFound("Asset not found")
		}
		return err
	}
	return s.store.CreateTransaction(ctx, tx)
}

// ListTransactions returns every transaction in insertion order.
func (s *Service) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return s.store.GetAllTransactions(ctx)
}

// ListTransactionsByAsset returns the transactions recorded for an asset.
func (s *Service) ListTransactionsByAsset(ctx context.Context, assetID int) ([]domain.Transaction, error) {
	return s.store.GetTransactionsByAssetID(ctx, assetID)
}

// ListTransactionsByUser returns the transactions a user participated in as
// buyer or seller.
func (s *Service) ListTransactionsByUser(ctx context.Context, userID int) ([]domain.Transaction, error) {
	return s.store.GetTransactionsByUserID(ctx, userID)
}

// UpdateTransaction applies a partial update to a transaction.
func (s *Service) UpdateTransaction(ctx context.Context, id int, patch domain.TransactionPatch) (domain.Transaction, error) {
	tx, err := s.store.GetTransaction(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return domain.Transaction{}, NotFound("Transaction not found")
	}
	if err != nil {
		return domain.Transaction{}, err
	}
	patch.Apply(&tx)
	if err := s.store.UpdateTransaction(ctx, &tx); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domain.Transaction{}, NotFound("Transaction not found")
		}
		return domain.Transaction{}, err
	}
	return tx, nil
}

// Regulatory update operations

// GetRegulatoryUpdate fetches a regulatory update by id.
func (s *Service) GetRegulatoryUpdate(ctx context.Context, id int) (domain.RegulatoryUpdate, error) {
	update, err := s.store.GetRegulatoryUpdate(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return domain.RegulatoryUpdate{}, NotFound("Regulatory update not found")
	}
	return update, err
}

// ListRegulatoryUpdates returns every update. Expired updates are included;
// expiry dates are advisory and filtering is left to callers.
func (s *Service) ListRegulatoryUpdates(ctx context.Context) ([]domain.RegulatoryUpdate, error) {
	return s.store.GetAllRegulatoryUpdates(ctx)
}

// ListRegulatoryUpdatesByJurisdiction filters updates by exact jurisdiction.
func (s *Service) ListRegulatoryUpdatesByJurisdiction(ctx context.Context, jurisdiction string) ([]domain.RegulatoryUpdate, error) {
	return s.store.GetRegulatoryUpdatesByJurisdiction(ctx, jurisdiction)
}

// TokenizeAsset stores an asset together with its compliance record,
// all-or-nothing. If the compliance write fails, the freshly created asset
// is removed again so the wizard can never leave a compliance-less asset
// behind.
func (s *Service) TokenizeAsset(ctx context.Context, asset *domain.Asset, record *domain.Compliance) error {
	if err := s.CreateAsset(ctx, asset); err != nil {
		return err
	}
	record.AssetID = asset.ID
	if err := s.CreateCompliance(ctx, record); err != nil {
		if delErr := s.store.DeleteAsset(ctx, asset.ID); delErr != nil {
			return fmt.Errorf("compliance creation failed (%w) and asset %d rollback failed: %v", err, asset.ID, delErr)
		}
		return err
	}
	return nil
}
