package service

import (
	"context"
	"errors"
	"testing"

	"tokenfolio/internal/domain"
	"tokenfolio/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) (*Service, storage.Store) {
	t.Helper()
	store := storage.NewMemStore()
	return New(store), store
}

func createTestUser(t *testing.T, svc *Service) domain.User {
	t.Helper()
	user := domain.User{Username: "alice", Password: "secret123", Email: "alice@example.com", FullName: "Alice"}
	require.Nil(t, svc.CreateUser(context.Background(), &user))
	return user
}

func TestCreateUserHashesPassword(t *testing.T) {
	svc, _ := newTestService(t)
	user := createTestUser(t, svc)

	assert.NotEqual(t, "secret123", user.Password)
	assert.Nil(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
	assert.Equal(t, domain.DefaultPlan, user.Plan)
}

func TestCreateUserDuplicates(t *testing.T) {
	svc, _ := newTestService(t)
	createTestUser(t, svc)

	dupUsername := domain.User{Username: "alice", Password: "x", Email: "other@example.com", FullName: "Other"}
	err := svc.CreateUser(context.Background(), &dupUsername)
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindConflict, svcErr.Kind)
	assert.Equal(t, "Username already exists", svcErr.Message)

	dupEmail := domain.User{Username: "bob", Password: "x", Email: "alice@example.com", FullName: "Bob"}
	err = svc.CreateUser(context.Background(), &dupEmail)
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "Email already exists", svcErr.Message)
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newTestService(t)
	user := createTestUser(t, svc)

	got, err := svc.Authenticate(context.Background(), "alice", "secret123")
	assert.Nil(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.Authenticate(context.Background(), "alice", "wrong")
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindUnauthorized, svcErr.Kind)

	_, err = svc.Authenticate(context.Background(), "nobody", "secret123")
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "Invalid credentials", svcErr.Message)
}

func TestCreateAssetRecomputesTokenizedValue(t *testing.T) {
	svc, _ := newTestService(t)
	user := createTestUser(t, svc)

	asset := domain.Asset{
		Name:           "Warehouse",
		UserID:         user.ID,
		Type:           domain.AssetTypeRealEstate,
		Value:          200000,
		Tokenized:      25,
		TokenizedValue: 999999, // disagrees with value*tokenized/100, must be overwritten
		Blockchain:     domain.BlockchainPolygon,
	}
	require.Nil(t, svc.CreateAsset(context.Background(), &asset))
	assert.Equal(t, 50000.0, asset.TokenizedValue)
}

func TestCreateAssetUnknownUser(t *testing.T) {
	svc, _ := newTestService(t)

	asset := domain.Asset{Name: "Orphan", UserID: 42, Type: domain.AssetTypeInvoice, Value: 100, Blockchain: domain.BlockchainEthereum}
	err := svc.CreateAsset(context.Background(), &asset)
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindNotFound, svcErr.Kind)
	assert.Equal(t, "User not found", svcErr.Message)

	// Nothing was stored.
	all, listErr := svc.ListAssets(context.Background())
	assert.Nil(t, listErr)
	assert.Empty(t, all)
}

func TestCreateAssetRejectsNestedMetadata(t *testing.T) {
	svc, _ := newTestService(t)
	user := createTestUser(t, svc)

	asset := domain.Asset{
		Name:       "Bad metadata",
		UserID:     user.ID,
		Type:       domain.AssetTypeEquipment,
		Value:      100,
		Blockchain: domain.BlockchainPolygon,
		Metadata:   domain.JSONMap{"nested": map[string]any{"a": 1}},
	}
	err := svc.CreateAsset(context.Background(), &asset)
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindValidation, svcErr.Kind)
}

func TestUpdateAssetRestoresInvariant(t *testing.T) {
	svc, _ := newTestService(t)
	user := createTestUser(t, svc)

	asset := domain.Asset{Name: "Machine", UserID: user.ID, Type: domain.AssetTypeEquipment, Value: 1000, Tokenized: 10, Blockchain: domain.BlockchainEthereum}
	require.Nil(t, svc.CreateAsset(context.Background(), &asset))
	assert.Equal(t, 100.0, asset.TokenizedValue)

	tokenized := 60.0
	updated, err := svc.UpdateAsset(context.Background(), asset.ID, domain.AssetPatch{Tokenized: &tokenized})
	assert.Nil(t, err)
	assert.Equal(t, 600.0, updated.TokenizedValue)

	// A patch that touches neither amount leaves the derived value alone.
	name := "Renamed"
	updated, err = svc.UpdateAsset(context.Background(), asset.ID, domain.AssetPatch{Name: &name})
	assert.Nil(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, 600.0, updated.TokenizedValue)
}

func TestDeleteAssetReturnsRemovedRecord(t *testing.T) {
	svc, _ := newTestService(t)
	user := createTestUser(t, svc)

	asset := domain.Asset{Name: "Machine", UserID: user.ID, Type: domain.AssetTypeEquipment, Value: 1000, Blockchain: domain.BlockchainEthereum}
	require.Nil(t, svc.CreateAsset(context.Background(), &asset))

	removed, err := svc.DeleteAsset(context.Background(), asset.ID)
	assert.Nil(t, err)
	assert.Equal(t, asset.ID, removed.ID)
	assert.Equal(t, user.ID, removed.UserID)

	_, err = svc.DeleteAsset(context.Background(), asset.ID)
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindNotFound, svcErr.Kind)
	assert.Equal(t, "Asset not found", svcErr.Message)
}

func TestComplianceOnePerAsset(t *testing.T) {
	svc, _ := newTestService(t)
	user := createTestUser(t, svc)

	asset := domain.Asset{Name: "Office", UserID: user.ID, Type: domain.AssetTypeRealEstate, Value: 500, Blockchain: domain.BlockchainPolygon}
	require.Nil(t, svc.CreateAsset(context.Background(), &asset))

	first := domain.Compliance{AssetID: asset.ID, Jurisdiction: "US", KYCRequired: true}
	assert.Nil(t, svc.CreateCompliance(context.Background(), &first))

	second := domain.Compliance{AssetID: asset.ID, Jurisdiction: "EU", KYCRequired: true}
	err := svc.CreateCompliance(context.Background(), &second)
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindConflict, svcErr.Kind)
	assert.Equal(t, "Compliance record already exists for this asset", svcErr.Message)

	// The surviving record is the first one.
	got, err := svc.GetComplianceByAsset(context.Background(), asset.ID)
	assert.Nil(t, err)
	assert.Equal(t, "US", got.Jurisdiction)
}

func TestCreateComplianceUnknownAsset(t *testing.T) {
	svc, _ := newTestService(t)

	record := domain.Compliance{AssetID: 42, Jurisdiction: "US"}
	err := svc.CreateCompliance(context.Background(), &record)
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindNotFound, svcErr.Kind)
	assert.Equal(t, "Asset not found", svcErr.Message)
}

func TestCreateTransactionUnknownAsset(t *testing.T) {
	svc, _ := newTestService(t)

	tx := domain.Transaction{AssetID: 42, TokenAmount: 1, ValueAmount: 10, TransactionType: domain.TransactionTypeListing, Status: domain.TransactionStatusActive}
	err := svc.CreateTransaction(context.Background(), &tx)
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "Asset not found", svcErr.Message)
}

// failingStore wraps a Store and fails compliance creation, to exercise the
// tokenization rollback path.
type failingStore struct {
	storage.Store
}

func (f *failingStore) CreateCompliance(ctx context.Context, record *domain.Compliance) error {
	return errors.New("disk full")
}

func TestTokenizeAssetRollsBackOnComplianceFailure(t *testing.T) {
	inner := storage.NewMemStore()
	svc := New(&failingStore{Store: inner})

	user := domain.User{Username: "alice", Password: "secret123", Email: "alice@example.com", FullName: "Alice"}
	require.Nil(t, svc.CreateUser(context.Background(), &user))

	asset := domain.Asset{Name: "Doomed", UserID: user.ID, Type: domain.AssetTypeRealEstate, Value: 100, Tokenized: 50, Blockchain: domain.BlockchainPolygon}
	record := domain.Compliance{Jurisdiction: "US", KYCRequired: true}
	err := svc.TokenizeAsset(context.Background(), &asset, &record)
	assert.NotNil(t, err)

	// The asset created before the compliance failure was removed again.
	all, listErr := inner.GetAllAssets(context.Background())
	assert.Nil(t, listErr)
	assert.Empty(t, all)
}

func TestTokenizeAssetSuccess(t *testing.T) {
	svc, _ := newTestService(t)
	user := createTestUser(t, svc)

	asset := domain.Asset{Name: "Tower", UserID: user.ID, Type: domain.AssetTypeRealEstate, Value: 1000, Tokenized: 40, Blockchain: domain.BlockchainEthereum}
	record := domain.Compliance{Jurisdiction: "EU", KYCRequired: true}
	require.Nil(t, svc.TokenizeAsset(context.Background(), &asset, &record))

	assert.Equal(t, asset.ID, record.AssetID)
	got, err := svc.GetComplianceByAsset(context.Background(), asset.ID)
	assert.Nil(t, err)
	assert.Equal(t, "EU", got.Jurisdiction)
}
