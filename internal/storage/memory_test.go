package storage

import (
	"context"
	"testing"

	"tokenfolio/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestMemStoreUserDefaults(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	user := domain.User{Username: "alice", Password: "hash", Email: "alice@example.com", FullName: "Alice"}
	err := store.CreateUser(ctx, &user)

	assert.Nil(t, err)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, domain.DefaultPlan, user.Plan)
	assert.False(t, user.CreatedAt.IsZero())

	got, err := store.GetUserByUsername(ctx, "alice")
	assert.Nil(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = store.GetUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemStoreAssetDefaults(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	asset := domain.Asset{Name: "Warehouse", UserID: 1, Type: domain.AssetTypeRealEstate, Value: 1000, Blockchain: domain.BlockchainPolygon}
	err := store.CreateAsset(ctx, &asset)

	assert.Nil(t, err)
	assert.Equal(t, domain.LiquidityLow, asset.Liquidity)
	assert.Equal(t, domain.AssetStatusDraft, asset.Status)
	assert.NotNil(t, asset.Metadata)
	assert.False(t, asset.UpdatedAt.IsZero())
}

func TestMemStoreAssetIDsMonotonic(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	for i := 0; i < 3; i++ {
		asset := domain.Asset{Name: "A", UserID: 1, Type: domain.AssetTypeInvoice, Value: 100, Blockchain: domain.BlockchainEthereum}
		assert.Nil(t, store.CreateAsset(ctx, &asset))
		assert.Equal(t, i+1, asset.ID)
	}

	// A deleted id is never reused.
	assert.Nil(t, store.DeleteAsset(ctx, 3))
	asset := domain.Asset{Name: "B", UserID: 1, Type: domain.AssetTypeInvoice, Value: 100, Blockchain: domain.BlockchainEthereum}
	assert.Nil(t, store.CreateAsset(ctx, &asset))
	assert.Equal(t, 4, asset.ID)
}

func TestMemStoreAssetListInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	names := []string{"First", "Second", "Third", "Fourth"}
	for _, name := range names {
		asset := domain.Asset{Name: name, UserID: 7, Type: domain.AssetTypeEquipment, Value: 50, Blockchain: domain.BlockchainPolygon}
		assert.Nil(t, store.CreateAsset(ctx, &asset))
	}

	all, err := store.GetAllAssets(ctx)
	assert.Nil(t, err)
	assert.Len(t, all, 4)
	for i, a := range all {
		assert.Equal(t, names[i], a.Name)
	}

	byUser, err := store.GetAssetsByUserID(ctx, 7)
	assert.Nil(t, err)
	assert.Len(t, byUser, 4)

	byOther, err := store.GetAssetsByUserID(ctx, 99)
	assert.Nil(t, err)
	assert.Empty(t, byOther)
}

func TestMemStoreDeleteAsset(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	for i := 0; i < 3; i++ {
		asset := domain.Asset{Name: "A", UserID: 1, Type: domain.AssetTypeRealEstate, Value: 100, Blockchain: domain.BlockchainPolygon}
		assert.Nil(t, store.CreateAsset(ctx, &asset))
	}

	assert.Nil(t, store.DeleteAsset(ctx, 2))

	all, err := store.GetAllAssets(ctx)
	assert.Nil(t, err)
	assert.Len(t, all, 2)

	_, err = store.GetAsset(ctx, 2)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.DeleteAsset(ctx, 2), ErrNotFound)
}

func TestMemStoreUpdateUnknownAsset(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	asset := domain.Asset{ID: 42, Name: "Ghost", UserID: 1, Type: domain.AssetTypeRealEstate, Value: 100}
	assert.ErrorIs(t, store.UpdateAsset(ctx, &asset), ErrNotFound)
}

func TestMemStoreComplianceByAssetID(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	record := domain.Compliance{AssetID: 5, Jurisdiction: "EU", KYCRequired: true}
	assert.Nil(t, store.CreateCompliance(ctx, &record))
	assert.Equal(t, 1, record.ID)

	got, err := store.GetComplianceByAssetID(ctx, 5)
	assert.Nil(t, err)
	assert.Equal(t, "EU", got.Jurisdiction)

	_, err = store.GetComplianceByAssetID(ctx, 6)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemStoreTransactionsByUser(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	buyer, seller := 1, 2
	txs := []domain.Transaction{
		{AssetID: 1, BuyerID: &buyer, TokenAmount: 10, ValueAmount: 100, TransactionType: domain.TransactionTypePurchase, Status: domain.TransactionStatusCompleted},
		{AssetID: 1, SellerID: &seller, TokenAmount: 5, ValueAmount: 50, TransactionType: domain.TransactionTypeSale, Status: domain.TransactionStatusPending},
		{AssetID: 2, TokenAmount: 1, ValueAmount: 10, TransactionType: domain.TransactionTypeListing, Status: domain.TransactionStatusActive},
	}
	for i := range txs {
		assert.Nil(t, store.CreateTransaction(ctx, &txs[i]))
	}

	forBuyer, err := store.GetTransactionsByUserID(ctx, buyer)
	assert.Nil(t, err)
	assert.Len(t, forBuyer, 1)
	assert.Equal(t, domain.TransactionTypePurchase, forBuyer[0].TransactionType)

	forSeller, err := store.GetTransactionsByUserID(ctx, seller)
	assert.Nil(t, err)
	assert.Len(t, forSeller, 1)

	forAsset, err := store.GetTransactionsByAssetID(ctx, 1)
	assert.Nil(t, err)
	assert.Len(t, forAsset, 2)
}

func TestMemStoreDoesNotAliasCallerMemory(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	asset := domain.Asset{
		Name:       "Warehouse",
		UserID:     1,
		Type:       domain.AssetTypeRealEstate,
		Value:      1000,
		Blockchain: domain.BlockchainPolygon,
		Metadata:   domain.JSONMap{"floors": 3},
	}
	assert.Nil(t, store.CreateAsset(ctx, &asset))

	// Mutating the caller's bag after create must not touch the stored record.
	asset.Metadata["floors"] = 99
	got, err := store.GetAsset(ctx, asset.ID)
	assert.Nil(t, err)
	assert.Equal(t, 3, got.Metadata["floors"])

	// Neither must mutating a fetched copy.
	got.Metadata["floors"] = 42
	again, err := store.GetAsset(ctx, asset.ID)
	assert.Nil(t, err)
	assert.Equal(t, 3, again.Metadata["floors"])

	update := domain.RegulatoryUpdate{
		Title:              "MiCA",
		Description:        "d",
		Jurisdiction:       "EU",
		Severity:           domain.SeverityWarning,
		AssetTypesAffected: domain.StringList{"real_estate"},
	}
	assert.Nil(t, store.CreateRegulatoryUpdate(ctx, &update))
	update.AssetTypesAffected[0] = "artwork"
	gotUpdate, err := store.GetRegulatoryUpdate(ctx, update.ID)
	assert.Nil(t, err)
	assert.Equal(t, domain.StringList{"real_estate"}, gotUpdate.AssetTypesAffected)

	score := 50
	record := domain.Compliance{AssetID: asset.ID, Jurisdiction: "US", ComplianceScore: &score}
	assert.Nil(t, store.CreateCompliance(ctx, &record))
	score = 99
	gotRecord, err := store.GetCompliance(ctx, record.ID)
	assert.Nil(t, err)
	assert.Equal(t, 50, *gotRecord.ComplianceScore)
}

func TestMemStoreRegulatoryUpdatesByJurisdiction(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	updates := []domain.RegulatoryUpdate{
		{Title: "MiCA", Description: "d", Jurisdiction: "EU", Severity: domain.SeverityWarning},
		{Title: "SEC", Description: "d", Jurisdiction: "US", Severity: domain.SeverityInfo},
		{Title: "Tax", Description: "d", Jurisdiction: "US", Severity: domain.SeverityInfo},
	}
	for i := range updates {
		assert.Nil(t, store.CreateRegulatoryUpdate(ctx, &updates[i]))
		assert.False(t, updates[i].PublishDate.IsZero())
	}

	us, err := store.GetRegulatoryUpdatesByJurisdiction(ctx, "US")
	assert.Nil(t, err)
	assert.Len(t, us, 2)

	none, err := store.GetRegulatoryUpdatesByJurisdiction(ctx, "Asia")
	assert.Nil(t, err)
	assert.Empty(t, none)
}
