package storage

import (
	"context"
	"testing"

	"tokenfolio/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSeedDemoData(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	require.Nil(t, SeedDemoData(ctx, store))

	user, err := store.GetUserByUsername(ctx, "johnsmith")
	require.Nil(t, err)
	assert.Equal(t, "Growth", user.Plan)
	assert.Nil(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(DemoPassword)))

	assets, err := store.GetAssetsByUserID(ctx, user.ID)
	require.Nil(t, err)
	require.Len(t, assets, 4)

	// Every seeded asset honors the derived-value invariant and has exactly
	// one compliance record.
	for _, a := range assets {
		assert.Equal(t, domain.ComputeTokenizedValue(a.Value, a.Tokenized), a.TokenizedValue, a.Name)
		record, err := store.GetComplianceByAssetID(ctx, a.ID)
		require.Nil(t, err, a.Name)
		if a.Status == domain.AssetStatusComplianceIssue {
			assert.Equal(t, "EU", record.Jurisdiction)
			assert.False(t, record.KYCCompleted)
			require.NotNil(t, record.ComplianceScore)
			assert.Equal(t, 65, *record.ComplianceScore)
		} else {
			assert.Equal(t, "US", record.Jurisdiction)
			assert.True(t, record.KYCCompleted)
		}
	}

	txs, err := store.GetAllTransactions(ctx)
	require.Nil(t, err)
	assert.Len(t, txs, 4)

	updates, err := store.GetAllRegulatoryUpdates(ctx)
	require.Nil(t, err)
	assert.Len(t, updates, 3)
	eu, err := store.GetRegulatoryUpdatesByJurisdiction(ctx, "EU")
	require.Nil(t, err)
	assert.Len(t, eu, 1)
}
