package metrics

import (
	"testing"

	"tokenfolio/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	assets := []domain.Asset{
		{Type: domain.AssetTypeRealEstate, Value: 100, TokenizedValue: 50},
		{Type: domain.AssetTypeInvoice, Value: 200, TokenizedValue: 200},
		{Type: domain.AssetTypeRealEstate, Value: 300, TokenizedValue: 0},
	}

	summary := Summarize(assets)

	assert.Equal(t, 600.0, summary.TotalValue)
	assert.Equal(t, 250.0, summary.TokenizedValue)
	assert.Equal(t, 3, summary.AssetCount)
	assert.InDelta(t, 41.666, summary.TokenizedPercentage, 0.001)

	// Buckets come in fixed type order; the empty equipment bucket is absent.
	assert.Len(t, summary.Distribution, 2)
	assert.Equal(t, domain.AssetTypeRealEstate, summary.Distribution[0].Type)
	assert.Equal(t, "Real Estate", summary.Distribution[0].Label)
	assert.Equal(t, 400.0, summary.Distribution[0].Value)
	assert.Equal(t, domain.AssetTypeInvoice, summary.Distribution[1].Type)
	assert.Equal(t, 200.0, summary.Distribution[1].Value)

	var pct float64
	for _, b := range summary.Distribution {
		pct += b.Percentage
	}
	assert.InDelta(t, 100.0, pct, 0.001)
}

func TestSummarizeEmptyPortfolio(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, 0.0, summary.TotalValue)
	assert.Equal(t, 0.0, summary.TokenizedValue)
	assert.Equal(t, 0, summary.AssetCount)
	assert.Equal(t, 0.0, summary.TokenizedPercentage) // no division by zero
	assert.Empty(t, summary.Distribution)
}

func TestDistributionIgnoresUnknownTypes(t *testing.T) {
	assets := []domain.Asset{
		{Type: domain.AssetTypeEquipment, Value: 100},
		{Type: domain.AssetType("artwork"), Value: 900},
	}

	buckets := Distribution(assets)

	assert.Len(t, buckets, 1)
	assert.Equal(t, domain.AssetTypeEquipment, buckets[0].Type)
	// Percentages are shares of the bucketed value only, so dropping the
	// unknown type leaves the remaining bucket at 100.
	assert.InDelta(t, 100.0, buckets[0].Percentage, 0.001)
}

func TestDistributionPercentagesSumTo100WithUnknownTypes(t *testing.T) {
	assets := []domain.Asset{
		{Type: domain.AssetTypeRealEstate, Value: 100},
		{Type: domain.AssetTypeInvoice, Value: 300},
		{Type: domain.AssetType("artwork"), Value: 900},
	}

	var pct float64
	for _, b := range Distribution(assets) {
		pct += b.Percentage
	}
	assert.InDelta(t, 100.0, pct, 0.5)
}

func TestRoundCurrency(t *testing.T) {
	assert.Equal(t, 100.0, RoundCurrency(99.5))
	assert.Equal(t, 99.0, RoundCurrency(99.4))
}
