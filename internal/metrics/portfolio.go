// Package metrics computes portfolio aggregates for the dashboard. Every
// function is pure and order-independent over its input slice.
package metrics

import (
	"math"

	"tokenfolio/internal/domain"
)

// Bucket is one slice of the asset type distribution.
type Bucket struct {
	Type       domain.AssetType `json:"type"`
	Label      string           `json:"label"`
	Value      float64          `json:"value"`
	Percentage float64          `json:"percentage"` // share of total value, 0 when the total is 0
}

// Summary holds the portfolio headline numbers.
type Summary struct {
	TotalValue          float64  `json:"totalValue"`
	TokenizedValue      float64  `json:"tokenizedValue"`
	AssetCount          int      `json:"assetCount"`
	TokenizedPercentage float64  `json:"tokenizedPercentage"`
	Distribution        []Bucket `json:"distribution"`
}

var bucketLabels = map[domain.AssetType]string{
	domain.AssetTypeRealEstate: "Real Estate",
	domain.AssetTypeInvoice:    "Invoices",
	domain.AssetTypeEquipment:  "Equipment",
}

// TotalValue sums the value of all assets.
func TotalValue(assets []domain.Asset) float64 {
	var total float64
	for _, a := range assets {
		total += a.Value
	}
	return total
}

// TokenizedValue sums the tokenized value of all assets.
func TokenizedValue(assets []domain.Asset) float64 {
	var total float64
	for _, a := range assets {
		total += a.TokenizedValue
	}
	return total
}

// Distribution groups asset value into the three fixed type buckets.
// Unrecognized types are excluded, as are empty buckets. Percentages are
// shares of the bucketed value, not of the raw total, so they sum to 100
// even when unrecognized types were dropped.
func Distribution(assets []domain.Asset) []Bucket {
	totals := make(map[domain.AssetType]float64, len(bucketLabels))
	var grand float64
	for _, a := range assets {
		if _, ok := bucketLabels[a.Type]; ok {
			totals[a.Type] += a.Value
			grand += a.Value
		}
	}
	buckets := make([]Bucket, 0, len(bucketLabels))
	for _, t := range domain.AssetTypes {
		value := totals[t]
		if value == 0 {
			continue
		}
		buckets = append(buckets, Bucket{
			Type:       t,
			Label:      bucketLabels[t],
			Value:      value,
			Percentage: percentage(value, grand),
		})
	}
	return buckets
}

// Summarize computes the full portfolio summary for a set of assets.
func Summarize(assets []domain.Asset) Summary {
	total := TotalValue(assets)
	tokenized := TokenizedValue(assets)
	return Summary{
		TotalValue:          RoundCurrency(total),
		TokenizedValue:      RoundCurrency(tokenized),
		AssetCount:          len(assets),
		TokenizedPercentage: percentage(tokenized, total),
		Distribution:        Distribution(assets),
	}
}

// RoundCurrency rounds a USD amount to the nearest whole unit for display.
func RoundCurrency(v float64) float64 {
	return math.Round(v)
}

func percentage(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}
