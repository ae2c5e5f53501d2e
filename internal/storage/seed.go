package storage

import (
	"context"
	"time"

	"tokenfolio/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// DemoPassword is the plaintext credential of the seeded demo user.
const DemoPassword = "demo1234"

// SeedDemoData populates a fresh store with the demo portfolio: one user,
// four assets with compliance records, four marketplace transactions and
// three regulatory updates. Intended for development and demos only.
func SeedDemoData(ctx context.Context, store Store) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := domain.User{
		Username: "johnsmith",
		Password: string(hash),
		Email:    "john@example.com",
		FullName: "John Smith",
		Company:  "ABC Corp",
		Plan:     "Growth",
	}
	if err := store.CreateUser(ctx, &user); err != nil {
		return err
	}

	assets := []domain.Asset{
		{
			Name:            "Downtown Office Complex",
			UserID:          user.ID,
			Type:            domain.AssetTypeRealEstate,
			Subtype:         "commercial",
			Description:     "Prime commercial office space in downtown area",
			Location:        "San Francisco, CA",
			Value:           750000,
			Tokenized:       85,
			TokenizedValue:  637500,
			Liquidity:       domain.LiquidityHigh,
			Blockchain:      domain.BlockchainEthereum,
			Status:          domain.AssetStatusActive,
			IPFSHash:        "ipfs://Qm123456789",
			ContractAddress: "0x1234567890abcdef",
			Metadata:        domain.JSONMap{"floors": 12, "sqft": 25000, "year_built": 2010},
		},
		{
			Name:            "Q4 2023 Invoice Bundle",
			UserID:          user.ID,
			Type:            domain.AssetTypeInvoice,
			Subtype:         "tech_services",
			Description:     "Collection of Q4 invoices for technology services",
			Company:         "Tech Services",
			Value:           120000,
			Tokenized:       100,
			TokenizedValue:  120000,
			Liquidity:       domain.LiquidityMedium,
			Blockchain:      domain.BlockchainPolygon,
			Status:          domain.AssetStatusActive,
			IPFSHash:        "ipfs://Qm987654321",
			ContractAddress: "0xabcdef1234567890",
			Metadata:        domain.JSONMap{"invoice_count": 8, "due_date": "2023-12-31"},
		},
		{
			Name:            "CNC Machine Fleet",
			UserID:          user.ID,
			Type:            domain.AssetTypeEquipment,
			Subtype:         "manufacturing",
			Description:     "Fleet of industrial CNC machines for manufacturing",
			Company:         "Manufacturing",
			Value:           350000,
			Tokenized:       60,
			TokenizedValue:  210000,
			Liquidity:       domain.LiquidityLow,
			Blockchain:      domain.BlockchainPolygon,
			Status:          domain.AssetStatusPending,
			IPFSHash:        "ipfs://Qm567890123",
			ContractAddress: "0x567890abcdef1234",
			Metadata:        domain.JSONMap{"machine_count": 5, "year": 2020, "manufacturer": "Industrial Inc."},
		},
		{
			Name:            "Westfield Retail Space",
			UserID:          user.ID,
			Type:            domain.AssetTypeRealEstate,
			Subtype:         "retail",
			Description:     "Retail storefront in popular shopping district",
			Location:        "Chicago, IL",
			Value:           480000,
			Tokenized:       35,
			TokenizedValue:  168000,
			Liquidity:       domain.LiquidityMedium,
			Blockchain:      domain.BlockchainEthereum,
			Status:          domain.AssetStatusComplianceIssue,
			IPFSHash:        "ipfs://Qm345678901",
			ContractAddress: "0x3456789012abcdef",
			Metadata:        domain.JSONMap{"sqft": 3500, "year_built": 2015},
		},
	}
	for i := range assets {
		if err := store.CreateAsset(ctx, &assets[i]); err != nil {
			return err
		}

		// The retail space carries an open EU compliance issue; the rest are clean.
		flagged := assets[i].Status == domain.AssetStatusComplianceIssue
		jurisdiction := "US"
		notes := ""
		score := 92
		if flagged {
			jurisdiction = "EU"
			notes = "Missing EU MiCA compliance documentation"
			score = 65
		}
		template := "US_GEN_STD_1"
		if assets[i].Type == domain.AssetTypeRealEstate {
			template = "US_RE_STD_1"
		}
		record := domain.Compliance{
			AssetID:         assets[i].ID,
			Jurisdiction:    jurisdiction,
			KYCRequired:     true,
			KYCCompleted:    !flagged,
			TemplateUsed:    template,
			RegulatoryNotes: notes,
			ComplianceScore: &score,
		}
		if err := store.CreateCompliance(ctx, &record); err != nil {
			return err
		}
	}

	transactions := []domain.Transaction{
		{
			AssetID:         assets[1].ID,
			SellerID:        &user.ID,
			TokenAmount:     5,
			ValueAmount:     12500,
			TransactionType: domain.TransactionTypeSale,
			Status:          domain.TransactionStatusCompleted,
			TransactionHash: "0xabcd1234567890",
		},
		{
			AssetID:         assets[0].ID,
			BuyerID:         &user.ID,
			TokenAmount:     3,
			ValueAmount:     22500,
			TransactionType: domain.TransactionTypePurchase,
			Status:          domain.TransactionStatusCompleted,
			TransactionHash: "0x1234abcd567890",
		},
		{
			AssetID:         assets[2].ID,
			TokenAmount:     10,
			ValueAmount:     35000,
			TransactionType: domain.TransactionTypeOffer,
			Status:          domain.TransactionStatusPending,
		},
		{
			AssetID:         assets[3].ID,
			SellerID:        &user.ID,
			TokenAmount:     8,
			ValueAmount:     16800,
			TransactionType: domain.TransactionTypeListing,
			Status:          domain.TransactionStatusActive,
		},
	}
	for i := range transactions {
		if err := store.CreateTransaction(ctx, &transactions[i]); err != nil {
			return err
		}
	}

	in45Days := time.Now().AddDate(0, 0, 45)
	updates := []domain.RegulatoryUpdate{
		{
			Title:              "MiCA Compliance Update Required",
			Description:        "New EU regulations affecting real estate tokenization. Action needed for specific assets.",
			Jurisdiction:       "EU",
			Severity:           domain.SeverityWarning,
			AssetTypesAffected: domain.StringList{string(domain.AssetTypeRealEstate)},
			ActionRequired:     true,
			ActionDescription:  "Update compliance documentation according to new MiCA guidelines",
			ExpiryDate:         &in45Days,
		},
		{
			Title:              "SEC Framework Update",
			Description:        "New guidelines for fractional ownership of equipment assets. No immediate action required.",
			Jurisdiction:       "US",
			Severity:           domain.SeverityInfo,
			AssetTypesAffected: domain.StringList{string(domain.AssetTypeEquipment)},
		},
		{
			Title:              "Tax Reporting Change",
			Description:        "Updated requirements for quarterly reporting on tokenized assets.",
			Jurisdiction:       "US",
			Severity:           domain.SeverityInfo,
			AssetTypesAffected: domain.StringList{string(domain.AssetTypeRealEstate), string(domain.AssetTypeInvoice), string(domain.AssetTypeEquipment)},
			ActionDescription:  "Prepare for new reporting format in next quarter",
			ExpiryDate:         &in45Days,
		},
	}
	for i := range updates {
		if err := store.CreateRegulatoryUpdate(ctx, &updates[i]); err != nil {
			return err
		}
	}
	return nil
}
