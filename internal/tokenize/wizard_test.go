package tokenize

import (
	"context"
	"sync"
	"testing"

	"tokenfolio/internal/domain"
	"tokenfolio/internal/service"
	"tokenfolio/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestNewWizardDefaults(t *testing.T) {
	w := NewWizard(nil, 7)

	draft := w.Draft()
	assert.Equal(t, 7, draft.UserID)
	assert.Equal(t, domain.AssetTypeRealEstate, draft.Type)
	assert.Equal(t, domain.LiquidityMedium, draft.Liquidity)
	assert.Equal(t, domain.BlockchainPolygon, draft.Blockchain)
	assert.Equal(t, domain.AssetStatusDraft, draft.Status)
	assert.NotNil(t, draft.Metadata)

	record := w.ComplianceDraft()
	assert.Equal(t, "US", record.Jurisdiction)
	assert.True(t, record.KYCRequired)

	assert.Equal(t, StepAssetSelection, w.Step())
}

func TestWizardDetailsGate(t *testing.T) {
	w := NewWizard(nil, 1)
	require.Nil(t, w.Next()) // default type satisfies the selection gate
	assert.Equal(t, StepAssetDetails, w.Step())

	// Name, value and tokenized are all required before moving on.
	assert.ErrorIs(t, w.Next(), ErrStepIncomplete)

	w.Apply(domain.AssetPatch{Name: strPtr("Warehouse"), Value: floatPtr(1000)}, domain.CompliancePatch{})
	assert.ErrorIs(t, w.Next(), ErrStepIncomplete)

	w.Apply(domain.AssetPatch{Tokenized: floatPtr(50)}, domain.CompliancePatch{})
	assert.True(t, w.CanProceed())
	assert.Nil(t, w.Next())
	assert.Equal(t, StepCompliance, w.Step())
}

func TestWizardComplianceGate(t *testing.T) {
	w := NewWizard(nil, 1)
	require.Nil(t, w.Next())
	w.Apply(domain.AssetPatch{Name: strPtr("Warehouse"), Value: floatPtr(1000), Tokenized: floatPtr(50)}, domain.CompliancePatch{})
	require.Nil(t, w.Next())

	// Clearing the jurisdiction blocks the compliance gate.
	w.Apply(domain.AssetPatch{}, domain.CompliancePatch{Jurisdiction: strPtr("")})
	assert.ErrorIs(t, w.Next(), ErrStepIncomplete)

	w.Apply(domain.AssetPatch{}, domain.CompliancePatch{Jurisdiction: strPtr("EU")})
	assert.Nil(t, w.Next())
	assert.Equal(t, StepDeploy, w.Step())
	assert.ErrorIs(t, w.Next(), ErrAtFinalStep)
}

func TestWizardBack(t *testing.T) {
	w := NewWizard(nil, 1)
	assert.ErrorIs(t, w.Back(), ErrAtFirstStep)

	require.Nil(t, w.Next())
	assert.Nil(t, w.Back())
	assert.Equal(t, StepAssetSelection, w.Step())
}

func TestWizardApplyRecomputesTokenizedValue(t *testing.T) {
	w := NewWizard(nil, 1)
	w.Apply(domain.AssetPatch{Value: floatPtr(2000), Tokenized: floatPtr(25)}, domain.CompliancePatch{})
	assert.Equal(t, 500.0, w.Draft().TokenizedValue)
}

func TestWizardSelectAssetTypeResetsSubtype(t *testing.T) {
	w := NewWizard(nil, 1)
	w.Apply(domain.AssetPatch{Subtype: strPtr("commercial")}, domain.CompliancePatch{})
	require.Equal(t, "commercial", w.Draft().Subtype)

	w.SelectAssetType(domain.AssetTypeInvoice)
	assert.Equal(t, domain.AssetTypeInvoice, w.Draft().Type)
	assert.Empty(t, w.Draft().Subtype)
}

func TestWizardSubmitRequiresDeployStep(t *testing.T) {
	w := NewWizard(nil, 1)
	_, err := w.Submit(context.Background())
	assert.ErrorIs(t, err, ErrNotAtDeploy)
}

// blockingMinter holds the mint call open until released, so a second
// submission can be attempted while the first is in flight.
type blockingMinter struct {
	enterOnce sync.Once
	entered   chan struct{}
	release   chan struct{}
}

func (m *blockingMinter) Mint(ctx context.Context, chain, name, symbol string, supply int) (MintResult, error) {
	m.enterOnce.Do(func() { close(m.entered) })
	<-m.release
	return MintResult{ContractAddress: "0xabc", TransactionHash: "0xdef"}, nil
}

func TestWizardSingleSubmissionInFlight(t *testing.T) {
	content := new(MockContentStore)
	content.On("StoreMetadata", mock.Anything, mock.Anything).Return("ipfs://QmMeta", nil)
	minter := &blockingMinter{entered: make(chan struct{}), release: make(chan struct{})}

	svc := service.New(storage.NewMemStore())
	user := seedUser(t, svc)
	p := NewPipeline(content, minter, svc)

	w := NewWizard(p, user.ID)
	require.Nil(t, w.Next())
	w.Apply(domain.AssetPatch{Name: strPtr("Tower"), Value: floatPtr(1000), Tokenized: floatPtr(10)}, domain.CompliancePatch{})
	require.Nil(t, w.Next())
	require.Nil(t, w.Next())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := w.Submit(context.Background())
		assert.Nil(t, err)
	}()

	<-minter.entered
	_, err := w.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(minter.release)
	wg.Wait()

	// Once the first submission resolved, the guard is released again.
	_, err = w.Submit(context.Background())
	assert.NotErrorIs(t, err, ErrSubmissionInFlight)
}
