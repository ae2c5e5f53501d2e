package tokenize

import (
	"context"
	"errors"
	"sync"

	"tokenfolio/internal/domain"
)

// Step identifies a wizard stage. Stages are strictly linear.
type Step int

const (
	StepAssetSelection Step = iota
	StepAssetDetails
	StepCompliance
	StepDeploy
)

// String returns the display name of the step.
func (s Step) String() string {
	switch s {
	case StepAssetSelection:
		return "Asset Selection"
	case StepAssetDetails:
		return "Asset Details"
	case StepCompliance:
		return "Compliance"
	case StepDeploy:
		return "Deploy"
	}
	return "Unknown"
}

var (
	// ErrStepIncomplete means the current step's validation gate does not hold.
	ErrStepIncomplete = errors.New("current step is incomplete")
	// ErrAtFirstStep means there is no step to go back to.
	ErrAtFirstStep = errors.New("already at the first step")
	// ErrAtFinalStep means there is no step to advance to.
	ErrAtFinalStep = errors.New("already at the final step")
	// ErrNotAtDeploy means submission was attempted before reaching Deploy.
	ErrNotAtDeploy = errors.New("wizard has not reached the deploy step")
	// ErrSubmissionInFlight means a previous submission has not finished yet.
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
)

// Wizard accumulates an asset-shaped draft and a compliance-shaped draft
// across the four stages and hands the finished drafts to the pipeline.
// Safe for concurrent use; only one submission may be in flight at a time.
type Wizard struct {
	mu         sync.Mutex
	step       Step
	draft      domain.Asset
	record     domain.Compliance
	doc        *Document
	submitting bool
	pipeline   *Pipeline
}

// NewWizard starts a wizard for the given user with the form defaults.
func NewWizard(pipeline *Pipeline, userID int) *Wizard {
	return &Wizard{
		pipeline: pipeline,
		draft: domain.Asset{
			UserID:     userID,
			Type:       domain.AssetTypeRealEstate,
			Liquidity:  domain.LiquidityMedium,
			Blockchain: domain.BlockchainPolygon,
			Status:     domain.AssetStatusDraft,
			Metadata:   domain.JSONMap{},
		},
		record: domain.Compliance{
			Jurisdiction: "US",
			KYCRequired:  true,
		},
	}
}

// Step returns the current stage.
func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Draft returns a copy of the in-progress asset draft.
func (w *Wizard) Draft() domain.Asset {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft
}

// ComplianceDraft returns a copy of the in-progress compliance draft.
func (w *Wizard) ComplianceDraft() domain.Compliance {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.record
}

// SelectAssetType sets the asset type and resets the subtype, which is
// type-specific.
func (w *Wizard) SelectAssetType(t domain.AssetType) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Type = t
	w.draft.Subtype = ""
}

// Apply merges form input into the drafts. Field updates are accepted from
// any stage; changing value or tokenized recomputes tokenizedValue
// immediately.
func (w *Wizard) Apply(asset domain.AssetPatch, compliance domain.CompliancePatch) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if asset.Apply(&w.draft) {
		w.draft.TokenizedValue = domain.ComputeTokenizedValue(w.draft.Value, w.draft.Tokenized)
	}
	compliance.Apply(&w.record)
}

// AttachDocument sets the document to upload during submission.
func (w *Wizard) AttachDocument(doc Document) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.doc = &doc
}

// CanProceed reports whether the current stage's validation gate holds.
func (w *Wizard) CanProceed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.gate(w.step)
}

func (w *Wizard) gate(step Step) bool {
	switch step {
	case StepAssetSelection:
		return w.draft.Type.Valid()
	case StepAssetDetails:
		return w.draft.Name != "" && w.draft.Value > 0 && w.draft.Tokenized > 0
	case StepCompliance:
		return w.record.Jurisdiction != ""
	case StepDeploy:
		return true
	}
	return false
}

// Next advances one stage. It fails if the current gate does not hold.
func (w *Wizard) Next() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step == StepDeploy {
		return ErrAtFinalStep
	}
	if !w.gate(w.step) {
		return ErrStepIncomplete
	}
	w.step++
	return nil
}

// Back returns to the previous stage. Always allowed except from the first.
func (w *Wizard) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step == StepAssetSelection {
		return ErrAtFirstStep
	}
	w.step--
	return nil
}

// Submit runs the pipeline on the accumulated drafts. Only one submission
// may be in flight; callers see ErrSubmissionInFlight until the previous
// attempt has resolved. The wizard stays on Deploy after a failure so the
// user can retry.
func (w *Wizard) Submit(ctx context.Context) (domain.Asset, error) {
	w.mu.Lock()
	if w.submitting {
		w.mu.Unlock()
		return domain.Asset{}, ErrSubmissionInFlight
	}
	if w.step != StepDeploy {
		w.mu.Unlock()
		return domain.Asset{}, ErrNotAtDeploy
	}
	draft := w.draft
	record := w.record
	doc := w.doc
	w.submitting = true
	w.mu.Unlock()

	asset, err := w.pipeline.Run(ctx, draft, record, doc)

	w.mu.Lock()
	w.submitting = false
	w.mu.Unlock()
	return asset, err
}
