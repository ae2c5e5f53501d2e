package tokenize

import (
	"context"
	"strings"
	"time"

	"tokenfolio/internal/domain"
	"tokenfolio/internal/service"
)

// DefaultCallTimeout bounds each external call in the pipeline. The mocked
// collaborators respond in about a second; a real IPFS node or chain RPC
// gets a generous but finite window.
const DefaultCallTimeout = 30 * time.Second

// Pipeline runs the submission sequence for a finished wizard draft:
// optional document upload, metadata bundle upload, token mint, then the
// all-or-nothing asset+compliance write. Steps run strictly in order; the
// first failure aborts the rest.
type Pipeline struct {
	content     ContentStore
	minter      TokenMinter
	svc         *service.Service
	callTimeout time.Duration
}

// NewPipeline wires the pipeline's collaborators.
func NewPipeline(content ContentStore, minter TokenMinter, svc *service.Service) *Pipeline {
	return &Pipeline{content: content, minter: minter, svc: svc, callTimeout: DefaultCallTimeout}
}

// Run executes the pipeline and returns the stored asset. Nothing is
// persisted unless every external call succeeded first.
func (p *Pipeline) Run(ctx context.Context, draft domain.Asset, record domain.Compliance, doc *Document) (domain.Asset, error) {
	var docRef string
	if doc != nil {
		ref, err := p.storeFile(ctx, *doc)
		if err != nil {
			return domain.Asset{}, err
		}
		docRef = ref
	}

	bundle := make(map[string]any, len(draft.Metadata)+2)
	for k, v := range draft.Metadata {
		bundle[k] = v
	}
	bundle["description"] = draft.Description
	bundle["createdAt"] = time.Now().UTC().Format(time.RFC3339)
	metaRef, err := p.storeMetadata(ctx, bundle)
	if err != nil {
		return domain.Asset{}, err
	}

	minted, err := p.mint(ctx, string(draft.Blockchain), draft.Name, Symbol(draft.Name), int(draft.Value))
	if err != nil {
		return domain.Asset{}, err
	}

	asset := draft
	asset.Status = domain.AssetStatusActive
	asset.ContractAddress = minted.ContractAddress
	if docRef != "" {
		asset.IPFSHash = docRef
	} else {
		asset.IPFSHash = metaRef
	}
	if err := p.svc.TokenizeAsset(ctx, &asset, &record); err != nil {
		return domain.Asset{}, err
	}
	return asset, nil
}

func (p *Pipeline) storeFile(ctx context.Context, doc Document) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.callTimeout)
	defer cancel()
	return p.content.StoreFile(ctx, doc)
}

func (p *Pipeline) storeMetadata(ctx context.Context, bundle map[string]any) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.callTimeout)
	defer cancel()
	return p.content.StoreMetadata(ctx, bundle)
}

func (p *Pipeline) mint(ctx context.Context, chain, name, symbol string, supply int) (MintResult, error) {
	ctx, cancel := context.WithTimeout(ctx, p.callTimeout)
	defer cancel()
	return p.minter.Mint(ctx, chain, name, symbol, supply)
}

// Symbol derives the token symbol for an asset: "TOK" plus the first three
// letters of the name, uppercased.
func Symbol(name string) string {
	runes := []rune(name)
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return "TOK" + strings.ToUpper(string(runes))
}
