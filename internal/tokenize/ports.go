// Package tokenize implements the tokenization wizard: a linear multi-step
// draft flow and the submission pipeline that turns a finished draft into a
// stored, minted asset with its compliance record.
package tokenize

import "context"

// Document is an uploaded file attached to a draft.
type Document struct {
	Name    string
	Content []byte
}

// ContentStore is the document/metadata storage capability. References are
// opaque; callers only ever pass them back for retrieval.
type ContentStore interface {
	// StoreFile stores a document and returns its content reference.
	StoreFile(ctx context.Context, doc Document) (string, error)
	// StoreMetadata stores a JSON metadata bundle and returns its content
	// reference.
	StoreMetadata(ctx context.Context, metadata map[string]any) (string, error)
}

// MintResult is what the ledger returns for a newly created asset token.
type MintResult struct {
	ContractAddress string
	TransactionHash string
}

// TokenMinter is the ledger capability that deploys an asset token contract.
type TokenMinter interface {
	Mint(ctx context.Context, chain, name, symbol string, supply int) (MintResult, error)
}
