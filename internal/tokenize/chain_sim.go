package tokenize

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SimulatedMinter mimics a token-factory contract: it fabricates a contract
// address and transaction hash after an artificial confirmation delay.
type SimulatedMinter struct {
	Delay time.Duration
}

// NewSimulatedMinter returns a simulator with the demo confirmation delay.
func NewSimulatedMinter() *SimulatedMinter {
	return &SimulatedMinter{Delay: time.Second}
}

// Mint fabricates the deployment result for an asset token.
func (m *SimulatedMinter) Mint(ctx context.Context, chain, name, symbol string, supply int) (MintResult, error) {
	if err := sleep(ctx, m.Delay); err != nil {
		return MintResult{}, err
	}
	result := MintResult{
		ContractAddress: fakeChainRef(),
		TransactionHash: fakeChainRef(),
	}
	logrus.WithFields(logrus.Fields{
		"chain":    chain,
		"name":     name,
		"symbol":   symbol,
		"supply":   supply,
		"contract": result.ContractAddress,
	}).Info("Minted asset token")
	return result, nil
}

func fakeChainRef() string {
	return "0x" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
