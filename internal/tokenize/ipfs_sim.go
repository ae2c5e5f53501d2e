package tokenize

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SimulatedContentStore mimics an IPFS client: it fabricates content
// references and sleeps to imitate network latency. Content is not retained.
type SimulatedContentStore struct {
	FileDelay     time.Duration
	MetadataDelay time.Duration
}

// NewSimulatedContentStore returns a simulator with the demo latencies.
func NewSimulatedContentStore() *SimulatedContentStore {
	return &SimulatedContentStore{FileDelay: time.Second, MetadataDelay: 500 * time.Millisecond}
}

// StoreFile fabricates a CID-shaped reference for the document.
func (s *SimulatedContentStore) StoreFile(ctx context.Context, doc Document) (string, error) {
	if err := sleep(ctx, s.FileDelay); err != nil {
		return "", err
	}
	ref := fakeContentRef()
	logrus.WithFields(logrus.Fields{"file": doc.Name, "ref": ref}).Info("Stored document")
	return ref, nil
}

// StoreMetadata fabricates a CID-shaped reference for the metadata bundle.
func (s *SimulatedContentStore) StoreMetadata(ctx context.Context, metadata map[string]any) (string, error) {
	if err := sleep(ctx, s.MetadataDelay); err != nil {
		return "", err
	}
	ref := fakeContentRef()
	logrus.WithField("ref", ref).Info("Stored metadata bundle")
	return ref, nil
}

func fakeContentRef() string {
	return "ipfs://Qm" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// sleep waits for d or until the context is done, whichever comes first.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
