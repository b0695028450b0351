package ports

import (
	"context"

	"github.com/sirpyerre/merch-store-api/internal/core/domain"
)

// SnapshotStore is the single shared persistence boundary. The whole state
// is loaded and saved as one document; there is no finer-grained locking
// underneath, so every read-modify-write cycle must go through Update.
type SnapshotStore interface {
	// Initialize creates the durable state with the seed catalog if and only
	// if no prior state exists. It must never overwrite existing data.
	Initialize(ctx context.Context) error

	// Load returns the current state. The returned snapshot is a private
	// copy; mutating it has no effect on durable storage.
	Load(ctx context.Context) (*domain.Snapshot, error)

	// Update runs fn against a freshly loaded working copy under the store's
	// mutual-exclusion boundary and persists the whole mutated snapshot only
	// when fn returns nil. On a non-nil error nothing is written, so a
	// failed cycle has zero observable effect. Concurrent updates are
	// serialized, which linearizes purchase processing and registration.
	Update(ctx context.Context, fn func(*domain.Snapshot) error) error
}
