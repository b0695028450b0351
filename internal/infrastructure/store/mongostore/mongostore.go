// Package mongostore persists the whole store snapshot as a single MongoDB
// document. The snapshot travels as JSON bytes inside the document so money
// values keep their exact decimal representation, and ReplaceOne gives
// atomic whole-document replacement on every save.
package mongostore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sirpyerre/merch-store-api/internal/core/domain"
)

const (
	collectionStore = "store"
	documentID      = "snapshot"
	defaultTimeout  = 10 * time.Second
)

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping,
// and returns both the client and the selected database. A default timeout
// is applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	return client, db, nil
}

// Store is a MongoDB-backed SnapshotStore.
type Store struct {
	col *mongo.Collection
	mu  sync.Mutex
}

func New(db *mongo.Database) *Store {
	return &Store{col: db.Collection(collectionStore)}
}

type storeDocument struct {
	ID        string    `bson:"_id"`
	Data      []byte    `bson:"data"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Initialize writes the seed snapshot if and only if no document exists yet.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	err := s.col.FindOne(ctx, bson.M{"_id": documentID}).Err()
	if err == nil {
		return nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("store: find snapshot: %w", err)
	}

	return s.write(ctx, domain.NewSeedSnapshot())
}

func (s *Store) Load(ctx context.Context) (*domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return s.read(ctx)
}

// Update runs fn against a freshly loaded working copy and persists the
// mutated snapshot only when fn returns nil. The in-process mutex serializes
// concurrent read-modify-write cycles.
func (s *Store) Update(ctx context.Context, fn func(*domain.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	snap, err := s.read(ctx)
	if err != nil {
		return err
	}
	if err := fn(snap); err != nil {
		return err
	}
	return s.write(ctx, snap)
}

func (s *Store) read(ctx context.Context) (*domain.Snapshot, error) {
	var doc storeDocument
	if err := s.col.FindOne(ctx, bson.M{"_id": documentID}).Decode(&doc); err != nil {
		return nil, fmt.Errorf("store: find snapshot: %w", err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(doc.Data, &snap); err != nil {
		return nil, fmt.Errorf("store: decode snapshot: %w", err)
	}
	return &snap, nil
}

func (s *Store) write(ctx context.Context, snap *domain.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("store: encode snapshot: %w", err)
	}

	doc := storeDocument{ID: documentID, Data: data, UpdatedAt: time.Now().UTC()}
	_, err = s.col.ReplaceOne(ctx, bson.M{"_id": documentID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("store: replace snapshot: %w", err)
	}
	return nil
}
