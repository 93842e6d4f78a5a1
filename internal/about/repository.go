package about

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vibefolio/backend/internal/apperrors"
)

// Repository persists the About singleton. Replace always overwrites the
// whole document (never merges); Get returns ErrNotFound when no document
// has been written yet.
type Repository interface {
	Replace(ctx context.Context, a *About) (*About, error)
	Get(ctx context.Context) (*About, error)
}

// MongoRepository stores the singleton under the fixed DocumentKey.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Replace(ctx context.Context, a *About) (*About, error) {
	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
	a.ID = DocumentKey

	opts := options.FindOneAndReplace().SetUpsert(true).SetReturnDocument(options.After)
	var stored About
	if err := r.col.FindOneAndReplace(ctx, bson.M{"_id": DocumentKey}, a, opts).Decode(&stored); err != nil {
		if err == mongo.ErrNoDocuments {
			// upsert guarantees a document; keep the in-memory copy as fallback
			return a, nil
		}
		return nil, err
	}
	return &stored, nil
}

func (r *MongoRepository) Get(ctx context.Context) (*About, error) {
	var a About
	if err := r.col.FindOne(ctx, bson.M{"_id": DocumentKey}).Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// MemoryRepository is the test double for Repository.
type MemoryRepository struct {
	mu  sync.RWMutex
	doc *About
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Replace(ctx context.Context, a *About) (*About, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
	a.ID = DocumentKey
	cp := *a
	r.doc = &cp
	return &cp, nil
}

func (r *MemoryRepository) Get(ctx context.Context) (*About, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.doc == nil {
		return nil, apperrors.ErrNotFound
	}
	cp := *r.doc
	return &cp, nil
}
