package emails

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vibefolio/backend/internal/apperrors"
)

// Email is a collected contact address. Addresses are stored trimmed and
// lower-cased; the store's unique index rejects duplicates.
type Email struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email     string             `json:"email" bson:"email"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type Repository interface {
	// Insert persists the normalized address. A duplicate returns
	// apperrors.ErrDuplicate, never a silently ignored write.
	Insert(ctx context.Context, address string) (*Email, error)
}

// Normalize applies the storage canonicalization: trim then lower-case.
func Normalize(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

func validate(address string) error {
	if address == "" {
		return apperrors.Validation("email", "email is required")
	}
	if len(address) > 255 {
		return apperrors.Validation("email", "email must be at most 255 characters")
	}
	return nil
}

// MongoRepository stores addresses in the "emails" collection, which carries
// a unique index on the email field (see database.EnsureIndexes).
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Insert(ctx context.Context, address string) (*Email, error) {
	address = Normalize(address)
	if err := validate(address); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	e := &Email{Email: address, CreatedAt: now, UpdatedAt: now}
	res, err := r.col.InsertOne(ctx, e)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		e.ID = oid
	}
	return e, nil
}

// MemoryRepository is the test double for Repository.
type MemoryRepository struct {
	mu   sync.Mutex
	seen map[string]Email
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{seen: make(map[string]Email)}
}

func (r *MemoryRepository) Insert(ctx context.Context, address string) (*Email, error) {
	address = Normalize(address)
	if err := validate(address); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.seen[address]; ok {
		return nil, apperrors.ErrDuplicate
	}
	now := time.Now().UTC()
	e := Email{Email: address, CreatedAt: now, UpdatedAt: now}
	r.seen[address] = e
	return &e, nil
}
