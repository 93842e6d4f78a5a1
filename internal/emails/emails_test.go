package emails

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vibefolio/backend/internal/apperrors"
)

func TestInsert_NormalizesAddress(t *testing.T) {
	r := NewMemoryRepository()

	e, err := r.Insert(context.Background(), "  A@B.com ")
	require.NoError(t, err)
	require.Equal(t, "a@b.com", e.Email)
	require.False(t, e.CreatedAt.IsZero())
}

func TestInsert_DuplicateRejected(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	_, err := r.Insert(ctx, "a@b.com")
	require.NoError(t, err)

	// same address in different case is still a duplicate
	_, err = r.Insert(ctx, "A@B.com")
	require.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestInsert_Validation(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	_, err := r.Insert(ctx, "   ")
	require.Error(t, err)
	require.True(t, apperrors.IsValidation(err))

	long := make([]byte, 256)
	for i := range long {
		long[i] = 'x'
	}
	_, err = r.Insert(ctx, string(long))
	require.Error(t, err)
	require.True(t, apperrors.IsValidation(err))
}
