package databases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybercell/cybercrime-portal-api/models"
)

func TestMemorySessionStoreRoundTrip(t *testing.T) {
	store := NewMemorySessionDatabase()
	session := models.Session{
		ID:        "abc-123",
		Identity:  models.Identity{ID: "1", Email: "admin@mppolice.gov.in", Role: models.RoleAdmin},
		CreatedAt: time.Now().UTC(),
	}

	require.NoError(t, store.Save(context.Background(), session))

	found, err := store.Find(context.Background(), "abc-123")
	require.NoError(t, err)
	assert.Equal(t, session.Identity, found.Identity)
}

func TestMemorySessionStoreDeleteIsIdempotent(t *testing.T) {
	store := NewMemorySessionDatabase()
	session := models.Session{ID: "abc-123"}

	require.NoError(t, store.Save(context.Background(), session))
	require.NoError(t, store.Delete(context.Background(), "abc-123"))

	_, err := store.Find(context.Background(), "abc-123")
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting again, or deleting something never saved, is a no-op
	assert.NoError(t, store.Delete(context.Background(), "abc-123"))
	assert.NoError(t, store.Delete(context.Background(), "never-existed"))
}

func TestMemorySessionStoreFindUnknown(t *testing.T) {
	store := NewMemorySessionDatabase()

	_, err := store.Find(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
