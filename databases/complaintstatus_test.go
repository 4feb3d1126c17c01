package databases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupIsCaseInsensitive(t *testing.T) {
	db := NewComplaintStatusDatabase()

	upper, err := db.Lookup(context.Background(), "CMP001")
	require.NoError(t, err)
	assert.Equal(t, "Under Investigation", upper.Status)

	lower, err := db.Lookup(context.Background(), "cmp001")
	require.NoError(t, err)
	assert.Equal(t, upper, lower)
}

func TestLookupUnknownComplaint(t *testing.T) {
	db := NewComplaintStatusDatabase()

	status, err := db.Lookup(context.Background(), "CMP999")
	assert.Nil(t, status)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookupRequiresExactMatch(t *testing.T) {
	db := NewComplaintStatusDatabase()

	// no partial or fuzzy matching
	status, err := db.Lookup(context.Background(), "CMP")
	assert.Nil(t, status)
	assert.ErrorIs(t, err, ErrNotFound)

	status, err = db.Lookup(context.Background(), "CMP0011")
	assert.Nil(t, status)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookupAdditionalInformationRequired(t *testing.T) {
	db := NewComplaintStatusDatabase()

	status, err := db.Lookup(context.Background(), "CMP002")
	require.NoError(t, err)
	assert.Equal(t, "Additional Information Required", status.Status)
	assert.Equal(t, "2024-01-18", status.LastUpdate)
}
