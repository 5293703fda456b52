package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListQuery(t *testing.T) {
	query, args, err := listQuery()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, name, nightly_rate, capacity, bed_type, size_sq_ft, amenities, description, images, is_available FROM rooms ORDER BY id ASC",
		query)
	assert.Empty(t, args)
}

func TestGetByIDQuery(t *testing.T) {
	query, args, err := getByIDQuery(42)
	require.NoError(t, err)

	assert.Contains(t, query, "FROM rooms WHERE id = $1")
	assert.Equal(t, []interface{}{int64(42)}, args)
}
