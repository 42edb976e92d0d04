package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forensilink/backend/internal/store"
	"github.com/forensilink/backend/internal/store/memory"
)

func TestLoadEmbeddedFixture(t *testing.T) {
	f, err := Load("")
	require.NoError(t, err)
	require.Len(t, f.Cases, 6)

	varma := f.Cases[0]
	assert.Equal(t, "2025-047-VA", varma.ID)
	assert.Len(t, varma.Entities, 11)
	assert.Len(t, varma.Connections, 13)
}

func TestApply(t *testing.T) {
	ctx := context.Background()
	db := memory.NewStore()

	f, err := Load("")
	require.NoError(t, err)

	stats, err := f.Apply(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 6, stats.Cases)
	assert.Equal(t, 11, stats.Entities)
	assert.Equal(t, 13, stats.Connections)

	t.Run("defaults applied through the store", func(t *testing.T) {
		c, err := db.GetCase(ctx, "2025-047-VA")
		require.NoError(t, err)
		assert.Equal(t, "active", c.Status)

		entities, err := db.ListEntitiesByCase(ctx, "2025-047-VA")
		require.NoError(t, err)
		for _, e := range entities {
			if e.ID == "arjun" {
				// No fixture timestamp on the primary suspect.
				assert.Nil(t, e.Time)
				assert.Equal(t, 100, e.Size)
			}
		}
	})

	t.Run("reapplying conflicts on existing ids", func(t *testing.T) {
		_, err := f.Apply(ctx, db)
		assert.ErrorIs(t, err, store.ErrConflict)
	})
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("does/not/exist.yaml")
	require.Error(t, err)
}
