package datagen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forensilink/backend/internal/store"
	"github.com/forensilink/backend/internal/store/memory"
)

func TestGenerate(t *testing.T) {
	ctx := context.Background()
	db := memory.NewStore()

	cfg := DefaultConfig()
	cfg.Cases = 5
	cfg.Seed = 42

	cases, entities, connections, err := Generate(ctx, db, cfg)
	require.NoError(t, err)
	assert.Equal(t, 5, cases)
	assert.Greater(t, entities, 0)

	listed, err := db.ListCases(ctx, store.CaseFilter{})
	require.NoError(t, err)
	require.Len(t, listed, 5)

	t.Run("connections stay within their case", func(t *testing.T) {
		total := 0
		for _, c := range listed {
			ents, err := db.ListEntitiesByCase(ctx, c.ID)
			require.NoError(t, err)
			ids := make(map[string]bool, len(ents))
			for _, e := range ents {
				ids[e.ID] = true
			}

			conns, err := db.ListConnectionsByCase(ctx, c.ID)
			require.NoError(t, err)
			for _, conn := range conns {
				assert.True(t, ids[conn.Source], "source %q not in case %q", conn.Source, c.ID)
				assert.True(t, ids[conn.Target], "target %q not in case %q", conn.Target, c.ID)
				assert.NotEqual(t, conn.Source, conn.Target)
			}
			total += len(conns)
		}
		assert.Equal(t, connections, total)
	})

	t.Run("fixed seed is deterministic", func(t *testing.T) {
		again := memory.NewStore()
		c2, e2, n2, err := Generate(ctx, again, cfg)
		require.NoError(t, err)
		assert.Equal(t, cases, c2)
		assert.Equal(t, entities, e2)
		assert.Equal(t, connections, n2)
	})
}
