package jobs

import (
	"context"
	"testing"

	"github.com/emrgen/pagebuilder/internal/model"
	"github.com/emrgen/pagebuilder/internal/page"
	"github.com/emrgen/pagebuilder/internal/store"
	"github.com/emrgen/pagebuilder/internal/tester"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevisionPruner(t *testing.T) {
	ctx := context.TODO()
	tester.Setup()
	s := store.NewGormStore(tester.TestDB())

	for _, id := range []string{"page-1", "page-2"} {
		doc := page.CreateDraft("Fares")
		doc.ID = id
		n := int64(5)
		if id == "page-2" {
			n = 2
		}
		for v := int64(1); v <= n; v++ {
			doc.Version = v
			rev, err := model.NewPageRevision(doc)
			require.NoError(t, err)
			require.NoError(t, s.CreatePageRevision(ctx, rev))
		}
	}

	pruner := NewRevisionPruner(s, 3, "@every 1m")
	assert.Equal(t, "@every 1m", pruner.Schedule())

	removed, err := pruner.Prune(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	versions, err := s.ListRevisionVersions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 4, 3}, versions["page-1"])
	assert.Equal(t, []int64{2, 1}, versions["page-2"])

	removed, err = pruner.Prune(ctx)
	require.NoError(t, err)
	assert.Zero(t, removed)
}
