package store_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Londondannyboy/thechief-quest/internal/content"
	"github.com/Londondannyboy/thechief-quest/internal/metrics"
	"github.com/Londondannyboy/thechief-quest/internal/store"
	"github.com/Londondannyboy/thechief-quest/internal/store/memory"
)

func TestInstrumented_ObservesEachOperation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := memory.New()
	require.NoError(t, backend.Create(ctx, &content.Document{ID: "1", Slug: "about"}))

	reg := prometheus.NewRegistry()
	s := store.NewInstrumented(backend, metrics.New(reg))

	doc, err := s.DocumentBySlug(ctx, "about")
	require.NoError(t, err)
	require.NotNil(t, doc)

	_, err = s.Count(ctx, store.CountAgencies)
	require.NoError(t, err)

	count, err := testutil.GatherAndCount(reg, "thechief_store_query_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestIsUK(t *testing.T) {
	t.Parallel()

	assert.True(t, store.IsUK("uk"))
	assert.True(t, store.IsUK("UK"))
	assert.False(t, store.IsUK("europe"))
}
