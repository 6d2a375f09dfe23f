// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshintel/will-engine/internal/corpus"
	"github.com/meshintel/will-engine/pkg/types"
)

// countingEmbedder wraps LocalEmbedder and records how many texts were
// embedded, for cache behavior tests.
type countingEmbedder struct {
	inner Embedder
	mu    sync.Mutex
	calls int
	texts int
}

func (c *countingEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	c.mu.Lock()
	c.calls++
	c.texts += len(texts)
	c.mu.Unlock()
	return c.inner.Embed(ctx, texts)
}

// constantEmbedder returns the same vector for every text, forcing all
// similarity scores equal so tie-breaking is observable.
type constantEmbedder struct{}

func (constantEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = []float32{1, 0, 0}
	}
	return vectors, nil
}

func loadTestCorpus(t *testing.T) *corpus.Corpus {
	t.Helper()
	c, err := corpus.Load(types.CorpusConfig{})
	require.NoError(t, err)
	return c
}

func TestQueryBeforeRebuild(t *testing.T) {
	ix := New(NewLocalEmbedder(), "")
	_, err := ix.Query(context.Background(), "witness requirements", 4)
	assert.ErrorIs(t, err, ErrIndexUnavailable)
}

func TestQueryTopK(t *testing.T) {
	ix := New(NewLocalEmbedder(), "")
	c := loadTestCorpus(t)
	require.NoError(t, ix.Rebuild(context.Background(), c))

	res, err := ix.Query(context.Background(), "how many witnesses must sign the will", 4)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(res.Fragments), 4)
	seen := make(map[string]bool)
	for _, sf := range res.Fragments {
		assert.False(t, seen[sf.Fragment.ID], "duplicate fragment %s", sf.Fragment.ID)
		seen[sf.Fragment.ID] = true
	}
	for i := 1; i < len(res.Fragments); i++ {
		assert.GreaterOrEqual(t, res.Fragments[i-1].Score, res.Fragments[i].Score)
	}
}

func TestQueryDeterministic(t *testing.T) {
	ix := New(NewLocalEmbedder(), "")
	c := loadTestCorpus(t)
	require.NoError(t, ix.Rebuild(context.Background(), c))

	first, err := ix.Query(context.Background(), "residuary estate clause", 4)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := ix.Query(context.Background(), "residuary estate clause", 4)
		require.NoError(t, err)
		assert.Equal(t, first.IDs(), again.IDs())
	}
}

// muteEmbedder delegates until muted, then returns no vectors and no
// error, as a misbehaving backend might.
type muteEmbedder struct {
	inner Embedder
	muted bool
}

func (e *muteEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if e.muted {
		return nil, nil
	}
	return e.inner.Embed(ctx, texts)
}

func TestQueryVectorCountMismatch(t *testing.T) {
	me := &muteEmbedder{inner: NewLocalEmbedder()}
	ix := New(me, "")
	c := loadTestCorpus(t)
	require.NoError(t, ix.Rebuild(context.Background(), c))

	me.muted = true
	_, err := ix.Query(context.Background(), "witness requirements", 4)
	require.ErrorIs(t, err, ErrEmbeddingFailure)
	assert.Contains(t, err.Error(), "0 vectors")
	assert.NotContains(t, err.Error(), "<nil>")
}

func TestQueryEmbeddingMemoized(t *testing.T) {
	ce := &countingEmbedder{inner: NewLocalEmbedder()}
	ix := New(ce, "")
	c := loadTestCorpus(t)
	require.NoError(t, ix.Rebuild(context.Background(), c))
	after := ce.texts

	for i := 0; i < 3; i++ {
		_, err := ix.Query(context.Background(), "executor appointment clause", 4)
		require.NoError(t, err)
	}
	assert.Equal(t, after+1, ce.texts, "repeated query text embeds once")
}

func TestQueryTieBreakByFragmentID(t *testing.T) {
	ix := New(constantEmbedder{}, "")
	c := loadTestCorpus(t)
	require.NoError(t, ix.Rebuild(context.Background(), c))

	res, err := ix.Query(context.Background(), "anything", 5)
	require.NoError(t, err)

	require.Len(t, res.Fragments, 5)
	ids := res.IDs()
	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1], ids[i])
	}
}

func TestRebuildUsesCache(t *testing.T) {
	dir := t.TempDir()
	ce := &countingEmbedder{inner: NewLocalEmbedder()}
	c := loadTestCorpus(t)

	ix := New(ce, dir)
	require.NoError(t, ix.Rebuild(context.Background(), c))
	embeddedFirst := ce.texts
	assert.Equal(t, c.Len(), embeddedFirst)

	// Second rebuild of the same corpus must be served from the cache.
	ix2 := New(ce, dir)
	require.NoError(t, ix2.Rebuild(context.Background(), c))
	assert.Equal(t, embeddedFirst, ce.texts)
}

func TestRebuildCacheInvalidatedByContentChange(t *testing.T) {
	cacheDir := t.TempDir()
	corpusDir := t.TempDir()
	ce := &countingEmbedder{inner: NewLocalEmbedder()}

	base := loadTestCorpus(t)
	ix := New(ce, cacheDir)
	require.NoError(t, ix.Rebuild(context.Background(), base))
	after := ce.texts

	extra := `fragments:
  - id: zz-new-fragment
    category: asset_guidance
    text: "New guidance added after the first build."
`
	require.NoError(t, os.WriteFile(filepath.Join(corpusDir, "extra.yaml"), []byte(extra), 0o644))
	extended, err := corpus.Load(types.CorpusConfig{Dir: corpusDir})
	require.NoError(t, err)

	require.NoError(t, ix.Rebuild(context.Background(), extended))
	assert.Equal(t, after+extended.Len(), ce.texts, "new corpus version must re-embed everything")
	assert.Equal(t, extended.Version(), ix.CorpusVersion())
}

func TestConcurrentQueries(t *testing.T) {
	ix := New(NewLocalEmbedder(), "")
	c := loadTestCorpus(t)
	require.NoError(t, ix.Rebuild(context.Background(), c))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := ix.Query(context.Background(), "executor appointment", 3)
			assert.NoError(t, err)
			assert.NotEmpty(t, res.Fragments)
		}()
	}
	// Rebuild concurrently with the readers; they must see a complete
	// snapshot either way.
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, ix.Rebuild(context.Background(), c))
	}()
	wg.Wait()
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, cosine([]float32{1, 2, 3}, []float32{1, 2, 3}), 1e-9)
	assert.InDelta(t, 0.0, cosine([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.Equal(t, 0.0, cosine([]float32{1, 2}, []float32{1, 2, 3}))
	assert.Equal(t, 0.0, cosine([]float32{0, 0}, []float32{1, 2}))
}
