// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/meshintel/will-engine/internal/corpus"
	"github.com/meshintel/will-engine/pkg/types"
)

var (
	// ErrIndexUnavailable is returned by Query before any successful Rebuild.
	ErrIndexUnavailable = errors.New("retrieval index has no fragments indexed")

	// ErrEmbeddingFailure wraps embedding backend errors.
	ErrEmbeddingFailure = errors.New("embedding failure")
)

// entry is one indexed fragment with its vector.
type entry struct {
	fragment types.KnowledgeFragment
	vector   []float32
}

// snapshot is one immutable built index. Queries run against a snapshot
// while Rebuild prepares its replacement.
type snapshot struct {
	corpusVersion string
	entries       []entry
}

// Index answers top-k similarity queries over one corpus version.
// Query is safe for concurrent use; Rebuild swaps in a new snapshot
// atomically, so readers see either the prior or the new index, never a
// partial one.
type Index struct {
	embedder Embedder
	cacheDir string

	mu   sync.RWMutex
	snap *snapshot

	// queries memoizes query-text vectors for the life of the process,
	// so repeated section queries embed once.
	qmu     sync.Mutex
	queries map[string][]float32
}

// New returns an unbuilt index. Query fails with ErrIndexUnavailable
// until the first successful Rebuild. cacheDir may be empty to disable
// the persistent embedding cache.
func New(embedder Embedder, cacheDir string) *Index {
	return &Index{embedder: embedder, cacheDir: cacheDir, queries: make(map[string][]float32)}
}

// Rebuild indexes every fragment of the corpus. Cached vectors for
// unchanged fragments are reused, so rebuilding against an unchanged
// corpus never calls the embedding backend. The built snapshot replaces
// the current one atomically on success; on error the prior snapshot
// stays in service.
func (ix *Index) Rebuild(ctx context.Context, c *corpus.Corpus) error {
	fragments := c.Fragments()
	if len(fragments) == 0 {
		return ErrIndexUnavailable
	}

	var cache *embeddingCache
	if ix.cacheDir != "" {
		var err error
		cache, err = openCache(ix.cacheDir)
		if err != nil {
			return err
		}
		defer cache.Close()
	}

	entries := make([]entry, len(fragments))
	var missing []int
	for i, f := range fragments {
		entries[i].fragment = f
		if cache != nil {
			vec, err := cache.Get(c.Version(), f.ID, f.ContentHash())
			if err != nil {
				return err
			}
			entries[i].vector = vec
		}
		if entries[i].vector == nil {
			missing = append(missing, i)
		}
	}

	if len(missing) > 0 {
		texts := make([]string, len(missing))
		for j, i := range missing {
			texts[j] = fragments[i].Text
		}
		vectors, err := ix.embedder.Embed(ctx, texts)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrEmbeddingFailure, err)
		}
		if len(vectors) != len(missing) {
			return fmt.Errorf("%w: got %d vectors for %d fragments", ErrEmbeddingFailure, len(vectors), len(missing))
		}
		for j, i := range missing {
			entries[i].vector = vectors[j]
			if cache != nil {
				f := fragments[i]
				if err := cache.Put(c.Version(), f.ID, f.ContentHash(), vectors[j]); err != nil {
					return err
				}
			}
		}
	}

	ix.mu.Lock()
	ix.snap = &snapshot{corpusVersion: c.Version(), entries: entries}
	ix.mu.Unlock()
	return nil
}

// CorpusVersion returns the version token of the indexed corpus, or ""
// before the first Rebuild.
func (ix *Index) CorpusVersion() string {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	if ix.snap == nil {
		return ""
	}
	return ix.snap.corpusVersion
}

// Query embeds text with the index's embedding function and returns the
// k most similar fragments by cosine similarity, ties broken by
// ascending fragment ID. For a fixed corpus version and query text the
// result ordering is stable across calls.
func (ix *Index) Query(ctx context.Context, text string, k int) (*types.RetrievalResult, error) {
	ix.mu.RLock()
	snap := ix.snap
	ix.mu.RUnlock()

	if snap == nil || len(snap.entries) == 0 {
		return nil, ErrIndexUnavailable
	}
	if k <= 0 {
		return nil, fmt.Errorf("query k must be positive, got %d", k)
	}

	queryVec, err := ix.queryVector(ctx, text)
	if err != nil {
		return nil, err
	}

	scored := make([]types.ScoredFragment, len(snap.entries))
	for i, e := range snap.entries {
		scored[i] = types.ScoredFragment{
			Fragment: e.fragment,
			Score:    cosine(queryVec, e.vector),
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Fragment.ID < scored[j].Fragment.ID
	})
	if k < len(scored) {
		scored = scored[:k]
	}
	return &types.RetrievalResult{Query: text, Fragments: scored}, nil
}

func (ix *Index) queryVector(ctx context.Context, text string) ([]float32, error) {
	ix.qmu.Lock()
	vec, ok := ix.queries[text]
	ix.qmu.Unlock()
	if ok {
		return vec, nil
	}

	vecs, err := ix.embedder.Embed(ctx, []string{text})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmbeddingFailure, err)
	}
	if len(vecs) != 1 {
		return nil, fmt.Errorf("%w: got %d vectors for one query", ErrEmbeddingFailure, len(vecs))
	}
	ix.qmu.Lock()
	ix.queries[text] = vecs[0]
	ix.qmu.Unlock()
	return vecs[0], nil
}
