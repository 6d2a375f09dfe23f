// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meshintel/will-engine/internal/corpus"
	"github.com/meshintel/will-engine/internal/index"
	"github.com/meshintel/will-engine/pkg/types"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build the retrieval index over the legal corpus",
	Long: `Index loads the built-in Wills Act corpus (plus any --corpus-dir
fragments), embeds every fragment, and persists the vectors in the local
embedding cache. Re-indexing an unchanged corpus is a no-op served from
the cache.`,
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().Bool("local-embedder", false, "use the offline deterministic embedder instead of the API")
	rootCmd.AddCommand(indexCmd)
}

// newEmbedder selects the embedding backend from config and flags.
func newEmbedder(cfg types.EmbeddingConfig, forceLocal bool) index.Embedder {
	if forceLocal || cfg.Local {
		return index.NewLocalEmbedder()
	}
	return index.NewOpenAIEmbedder(cfg)
}

// buildIndex loads the corpus and rebuilds the retrieval index over it.
func buildIndex(ctx context.Context, cfg types.EngineConfig, forceLocal bool) (*corpus.Corpus, *index.Index, error) {
	c, err := corpus.Load(cfg.Corpus)
	if err != nil {
		return nil, nil, err
	}
	ix := index.New(newEmbedder(cfg.Embedding, forceLocal), cfg.Embedding.CacheDir)
	if err := ix.Rebuild(ctx, c); err != nil {
		return nil, nil, err
	}
	return c, ix, nil
}

func runIndex(cmd *cobra.Command, args []string) error {
	cfg := engineConfig(cmd)
	forceLocal, _ := cmd.Flags().GetBool("local-embedder")

	c, _, err := buildIndex(cmd.Context(), cfg, forceLocal)
	if err != nil {
		return err
	}
	fmt.Printf("Indexed %d fragments (corpus version %s)\n", c.Len(), c.Version())
	return nil
}
