// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corpus reads the legal knowledge store: the built-in Wills Act
// 1959 fragment set plus optional fragment YAML files layered on top. A
// loaded corpus is immutable and carries a content-derived version token
// used by the retrieval index for cache invalidation.
package corpus

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/meshintel/will-engine/pkg/types"
)

// Corpus is one immutable version of the knowledge store.
type Corpus struct {
	fragments []types.KnowledgeFragment
	byID      map[string]types.KnowledgeFragment
	version   string
}

// fragmentFile is the YAML layout of one corpus file: a fragment list.
type fragmentFile struct {
	Fragments []types.KnowledgeFragment `yaml:"fragments"`
}

// Load assembles a corpus from the built-in fragment set and, when
// cfg.Dir is set, every *.yaml file in that directory. A directory
// fragment with an ID already present replaces the built-in one.
func Load(cfg types.CorpusConfig) (*Corpus, error) {
	byID := make(map[string]types.KnowledgeFragment)

	if !cfg.BuiltinDisabled {
		for _, f := range builtinFragments() {
			byID[f.ID] = f
		}
	}

	if cfg.Dir != "" {
		entries, err := os.ReadDir(cfg.Dir)
		if err != nil {
			return nil, fmt.Errorf("reading corpus directory %s: %w", cfg.Dir, err)
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
				continue
			}
			path := filepath.Join(cfg.Dir, entry.Name())
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("reading %s: %w", path, err)
			}
			var ff fragmentFile
			if err := yaml.Unmarshal(data, &ff); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}
			for _, f := range ff.Fragments {
				if f.ID == "" || f.Text == "" {
					return nil, fmt.Errorf("%s: fragment missing id or text", path)
				}
				byID[f.ID] = f
			}
		}
	}

	if len(byID) == 0 {
		return nil, fmt.Errorf("corpus is empty")
	}

	fragments := make([]types.KnowledgeFragment, 0, len(byID))
	for _, f := range byID {
		fragments = append(fragments, f)
	}
	sort.Slice(fragments, func(i, j int) bool { return fragments[i].ID < fragments[j].ID })

	return &Corpus{
		fragments: fragments,
		byID:      byID,
		version:   computeVersion(fragments),
	}, nil
}

// computeVersion derives the opaque corpus version token from the sorted
// fragment content hashes. Any content change changes the token.
func computeVersion(fragments []types.KnowledgeFragment) string {
	h := sha256.New()
	for _, f := range fragments {
		h.Write([]byte(f.ContentHash()))
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// Fragments returns the fragments in ascending ID order. Callers must not
// mutate the returned slice.
func (c *Corpus) Fragments() []types.KnowledgeFragment {
	return c.fragments
}

// FragmentByID resolves one fragment.
func (c *Corpus) FragmentByID(id string) (types.KnowledgeFragment, bool) {
	f, ok := c.byID[id]
	return f, ok
}

// HasFragment reports whether the corpus holds the given fragment ID.
func (c *Corpus) HasFragment(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Version returns the corpus version token.
func (c *Corpus) Version() string {
	return c.version
}

// Len returns the fragment count.
func (c *Corpus) Len() int {
	return len(c.fragments)
}
