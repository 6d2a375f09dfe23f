// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"crypto/sha256"
	"encoding/hex"
)

// FragmentCategory classifies a knowledge fragment within the legal corpus.
type FragmentCategory string

const (
	CategoryLegalRequirement FragmentCategory = "legal_requirement"
	CategoryAssetGuidance    FragmentCategory = "asset_guidance"
	CategoryClauseTemplate   FragmentCategory = "clause_template"
	CategoryValidationRule   FragmentCategory = "validation_rule"
)

// KnowledgeFragment is one immutable unit of legal source text from the
// knowledge store. Embedding vectors are held by the retrieval index, keyed
// by fragment ID and content hash, never on the fragment itself.
type KnowledgeFragment struct {
	// ID is unique within a corpus version and stable across versions
	// for unchanged content.
	ID string `json:"id" yaml:"id"`

	Text     string           `json:"text" yaml:"text"`
	Category FragmentCategory `json:"category" yaml:"category"`

	// SourceRef cites the jurisdiction source, e.g.
	// "Wills Act 1959 s.5".
	SourceRef string `json:"source_ref,omitempty" yaml:"source_ref,omitempty"`
}

// ContentHash returns the sha256 hex digest of the fragment's identifying
// content. Unchanged hashes let the index reuse cached embeddings.
func (f KnowledgeFragment) ContentHash() string {
	h := sha256.New()
	h.Write([]byte(f.ID))
	h.Write([]byte{0})
	h.Write([]byte(f.Text))
	h.Write([]byte{0})
	h.Write([]byte(f.Category))
	return hex.EncodeToString(h.Sum(nil))
}

// ScoredFragment pairs a fragment with its similarity score for one query.
type ScoredFragment struct {
	Fragment KnowledgeFragment
	Score    float64
}

// RetrievalResult is the ordered outcome of one top-k query: highest
// similarity first, ties broken by ascending fragment ID.
type RetrievalResult struct {
	Query     string
	Fragments []ScoredFragment
}

// IDs returns the fragment IDs in rank order.
func (r RetrievalResult) IDs() []string {
	ids := make([]string, len(r.Fragments))
	for i, sf := range r.Fragments {
		ids[i] = sf.Fragment.ID
	}
	return ids
}
