// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// CorpusConfig holds settings for the knowledge store reader.
type CorpusConfig struct {
	// Dir is an optional directory of fragment YAML files merged over
	// the built-in corpus. Files ending in .yaml each hold a fragment
	// list.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`

	// BuiltinDisabled drops the built-in Wills Act corpus, leaving only
	// Dir.
	BuiltinDisabled bool `json:"builtin_disabled,omitempty" yaml:"builtin_disabled,omitempty"`
}

// EmbeddingConfig holds settings for the retrieval index's embedder.
type EmbeddingConfig struct {
	// Model is the embedding model identifier
	// (e.g. "text-embedding-3-small").
	Model string `json:"model" yaml:"model"`

	// APIKey authenticates against the embeddings endpoint.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// BaseURL overrides the endpoint for OpenAI-compatible local
	// providers. Empty means the public OpenAI API.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// CacheDir is where the SQLite embedding cache lives
	// (default "index").
	CacheDir string `json:"cache_dir" yaml:"cache_dir"`

	// Local selects the deterministic in-process embedder instead of
	// the API. Intended for offline runs and tests.
	Local bool `json:"local,omitempty" yaml:"local,omitempty"`
}

// GenerationConfig holds settings for the text-generation capability.
type GenerationConfig struct {
	// Model is the chat model identifier (e.g. "gpt-4o-mini", or a
	// local model name when BaseURL points at a JAN.ai/Ollama
	// endpoint).
	Model string `json:"model" yaml:"model"`

	APIKey  string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// Temperature for clause generation. Legal drafting wants it low
	// (default 0.1).
	Temperature float32 `json:"temperature" yaml:"temperature"`
}

// AssemblyConfig holds settings for the clause assembler.
type AssemblyConfig struct {
	// TopK is the number of fragments retrieved per section (default 4).
	TopK int `json:"top_k" yaml:"top_k"`

	// MaxRetries bounds generation attempts per section (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// SectionTimeout caps one generation call (default 60s).
	SectionTimeout time.Duration `json:"section_timeout" yaml:"section_timeout"`

	// OutputDir is where assembled wills and manifests are written
	// (default "output/wills").
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// EngineConfig groups all component configurations.
type EngineConfig struct {
	Corpus     CorpusConfig     `json:"corpus" yaml:"corpus"`
	Embedding  EmbeddingConfig  `json:"embedding" yaml:"embedding"`
	Generation GenerationConfig `json:"generation" yaml:"generation"`
	Assembly   AssemblyConfig   `json:"assembly" yaml:"assembly"`
}
