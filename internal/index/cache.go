// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// embeddingCache persists fragment vectors in SQLite so rebuilds against
// an unchanged corpus never re-call the embedding backend. Rows are keyed
// by (corpus_version, fragment_id, content_hash); a content change under
// the same ID misses the cache and forces re-embedding.
type embeddingCache struct {
	db *sql.DB
}

const cacheSchema = `
CREATE TABLE IF NOT EXISTS embeddings (
	corpus_version TEXT NOT NULL,
	fragment_id    TEXT NOT NULL,
	content_hash   TEXT NOT NULL,
	dim            INTEGER NOT NULL,
	vector         BLOB NOT NULL,
	PRIMARY KEY (corpus_version, fragment_id, content_hash)
);
`

// openCache opens or creates the cache database under dir.
func openCache(dir string) (*embeddingCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}
	path := filepath.Join(dir, "embeddings.db")
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening embedding cache %s: %w", path, err)
	}
	if _, err := db.Exec(cacheSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating embedding cache schema: %w", err)
	}
	return &embeddingCache{db: db}, nil
}

func (c *embeddingCache) Close() error {
	return c.db.Close()
}

// Get returns the cached vector for the key, or nil on a miss.
func (c *embeddingCache) Get(corpusVersion, fragmentID, contentHash string) ([]float32, error) {
	var dim int
	var blob []byte
	err := c.db.QueryRow(
		`SELECT dim, vector FROM embeddings
		 WHERE corpus_version = ? AND fragment_id = ? AND content_hash = ?`,
		corpusVersion, fragmentID, contentHash,
	).Scan(&dim, &blob)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading embedding cache: %w", err)
	}
	vec, err := decodeVector(blob, dim)
	if err != nil {
		return nil, fmt.Errorf("decoding cached vector for %s: %w", fragmentID, err)
	}
	return vec, nil
}

// Put stores a vector, replacing any existing row for the key.
func (c *embeddingCache) Put(corpusVersion, fragmentID, contentHash string, vec []float32) error {
	_, err := c.db.Exec(
		`INSERT OR REPLACE INTO embeddings (corpus_version, fragment_id, content_hash, dim, vector)
		 VALUES (?, ?, ?, ?, ?)`,
		corpusVersion, fragmentID, contentHash, len(vec), encodeVector(vec),
	)
	if err != nil {
		return fmt.Errorf("writing embedding cache: %w", err)
	}
	return nil
}

func encodeVector(vec []float32) []byte {
	buf := make([]byte, 4*len(vec))
	for i, v := range vec {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(v))
	}
	return buf
}

func decodeVector(blob []byte, dim int) ([]float32, error) {
	if len(blob) != 4*dim {
		return nil, fmt.Errorf("vector blob is %d bytes, want %d", len(blob), 4*dim)
	}
	vec := make([]float32, dim)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(blob[4*i:]))
	}
	return vec, nil
}
