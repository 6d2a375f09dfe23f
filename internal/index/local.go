// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
	"unicode"
)

// localDim is the vector width of the offline embedder.
const localDim = 256

// LocalEmbedder is a deterministic offline embedder. It hashes tokens
// into a fixed-width bag-of-words vector, so identical text always
// yields identical vectors and no network access is needed. Retrieval
// quality is far below a real embedding model; it exists for air-gapped
// runs and tests.
type LocalEmbedder struct{}

func NewLocalEmbedder() *LocalEmbedder {
	return &LocalEmbedder{}
}

func (e *LocalEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = embedLocal(text)
	}
	return vectors, nil
}

func embedLocal(text string) []float32 {
	vec := make([]float32, localDim)
	for _, tok := range tokenize(text) {
		h := fnv.New32a()
		h.Write([]byte(tok))
		vec[h.Sum32()%localDim]++
	}
	// L2-normalize so cosine scores stay comparable across text lengths.
	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm > 0 {
		inv := float32(1 / math.Sqrt(norm))
		for i := range vec {
			vec[i] *= inv
		}
	}
	return vec
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
