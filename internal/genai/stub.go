// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package genai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Stub is a deterministic offline Capability: the same prompt always
// yields the same text. It echoes the prompt's section intent line with a
// prompt digest, which is enough for reproducibility checks and for dry
// runs without a backend.
type Stub struct{}

func NewStub() *Stub {
	return &Stub{}
}

func (Stub) Complete(_ context.Context, prompt string, _ float32) (string, error) {
	digest := sha256.Sum256([]byte(prompt))
	intent := "clause"
	for _, line := range strings.Split(prompt, "\n") {
		if strings.TrimSpace(line) != "" {
			intent = strings.TrimSpace(line)
			break
		}
	}
	return fmt.Sprintf("[draft] %s (prompt %s)", intent, hex.EncodeToString(digest[:6])), nil
}
