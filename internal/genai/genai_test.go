// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshintel/will-engine/pkg/types"
)

func chatServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		resp := map[string]any{
			"id":      "cmpl-1",
			"object":  "chat.completion",
			"model":   "test-model",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			}},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestOpenAIBackendComplete(t *testing.T) {
	srv := chatServer(t, "  I GIVE, DEVISE AND BEQUEATH my property absolutely.  ")
	defer srv.Close()

	b := NewOpenAIBackend(types.GenerationConfig{
		Model:   "test-model",
		APIKey:  "test",
		BaseURL: srv.URL,
	})
	text, err := b.Complete(context.Background(), "draft the bequest clause", 0.1)
	require.NoError(t, err)
	assert.Equal(t, "I GIVE, DEVISE AND BEQUEATH my property absolutely.", text)
}

func TestOpenAIBackendBlankCompletion(t *testing.T) {
	srv := chatServer(t, "")
	defer srv.Close()

	b := NewOpenAIBackend(types.GenerationConfig{Model: "test-model", APIKey: "test", BaseURL: srv.URL})
	_, err := b.Complete(context.Background(), "draft", 0.1)
	assert.ErrorIs(t, err, ErrGenerationRejected)
}

func TestOpenAIBackendUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	b := NewOpenAIBackend(types.GenerationConfig{Model: "test-model", APIKey: "test", BaseURL: srv.URL})
	_, err := b.Complete(context.Background(), "draft", 0.1)
	assert.ErrorIs(t, err, ErrGenerationUnavailable)
}

func TestStubDeterministic(t *testing.T) {
	s := NewStub()
	a, err := s.Complete(context.Background(), "Residuary estate clause.\nfacts...", 0.9)
	require.NoError(t, err)
	b, err := s.Complete(context.Background(), "Residuary estate clause.\nfacts...", 0.1)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := s.Complete(context.Background(), "Executor appointment clause.\nfacts...", 0.1)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
	assert.Contains(t, c, "Executor appointment clause.")
}
