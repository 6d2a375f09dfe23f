// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package genai abstracts the text generation backend used for clause
// drafting. The engine depends only on the Capability interface;
// production wiring uses an OpenAI-compatible chat endpoint, offline and
// test wiring uses the deterministic stub.
package genai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/meshintel/will-engine/pkg/types"
)

var (
	// ErrGenerationUnavailable marks transport or availability failures;
	// callers may retry.
	ErrGenerationUnavailable = errors.New("generation backend unavailable")

	// ErrGenerationRejected marks a backend that answered but produced
	// nothing usable; retrying is pointless.
	ErrGenerationRejected = errors.New("generation rejected")
)

// Capability produces legal prose from a fully assembled prompt.
type Capability interface {
	Complete(ctx context.Context, prompt string, temperature float32) (string, error)
}

// systemPrompt constrains the backend to the drafting role. Generated
// text must draw only on the facts and source passages in the prompt.
const systemPrompt = `You are drafting one clause of a Malaysian will for a non-Muslim testator
under the Wills Act 1959. Use only the facts and legal source passages
provided. Use formal testamentary language. Output the clause text only,
with no commentary.`

// OpenAIBackend drafts clauses through an OpenAI-compatible chat
// completion endpoint.
type OpenAIBackend struct {
	client *openai.Client
	model  string
}

// NewOpenAIBackend builds a backend from the generation config.
// cfg.BaseURL allows any OpenAI-compatible server, including local ones.
func NewOpenAIBackend(cfg types.GenerationConfig) *OpenAIBackend {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &OpenAIBackend{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
	}
}

func (b *OpenAIBackend) Complete(ctx context.Context, prompt string, temperature float32) (string, error) {
	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       b.model,
		Temperature: temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choice list", ErrGenerationRejected)
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("%w: blank completion", ErrGenerationRejected)
	}
	return text, nil
}
