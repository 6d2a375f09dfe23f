// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assemble

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/meshintel/will-engine/internal/genai"
	"github.com/meshintel/will-engine/internal/index"
	"github.com/meshintel/will-engine/pkg/types"
)

const (
	defaultTopK           = 4
	defaultMaxRetries     = 3
	defaultSectionTimeout = 30 * time.Second
	initialBackoff        = 500 * time.Millisecond
)

// GenerationError marks a section whose clause could not be produced
// after the retry budget. The document is never emitted partially.
type GenerationError struct {
	Section types.SectionName
	Err     error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generating section %q: %v", e.Section, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// defaultTemperature keeps clause drafting low-variance.
const defaultTemperature float32 = 0.1

// Assembler compiles wills from validated facts. Safe for concurrent use;
// each Assemble call is independent.
type Assembler struct {
	index *index.Index
	gen   genai.Capability
	cfg   types.AssemblyConfig
	temp  float32

	// sleep is substituted in tests to skip real backoff waits; now is
	// substituted for age-dependent section planning.
	sleep func(context.Context, time.Duration) error
	now   func() time.Time
}

// New builds an assembler. temperature zero selects the default.
func New(ix *index.Index, gen genai.Capability, cfg types.AssemblyConfig, temperature float32) *Assembler {
	if cfg.TopK <= 0 {
		cfg.TopK = defaultTopK
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	if cfg.SectionTimeout <= 0 {
		cfg.SectionTimeout = defaultSectionTimeout
	}
	if temperature <= 0 {
		temperature = defaultTemperature
	}
	return &Assembler{index: ix, gen: gen, cfg: cfg, temp: temperature, sleep: sleepCtx, now: time.Now}
}

// Assemble produces the complete will document or fails. Template
// sections are rendered directly; generated sections are drafted
// concurrently, each from its own retrieval result, then joined in
// canonical order. With identical facts, corpus version, and a
// deterministic generator, two runs produce identical section ordering
// and provenance.
func (a *Assembler) Assemble(ctx context.Context, w *types.WillData) (*types.AssembledWill, error) {
	plans := buildPlans(w, a.now())
	texts := make([]string, len(plans))
	fragmentIDs := make([][]string, len(plans))

	g, gctx := errgroup.WithContext(ctx)
	for i, plan := range plans {
		if !plan.generated {
			texts[i] = plan.render(w)
			continue
		}
		g.Go(func() error {
			text, ids, err := a.generateSection(gctx, plan)
			if err != nil {
				return &GenerationError{Section: plan.name, Err: err}
			}
			texts[i] = text
			fragmentIDs[i] = ids
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	doc := &types.AssembledWill{
		Manifest: types.Manifest{
			SessionID:     uuid.NewString(),
			CorpusVersion: a.index.CorpusVersion(),
		},
	}
	for i, plan := range plans {
		section := types.Section{
			Name:        plan.name,
			Position:    i,
			Text:        texts[i],
			Generated:   plan.generated,
			FragmentIDs: fragmentIDs[i],
			FactPaths:   plan.factPaths,
		}
		doc.Sections = append(doc.Sections, section)
		doc.Manifest.Sections = append(doc.Manifest.Sections, types.SectionProvenance{
			Name:        section.Name,
			Generated:   section.Generated,
			FragmentIDs: section.FragmentIDs,
			FactPaths:   section.FactPaths,
		})
	}
	return doc, nil
}

// generateSection retrieves fragments and drafts one clause, retrying the
// whole operation with doubling backoff. Retrieval and generation
// failures share the retry budget since both sit on the same external
// boundary.
func (a *Assembler) generateSection(ctx context.Context, plan sectionPlan) (string, []string, error) {
	query := plan.topic
	if len(plan.facts) > 0 {
		query += " " + plan.facts[0]
	}

	var lastErr error
	backoff := initialBackoff
	for attempt := 0; attempt < a.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			if err := a.sleep(ctx, backoff); err != nil {
				return "", nil, err
			}
			backoff *= 2
		}

		text, ids, err := a.attemptSection(ctx, plan, query)
		if err == nil {
			return text, ids, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return "", nil, ctx.Err()
		}
	}
	return "", nil, fmt.Errorf("retries exhausted after %d attempts: %w", a.cfg.MaxRetries, lastErr)
}

func (a *Assembler) attemptSection(ctx context.Context, plan sectionPlan, query string) (string, []string, error) {
	callCtx, cancel := context.WithTimeout(ctx, a.cfg.SectionTimeout)
	defer cancel()

	retrieved, err := a.index.Query(callCtx, query, a.cfg.TopK)
	if err != nil {
		return "", nil, fmt.Errorf("retrieval for query %q: %w", query, err)
	}
	prompt, err := buildPrompt(plan, retrieved)
	if err != nil {
		return "", nil, fmt.Errorf("rendering prompt: %w", err)
	}
	text, err := a.gen.Complete(callCtx, prompt, a.temp)
	if err != nil {
		return "", nil, err
	}
	return text, retrieved.IDs(), nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
