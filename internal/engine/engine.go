// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package engine runs the full drafting workflow: validate the facts,
// assemble the document when the facts are clean, then run the
// post-generation checks over the result.
package engine

import (
	"context"

	"github.com/meshintel/will-engine/internal/assemble"
	"github.com/meshintel/will-engine/internal/corpus"
	"github.com/meshintel/will-engine/internal/genai"
	"github.com/meshintel/will-engine/internal/index"
	"github.com/meshintel/will-engine/internal/rules"
	"github.com/meshintel/will-engine/pkg/types"
)

// Engine owns the loaded corpus, the retrieval index, and the rule set
// for the lifetime of the process. Draft calls are independent and may
// run concurrently.
type Engine struct {
	corpus    *corpus.Corpus
	index     *index.Index
	rules     *rules.Engine
	assembler *assemble.Assembler
}

// Result is the outcome of one drafting request. Document is nil unless
// the facts passed stages 1-3. PostReport is only set when a document was
// assembled; its findings indicate engine defects, not user errors.
type Result struct {
	FactsReport types.Report
	Document    *types.AssembledWill
	PostReport  *types.Report
}

// New wires an engine from a loaded corpus, a built index, and a
// generation capability.
func New(c *corpus.Corpus, ix *index.Index, gen genai.Capability, cfg types.EngineConfig) *Engine {
	return &Engine{
		corpus:    c,
		index:     ix,
		rules:     rules.NewEngine(),
		assembler: assemble.New(ix, gen, cfg.Assembly, cfg.Generation.Temperature),
	}
}

// Validate runs stages 1-3 only.
func (e *Engine) Validate(w *types.WillData) types.Report {
	return e.rules.ValidateFacts(w)
}

// Draft validates the facts and, when no blocking issue is found,
// assembles the document and runs the stage-4 checks over it. A blocking
// finding in stages 1-3 skips assembly entirely; the report tells the
// caller what to fix. Assembly failures return an error with no partial
// document.
func (e *Engine) Draft(ctx context.Context, w *types.WillData) (*Result, error) {
	res := &Result{FactsReport: e.rules.ValidateFacts(w)}
	if res.FactsReport.HasBlocking() {
		return res, nil
	}

	doc, err := e.assembler.Assemble(ctx, w)
	if err != nil {
		return res, err
	}
	res.Document = doc

	post := e.rules.ValidateDocument(w, doc, e.corpus.HasFragment)
	res.PostReport = &post
	return res, nil
}
