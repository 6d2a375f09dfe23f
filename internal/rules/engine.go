// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rules implements the four-stage validation rule engine. Rules
// are independently evaluable predicates tagged by stage and held in a
// registry, so adding a rule never touches the engine's control flow.
// Every stage runs to completion; issues are collected, never thrown.
package rules

import (
	"time"

	"github.com/google/uuid"

	"github.com/meshintel/will-engine/pkg/types"
)

// factsRule is one predicate over the input facts (stages 1-3).
type factsRule struct {
	name  string
	stage types.Stage
	check func(w *types.WillData, now time.Time) []types.ValidationIssue
}

// documentRule is one predicate over an assembled document (stage 4).
type documentRule struct {
	name  string
	check func(w *types.WillData, doc *types.AssembledWill, hasFragment func(string) bool, now time.Time) []types.ValidationIssue
}

// Engine evaluates the registered rules in stage order.
type Engine struct {
	factsRules    []factsRule
	documentRules []documentRule

	// now is substituted in tests for age arithmetic.
	now func() time.Time
}

// NewEngine returns an engine with the full statutory rule set registered.
func NewEngine() *Engine {
	e := &Engine{now: time.Now}
	e.factsRules = append(e.factsRules, fieldRules()...)
	e.factsRules = append(e.factsRules, structuralRules()...)
	e.factsRules = append(e.factsRules, complianceRules()...)
	e.documentRules = postRules()
	return e
}

// ValidateFacts runs stages 1-3 over the will. All rules of all stages
// run; the report carries every finding in stage order, then discovery
// order within a stage.
func (e *Engine) ValidateFacts(w *types.WillData) types.Report {
	report := types.Report{ID: uuid.NewString()}
	now := e.now()
	for _, stage := range []types.Stage{types.StageField, types.StageStructural, types.StageCompliance} {
		for _, r := range e.factsRules {
			if r.stage != stage {
				continue
			}
			report.Issues = append(report.Issues, r.check(w, now)...)
		}
	}
	return report
}

// ValidateDocument runs the stage-4 post-generation checks over an
// assembled document. hasFragment resolves manifest fragment IDs against
// the corpus version the document was assembled from.
func (e *Engine) ValidateDocument(w *types.WillData, doc *types.AssembledWill, hasFragment func(string) bool) types.Report {
	report := types.Report{ID: uuid.NewString()}
	now := e.now()
	for _, r := range e.documentRules {
		report.Issues = append(report.Issues, r.check(w, doc, hasFragment, now)...)
	}
	return report
}
