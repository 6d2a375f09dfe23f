// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rules

import (
	"fmt"
	"time"

	"github.com/meshintel/will-engine/pkg/types"
)

// structuralRules are the stage-2 cardinality and presence checks.
func structuralRules() []factsRule {
	return []factsRule{
		{
			name:  "witness-count",
			stage: types.StageStructural,
			check: checkWitnessCount,
		},
		{
			name:  "executor-count",
			stage: types.StageStructural,
			check: checkExecutorCount,
		},
		{
			name:  "witness-distinct",
			stage: types.StageStructural,
			check: checkWitnessesDistinct,
		},
		{
			name:  "bequest-references",
			stage: types.StageStructural,
			check: checkBequestReferences,
		},
		{
			name:  "single-residue",
			stage: types.StageStructural,
			check: checkSingleResidue,
		},
	}
}

// The Wills Act requires exactly two attesting witnesses.
func checkWitnessCount(w *types.WillData, _ time.Time) []types.ValidationIssue {
	if len(w.Witnesses) == 2 {
		return nil
	}
	return []types.ValidationIssue{{
		Stage:     types.StageStructural,
		Kind:      types.KindWitnessCount,
		Severity:  types.SeverityBlocking,
		Message:   fmt.Sprintf("a will requires exactly 2 witnesses, got %d", len(w.Witnesses)),
		FieldPath: "witnesses",
	}}
}

func checkExecutorCount(w *types.WillData, _ time.Time) []types.ValidationIssue {
	if n := len(w.Executors); n < 1 || n > 4 {
		return []types.ValidationIssue{{
			Stage:     types.StageStructural,
			Kind:      types.KindExecutorCount,
			Severity:  types.SeverityBlocking,
			Message:   fmt.Sprintf("a will requires between 1 and 4 executors, got %d", n),
			FieldPath: "executors",
		}}
	}
	return nil
}

func checkWitnessesDistinct(w *types.WillData, _ time.Time) []types.ValidationIssue {
	var issues []types.ValidationIssue
	seen := make(map[string]int)
	for i, wit := range w.Witnesses {
		id := wit.ID()
		if id == "" {
			continue
		}
		if j, dup := seen[id]; dup {
			issues = append(issues, types.ValidationIssue{
				Stage:     types.StageStructural,
				Kind:      types.KindDuplicateWitness,
				Severity:  types.SeverityBlocking,
				Message:   fmt.Sprintf("witnesses %d and %d are the same person (NRIC %s)", j, i, wit.NRIC),
				FieldPath: fmt.Sprintf("witnesses[%d]", i),
			})
			continue
		}
		seen[id] = i
	}
	return issues
}

func checkBequestReferences(w *types.WillData, _ time.Time) []types.ValidationIssue {
	var issues []types.ValidationIssue
	for i, b := range w.Bequests {
		if !b.IsResidue() {
			if _, ok := w.AssetByID(b.AssetID); !ok {
				issues = append(issues, types.ValidationIssue{
					Stage:     types.StageStructural,
					Kind:      types.KindUnknownAsset,
					Severity:  types.SeverityBlocking,
					Message:   fmt.Sprintf("bequest %d references unknown asset %q", i, b.AssetID),
					FieldPath: fmt.Sprintf("bequests[%d].asset_id", i),
				})
			}
		}
		for j, s := range b.Shares {
			if _, ok := w.BeneficiaryByNRIC(s.BeneficiaryNRIC); !ok {
				issues = append(issues, types.ValidationIssue{
					Stage:     types.StageStructural,
					Kind:      types.KindUnknownBeneficiary,
					Severity:  types.SeverityBlocking,
					Message:   fmt.Sprintf("bequest %d share %d names NRIC %q, which is not a listed beneficiary", i, j, s.BeneficiaryNRIC),
					FieldPath: fmt.Sprintf("bequests[%d].shares[%d]", i, j),
				})
			}
		}
	}
	return issues
}

// A will carries at most one residuary bequest; the residue clause is a
// single section.
func checkSingleResidue(w *types.WillData, _ time.Time) []types.ValidationIssue {
	first := -1
	var issues []types.ValidationIssue
	for i, b := range w.Bequests {
		if !b.IsResidue() {
			continue
		}
		if first == -1 {
			first = i
			continue
		}
		issues = append(issues, types.ValidationIssue{
			Stage:     types.StageStructural,
			Kind:      types.KindDuplicateResidue,
			Severity:  types.SeverityBlocking,
			Message:   fmt.Sprintf("bequests %d and %d both target the residuary estate", first, i),
			FieldPath: fmt.Sprintf("bequests[%d]", i),
		})
	}
	return issues
}
