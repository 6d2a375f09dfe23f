// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rules

import (
	"fmt"
	"time"

	"github.com/meshintel/will-engine/pkg/types"
)

// postRules are the stage-4 checks over the assembled document. Findings
// here indicate an internal contract breach rather than bad user input.
func postRules() []documentRule {
	return []documentRule{
		{name: "section-order", check: checkSectionOrder},
		{name: "mandatory-sections", check: checkMandatorySections},
		{name: "provenance-integrity", check: checkProvenance},
	}
}

// canonicalRank maps a section to its slot in the canonical total order.
// Bequest sections share one slot; their relative order is checked
// against asset creation order separately.
func canonicalRank(name types.SectionName) int {
	if _, ok := name.IsBequestSection(); ok {
		return 5
	}
	switch name {
	case types.SectionRevocation:
		return 0
	case types.SectionDeclaration:
		return 1
	case types.SectionExecutorAppointment:
		return 2
	case types.SectionDebtsExpenses:
		return 3
	case types.SectionGuardianAppointment:
		return 4
	case types.SectionResidue:
		return 6
	case types.SectionSpecialInstructions:
		return 7
	case types.SectionAttestation:
		return 8
	case types.SectionExecution:
		return 9
	}
	return -1
}

func checkSectionOrder(w *types.WillData, doc *types.AssembledWill, _ func(string) bool, _ time.Time) []types.ValidationIssue {
	var issues []types.ValidationIssue

	orderIssue := func(format string, args ...any) {
		issues = append(issues, types.ValidationIssue{
			Stage:    types.StagePost,
			Kind:     types.KindSectionOrder,
			Severity: types.SeverityBlocking,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	prevRank := -1
	var prev types.SectionName
	for i, s := range doc.Sections {
		rank := canonicalRank(s.Name)
		if rank < 0 {
			orderIssue("section %q is not a canonical section", s.Name)
			continue
		}
		if rank < prevRank {
			orderIssue("section %q appears after %q, violating canonical order", s.Name, prev)
		}
		if s.Position != i {
			orderIssue("section %q records position %d but appears at %d", s.Name, s.Position, i)
		}
		prevRank, prev = rank, s.Name
	}

	// Bequest sections must follow asset creation order.
	var bequestAssets []string
	for _, s := range doc.Sections {
		if assetID, ok := s.Name.IsBequestSection(); ok {
			bequestAssets = append(bequestAssets, assetID)
		}
	}
	want := 0
	for _, assetID := range bequestAssets {
		found := false
		for ; want < len(w.Assets); want++ {
			if w.Assets[want].ID == assetID {
				found = true
				want++
				break
			}
		}
		if !found {
			orderIssue("bequest section for asset %q is out of asset creation order", assetID)
			break
		}
	}
	return issues
}

func checkMandatorySections(w *types.WillData, doc *types.AssembledWill, _ func(string) bool, now time.Time) []types.ValidationIssue {
	var issues []types.ValidationIssue
	missing := func(name types.SectionName) {
		issues = append(issues, types.ValidationIssue{
			Stage:    types.StagePost,
			Kind:     types.KindMissingSection,
			Severity: types.SeverityBlocking,
			Message:  fmt.Sprintf("mandatory section %q is absent", name),
		})
	}

	mandatory := []types.SectionName{
		types.SectionRevocation,
		types.SectionDeclaration,
		types.SectionExecutorAppointment,
		types.SectionDebtsExpenses,
		types.SectionResidue,
		types.SectionAttestation,
		types.SectionExecution,
	}
	for _, name := range mandatory {
		if _, ok := doc.SectionByName(name); !ok {
			missing(name)
		}
	}

	if len(w.Guardians) > 0 || len(w.MinorBeneficiaries(now)) > 0 {
		if _, ok := doc.SectionByName(types.SectionGuardianAppointment); !ok {
			missing(types.SectionGuardianAppointment)
		}
	}

	for _, a := range w.Assets {
		if len(w.BequestsForAsset(a.ID)) == 0 {
			continue
		}
		if _, ok := doc.SectionByName(types.BequestSection(a.ID)); !ok {
			missing(types.BequestSection(a.ID))
		}
	}
	return issues
}

// checkProvenance verifies the manifest is a faithful record: it mirrors
// the document's sections, every cited fragment exists in the corpus
// version the document names, and every cited fact path resolves against
// the will. A pure data comparison; prose is never re-parsed.
func checkProvenance(w *types.WillData, doc *types.AssembledWill, hasFragment func(string) bool, _ time.Time) []types.ValidationIssue {
	var issues []types.ValidationIssue
	integrity := func(format string, args ...any) {
		issues = append(issues, types.ValidationIssue{
			Stage:    types.StagePost,
			Kind:     types.KindProvenanceIntegrity,
			Severity: types.SeverityBlocking,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	if len(doc.Manifest.Sections) != len(doc.Sections) {
		integrity("manifest records %d sections, document has %d", len(doc.Manifest.Sections), len(doc.Sections))
		return issues
	}

	for i, s := range doc.Sections {
		m := doc.Manifest.Sections[i]
		if m.Name != s.Name {
			integrity("manifest entry %d is %q, document section is %q", i, m.Name, s.Name)
			continue
		}
		if s.Generated && len(m.FragmentIDs) == 0 {
			integrity("generated section %q cites no knowledge fragments", s.Name)
		}
		for _, id := range m.FragmentIDs {
			if !hasFragment(id) {
				integrity("section %q cites unknown fragment %q", s.Name, id)
			}
		}
		for _, path := range m.FactPaths {
			if !w.HasFactPath(path) {
				integrity("section %q cites fact path %q, which does not resolve", s.Name, path)
			}
		}
	}
	return issues
}
