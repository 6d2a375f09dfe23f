// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// SectionName identifies a canonical will section. Specific-bequest
// sections are parameterized by asset ID via BequestSection.
type SectionName string

const (
	SectionRevocation          SectionName = "revocation"
	SectionDeclaration         SectionName = "declaration"
	SectionExecutorAppointment SectionName = "executor_appointment"
	SectionDebtsExpenses       SectionName = "debts_and_expenses"
	SectionGuardianAppointment SectionName = "guardian_appointment"
	SectionResidue             SectionName = "residue"
	SectionSpecialInstructions SectionName = "special_instructions"
	SectionAttestation         SectionName = "attestation"
	SectionExecution           SectionName = "execution"
)

// bequestSectionPrefix namespaces per-asset bequest sections.
const bequestSectionPrefix = "bequest:"

// BequestSection names the specific-bequest section for one asset.
func BequestSection(assetID string) SectionName {
	return SectionName(bequestSectionPrefix + assetID)
}

// IsBequestSection reports whether the name is a specific-bequest section,
// returning the asset ID when it is.
func (n SectionName) IsBequestSection() (string, bool) {
	s := string(n)
	if strings.HasPrefix(s, bequestSectionPrefix) {
		return s[len(bequestSectionPrefix):], true
	}
	return "", false
}

// Section is one assembled unit of the will: its canonical position, the
// text, and the provenance of that text.
type Section struct {
	Name SectionName `json:"name" yaml:"name"`

	// Position is the section's slot in the canonical total order.
	Position int `json:"position" yaml:"position"`

	Text string `json:"text" yaml:"text"`

	// Generated distinguishes model-generated sections from fixed-form
	// template sections.
	Generated bool `json:"generated" yaml:"generated"`

	// FragmentIDs lists the knowledge fragments the section was allowed
	// to draw on, in rank order.
	FragmentIDs []string `json:"fragment_ids,omitempty" yaml:"fragment_ids,omitempty"`

	// FactPaths lists the WillData fields the section was allowed to
	// reference.
	FactPaths []string `json:"fact_paths,omitempty" yaml:"fact_paths,omitempty"`
}

// SectionProvenance is the manifest record for one section.
type SectionProvenance struct {
	Name        SectionName `json:"name" yaml:"name"`
	Generated   bool        `json:"generated" yaml:"generated"`
	FragmentIDs []string    `json:"fragment_ids,omitempty" yaml:"fragment_ids,omitempty"`
	FactPaths   []string    `json:"fact_paths,omitempty" yaml:"fact_paths,omitempty"`
}

// Manifest records which fragments and facts influenced each section of an
// assembled will, enabling the post-generation integrity check to be a
// pure data comparison.
type Manifest struct {
	// SessionID identifies the drafting session.
	SessionID string `json:"session_id" yaml:"session_id"`

	// CorpusVersion is the knowledge-store version token the retrieval
	// index served during assembly.
	CorpusVersion string `json:"corpus_version" yaml:"corpus_version"`

	Sections []SectionProvenance `json:"sections" yaml:"sections"`
}

// AssembledWill is the compiled document: sections in canonical order plus
// the provenance manifest.
type AssembledWill struct {
	Sections []Section `json:"sections" yaml:"sections"`
	Manifest Manifest  `json:"manifest" yaml:"manifest"`
}

// SectionByName returns the named section when present.
func (a *AssembledWill) SectionByName(name SectionName) (Section, bool) {
	for _, s := range a.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}

// Render joins the sections into a flat document, in order, separated by
// blank lines. Richer serialization (PDF and the like) is out of scope.
func (a *AssembledWill) Render() string {
	parts := make([]string, len(a.Sections))
	for i, s := range a.Sections {
		parts[i] = strings.TrimSpace(s.Text)
	}
	return strings.Join(parts, "\n\n") + "\n"
}
