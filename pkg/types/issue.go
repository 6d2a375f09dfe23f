// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// Stage identifies one of the four ordered validation stages.
type Stage int

const (
	StageField      Stage = 1
	StageStructural Stage = 2
	StageCompliance Stage = 3
	StagePost       Stage = 4
)

// String renders the stage name used in reports.
func (s Stage) String() string {
	switch s {
	case StageField:
		return "field"
	case StageStructural:
		return "structural"
	case StageCompliance:
		return "compliance"
	case StagePost:
		return "post-generation"
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// Severity distinguishes findings that must be resolved before a document
// is emitted from those that need not be.
type Severity string

const (
	SeverityBlocking Severity = "blocking"
	SeverityAdvisory Severity = "advisory"
)

// IssueKind names the rule family a finding belongs to.
type IssueKind string

const (
	// Stage 1: field syntax.
	KindInvalidNRIC     IssueKind = "InvalidNRIC"
	KindMissingField    IssueKind = "MissingField"
	KindUnparseableDate IssueKind = "UnparseableDate"
	KindInvalidAsset    IssueKind = "InvalidAsset"

	// Stage 2: cardinality and presence.
	KindWitnessCount       IssueKind = "WitnessCount"
	KindExecutorCount      IssueKind = "ExecutorCount"
	KindDuplicateWitness   IssueKind = "DuplicateWitness"
	KindUnknownBeneficiary IssueKind = "UnknownBeneficiary"
	KindUnknownAsset       IssueKind = "UnknownAsset"
	KindDuplicateResidue   IssueKind = "DuplicateResidue"

	// Stage 3: legal compliance.
	KindWitnessBeneficiaryConflict IssueKind = "WitnessBeneficiaryConflict"
	KindExecutorWitnessConflict    IssueKind = "ExecutorWitnessConflict"
	KindShareOverflow              IssueKind = "ShareOverflow"
	KindShareUnderflow             IssueKind = "ShareUnderflow"
	KindZeroShare                  IssueKind = "ZeroShare"
	KindUnderageParty              IssueKind = "UnderageParty"
	KindIncapacitatedWitness       IssueKind = "IncapacitatedWitness"
	KindMissingGuardian            IssueKind = "MissingGuardian"
	KindReligionRouting            IssueKind = "ReligionRouting"

	// Stage 4: post-generation document checks.
	KindSectionOrder        IssueKind = "SectionOrder"
	KindMissingSection      IssueKind = "MissingSection"
	KindProvenanceIntegrity IssueKind = "ProvenanceIntegrity"
)

// ValidationIssue is one finding from the rule engine.
type ValidationIssue struct {
	Stage    Stage     `json:"stage" yaml:"stage"`
	Kind     IssueKind `json:"kind" yaml:"kind"`
	Severity Severity  `json:"severity" yaml:"severity"`
	Message  string    `json:"message" yaml:"message"`

	// FieldPath locates the offending input, e.g. "witnesses[1].nric".
	FieldPath string `json:"field_path,omitempty" yaml:"field_path,omitempty"`
}

// Report aggregates issues in stage order, then discovery order within a
// stage. It is the whole outcome of stages 1-3; issues are data, never
// errors.
type Report struct {
	// ID identifies the validation pass for audit trails.
	ID string `json:"id" yaml:"id"`

	Issues []ValidationIssue `json:"issues" yaml:"issues"`
}

// HasBlocking reports whether any issue must be resolved before assembly.
func (r Report) HasBlocking() bool {
	for _, i := range r.Issues {
		if i.Severity == SeverityBlocking {
			return true
		}
	}
	return false
}

// ByStage returns the issues recorded for one stage, preserving order.
func (r Report) ByStage(stage Stage) []ValidationIssue {
	var out []ValidationIssue
	for _, i := range r.Issues {
		if i.Stage == stage {
			out = append(out, i)
		}
	}
	return out
}

// ByKind returns the issues of one kind, preserving order.
func (r Report) ByKind(kind IssueKind) []ValidationIssue {
	var out []ValidationIssue
	for _, i := range r.Issues {
		if i.Kind == kind {
			out = append(out, i)
		}
	}
	return out
}
