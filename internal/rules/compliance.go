// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rules

import (
	"fmt"
	"strings"
	"time"

	"github.com/meshintel/will-engine/pkg/types"
)

// shareEpsilon absorbs float error in share sums; 1/3+1/3+1/3 must count
// as a full disposition.
const shareEpsilon = 1e-6

// complianceRules are the stage-3 cross-entity legal checks.
func complianceRules() []factsRule {
	return []factsRule{
		{
			name:  "religion-routing",
			stage: types.StageCompliance,
			check: checkReligionRouting,
		},
		{
			name:  "witness-beneficiary-conflict",
			stage: types.StageCompliance,
			check: checkWitnessBeneficiaryConflict,
		},
		{
			name:  "executor-witness-conflict",
			stage: types.StageCompliance,
			check: checkExecutorWitnessConflict,
		},
		{
			name:  "share-sums",
			stage: types.StageCompliance,
			check: checkShareSums,
		},
		{
			name:  "age-thresholds",
			stage: types.StageCompliance,
			check: checkAges,
		},
		{
			name:  "witness-capacity",
			stage: types.StageCompliance,
			check: checkWitnessCapacity,
		},
		{
			name:  "guardian-for-minors",
			stage: types.StageCompliance,
			check: checkGuardianForMinors,
		},
	}
}

// A Muslim testator's estate follows Faraid; the Wills Act does not
// apply. Routing is checked only on an explicit religion value.
func checkReligionRouting(w *types.WillData, _ time.Time) []types.ValidationIssue {
	switch strings.ToLower(strings.TrimSpace(w.Testator.Religion)) {
	case "muslim", "islam":
		return []types.ValidationIssue{{
			Stage:     types.StageCompliance,
			Kind:      types.KindReligionRouting,
			Severity:  types.SeverityBlocking,
			Message:   "testator is Muslim: prepare a Wasiat under Syariah law instead; only one third of the estate may be bequeathed and the remainder follows Faraid",
			FieldPath: "testator.religion",
		}}
	}
	return nil
}

// beneficiarySet collects everyone who takes under the will: the listed
// beneficiaries plus anyone named in a bequest share.
func beneficiarySet(w *types.WillData) map[string]string {
	set := make(map[string]string)
	for _, b := range w.Beneficiaries {
		set[b.ID()] = b.FullName
	}
	for _, bq := range w.Bequests {
		for _, s := range bq.Shares {
			id := types.NormalizeNRIC(s.BeneficiaryNRIC)
			if _, ok := set[id]; !ok {
				set[id] = s.BeneficiaryNRIC
			}
		}
	}
	return set
}

// Section 9 Wills Act 1959: a gift to an attesting witness, or to the
// spouse of an attesting witness, is void. Treated as blocking rather
// than voiding the gift silently.
func checkWitnessBeneficiaryConflict(w *types.WillData, _ time.Time) []types.ValidationIssue {
	takers := beneficiarySet(w)

	// Map beneficiary id -> spouse id declared on the beneficiary side.
	spouseOf := make(map[string]string)
	for _, b := range w.Beneficiaries {
		if b.SpouseNRIC != "" {
			spouseOf[types.NormalizeNRIC(b.SpouseNRIC)] = b.ID()
		}
	}

	var issues []types.ValidationIssue
	for i, wit := range w.Witnesses {
		id := wit.ID()
		if name, ok := takers[id]; ok {
			issues = append(issues, types.ValidationIssue{
				Stage:     types.StageCompliance,
				Kind:      types.KindWitnessBeneficiaryConflict,
				Severity:  types.SeverityBlocking,
				Message:   fmt.Sprintf("witness %s (NRIC %s) is a beneficiary (%s); their gift would be void under Section 9 Wills Act 1959", wit.FullName, wit.NRIC, name),
				FieldPath: fmt.Sprintf("witnesses[%d]", i),
			})
			continue
		}
		// Spouse link declared on either side.
		conflicted := false
		if wit.SpouseNRIC != "" {
			if _, ok := takers[types.NormalizeNRIC(wit.SpouseNRIC)]; ok {
				conflicted = true
			}
		}
		if _, ok := spouseOf[id]; ok {
			conflicted = true
		}
		if conflicted {
			issues = append(issues, types.ValidationIssue{
				Stage:     types.StageCompliance,
				Kind:      types.KindWitnessBeneficiaryConflict,
				Severity:  types.SeverityBlocking,
				Message:   fmt.Sprintf("witness %s (NRIC %s) is the spouse of a beneficiary; the gift would be void under Section 9 Wills Act 1959", wit.FullName, wit.NRIC),
				FieldPath: fmt.Sprintf("witnesses[%d]", i),
			})
		}
	}
	return issues
}

// An executor never doubles as a witness here. The Act permits it when
// the executor takes nothing, but the overlap invites probate challenges,
// so drafts reject it outright.
func checkExecutorWitnessConflict(w *types.WillData, _ time.Time) []types.ValidationIssue {
	executors := make(map[string]string)
	for _, e := range w.Executors {
		executors[e.ID()] = e.FullName
	}
	var issues []types.ValidationIssue
	for i, wit := range w.Witnesses {
		if name, ok := executors[wit.ID()]; ok {
			issues = append(issues, types.ValidationIssue{
				Stage:     types.StageCompliance,
				Kind:      types.KindExecutorWitnessConflict,
				Severity:  types.SeverityBlocking,
				Message:   fmt.Sprintf("witness %s (NRIC %s) is also an appointed executor (%s); choose a different witness", wit.FullName, wit.NRIC, name),
				FieldPath: fmt.Sprintf("witnesses[%d]", i),
			})
		}
	}
	return issues
}

// Share sums are checked per target: each specific asset and the residue.
// A total of zero (including a bequest with no shares at all) and over
// 100% are errors; under 100% is advisory since the remainder falls to
// the residuary estate.
func checkShareSums(w *types.WillData, _ time.Time) []types.ValidationIssue {
	var issues []types.ValidationIssue

	totals := make(map[string]float64)
	order := []string{}
	for i, b := range w.Bequests {
		for j, s := range b.Shares {
			if s.Share.Fraction() <= 0 {
				issues = append(issues, types.ValidationIssue{
					Stage:     types.StageCompliance,
					Kind:      types.KindZeroShare,
					Severity:  types.SeverityBlocking,
					Message:   fmt.Sprintf("bequest %d share %d for NRIC %s is zero or malformed", i, j, s.BeneficiaryNRIC),
					FieldPath: fmt.Sprintf("bequests[%d].shares[%d]", i, j),
				})
			}
		}
		if _, seen := totals[b.AssetID]; !seen {
			order = append(order, b.AssetID)
		}
		totals[b.AssetID] += b.TotalFraction()
	}

	for _, target := range order {
		total := totals[target]
		label := fmt.Sprintf("asset %q", target)
		if target == types.ResidueTarget {
			label = "the residuary estate"
		}
		switch {
		case total <= shareEpsilon:
			issues = append(issues, types.ValidationIssue{
				Stage:     types.StageCompliance,
				Kind:      types.KindZeroShare,
				Severity:  types.SeverityBlocking,
				Message:   fmt.Sprintf("shares for %s total 0%%; the bequest disposes of nothing", label),
				FieldPath: "bequests",
			})
		case total > 1+shareEpsilon:
			issues = append(issues, types.ValidationIssue{
				Stage:     types.StageCompliance,
				Kind:      types.KindShareOverflow,
				Severity:  types.SeverityBlocking,
				Message:   fmt.Sprintf("shares for %s total %.1f%%, exceeding 100%%", label, total*100),
				FieldPath: "bequests",
			})
		case total < 1-shareEpsilon:
			issues = append(issues, types.ValidationIssue{
				Stage:     types.StageCompliance,
				Kind:      types.KindShareUnderflow,
				Severity:  types.SeverityAdvisory,
				Message:   fmt.Sprintf("shares for %s total %.1f%%; the remainder will fall to the residuary estate", label, total*100),
				FieldPath: "bequests",
			})
		}
	}
	return issues
}

func checkAges(w *types.WillData, now time.Time) []types.ValidationIssue {
	var issues []types.ValidationIssue

	underage := func(path string, p types.Party, role string) {
		a := p.AgeAt(now)
		if a >= 0 && a < 18 {
			issues = append(issues, types.ValidationIssue{
				Stage:     types.StageCompliance,
				Kind:      types.KindUnderageParty,
				Severity:  types.SeverityBlocking,
				Message:   fmt.Sprintf("%s %s is %d years old; a %s must be at least 18", role, p.FullName, a, role),
				FieldPath: path,
			})
		}
	}

	underage("testator", w.Testator, "testator")
	for i, p := range w.Witnesses {
		underage(fmt.Sprintf("witnesses[%d]", i), p, "witness")
	}
	for i, p := range w.Executors {
		underage(fmt.Sprintf("executors[%d]", i), p, "executor")
	}
	for i, p := range w.Guardians {
		underage(fmt.Sprintf("guardians[%d]", i), p, "guardian")
	}
	return issues
}

func checkWitnessCapacity(w *types.WillData, _ time.Time) []types.ValidationIssue {
	var issues []types.ValidationIssue
	for i, wit := range w.Witnesses {
		if wit.Incapacitated {
			issues = append(issues, types.ValidationIssue{
				Stage:     types.StageCompliance,
				Kind:      types.KindIncapacitatedWitness,
				Severity:  types.SeverityBlocking,
				Message:   fmt.Sprintf("witness %s is flagged as lacking capacity to attest", wit.FullName),
				FieldPath: fmt.Sprintf("witnesses[%d]", i),
			})
		}
	}
	return issues
}

// A minor taking a direct bequest should have a guardian appointed in
// the will. Advisory rather than blocking: the estate can still pass,
// with the executor holding the minor's share on trust until majority.
func checkGuardianForMinors(w *types.WillData, now time.Time) []types.ValidationIssue {
	if len(w.Guardians) > 0 {
		return nil
	}
	takers := make(map[string]bool)
	for _, b := range w.Bequests {
		for _, s := range b.Shares {
			takers[types.NormalizeNRIC(s.BeneficiaryNRIC)] = true
		}
	}
	var names []string
	for _, m := range w.MinorBeneficiaries(now) {
		if takers[m.ID()] {
			names = append(names, m.FullName)
		}
	}
	if len(names) == 0 {
		return nil
	}
	return []types.ValidationIssue{{
		Stage:     types.StageCompliance,
		Kind:      types.KindMissingGuardian,
		Severity:  types.SeverityAdvisory,
		Message:   fmt.Sprintf("beneficiaries under 18 (%s) have no appointed guardian; their shares will be held on trust by the executor", strings.Join(names, ", ")),
		FieldPath: "guardians",
	}}
}
