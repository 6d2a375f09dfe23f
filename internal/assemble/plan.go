// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assemble compiles validated facts, retrieved legal fragments,
// and generated clause text into a will in canonical section order, with
// a provenance manifest recording what each section drew on. Assembly is
// all-or-nothing: a failed section fails the whole document.
package assemble

import (
	"fmt"
	"strings"
	"time"

	"github.com/meshintel/will-engine/pkg/types"
)

// sectionPlan describes one section before its text exists: either a
// fixed-form template or a generated clause with its retrieval topic,
// prompt facts, and provenance fact paths.
type sectionPlan struct {
	name      types.SectionName
	generated bool

	// intent opens the prompt and names what the clause must do.
	intent string

	// topic seeds the retrieval query together with the facts.
	topic string

	// facts are the rendered fact lines the generator may use.
	facts []string

	// factPaths is the provenance record of which WillData fields the
	// section was allowed to reference.
	factPaths []string

	// render produces the text of a fixed-form section.
	render func(w *types.WillData) string
}

// buildPlans lays out the canonical section list for the will. Ordering
// here is the single source of truth for document structure; stage-4
// validation re-checks it independently.
func buildPlans(w *types.WillData, now time.Time) []sectionPlan {
	plans := []sectionPlan{
		{
			name:      types.SectionRevocation,
			factPaths: []string{"testator.full_name", "testator.nric", "revokes_prior"},
			render:    renderRevocation,
		},
		declarationPlan(w),
		executorPlan(w),
		{
			name:      types.SectionDebtsExpenses,
			factPaths: []string{"executors"},
			render:    renderDebtsExpenses,
		},
	}

	// Guardian appointment appears whenever minors take under the will,
	// even if no guardian was named; the clause then places the minors'
	// shares on trust with the executor.
	if len(w.Guardians) > 0 || len(w.MinorBeneficiaries(now)) > 0 {
		plans = append(plans, guardianPlan(w, now))
	}

	// Specific bequests follow asset creation order, never the order
	// bequests were supplied in.
	for _, asset := range w.Assets {
		if len(w.BequestsForAsset(asset.ID)) == 0 {
			continue
		}
		plans = append(plans, bequestPlan(w, asset))
	}

	plans = append(plans, residuePlan(w))

	if w.SpecialInstructions != "" {
		plans = append(plans, sectionPlan{
			name:      types.SectionSpecialInstructions,
			factPaths: []string{"special_instructions"},
			render:    renderSpecialInstructions,
		})
	}

	plans = append(plans,
		sectionPlan{
			name:      types.SectionAttestation,
			factPaths: []string{"testator.full_name", "witnesses[0]", "witnesses[1]"},
			render:    renderAttestation,
		},
		sectionPlan{
			name:      types.SectionExecution,
			factPaths: []string{"testator.full_name", "testator.nric", "witnesses[0]", "witnesses[1]"},
			render:    renderExecution,
		},
	)
	return plans
}

func partyLine(role string, p types.Party) string {
	line := fmt.Sprintf("%s: %s, NRIC No. %s, of %s", role, p.FullName, types.FormatNRIC(p.NRIC), p.Address)
	if p.Relationship != "" {
		line += fmt.Sprintf(" (%s of the testator)", strings.ToLower(p.Relationship))
	}
	return line
}

func declarationPlan(w *types.WillData) sectionPlan {
	return sectionPlan{
		name:      types.SectionDeclaration,
		generated: true,
		intent:    "Opening declaration clause: identify the testator and declare sound mind and last will.",
		topic:     "opening declaration testator identification sound mind last will and testament",
		facts: []string{
			partyLine("Testator", w.Testator),
		},
		factPaths: []string{"testator.full_name", "testator.nric", "testator.address"},
	}
}

func executorPlan(w *types.WillData) sectionPlan {
	plan := sectionPlan{
		name:      types.SectionExecutorAppointment,
		generated: true,
		intent:    "Executor appointment clause: appoint the named executors, alternates in order.",
		topic:     "executor appointment clause executors and trustees of this will",
	}
	for i, e := range w.Executors {
		role := "Executor"
		if i > 0 {
			role = fmt.Sprintf("Alternate executor %d", i)
		}
		plan.facts = append(plan.facts, partyLine(role, e))
		plan.factPaths = append(plan.factPaths, fmt.Sprintf("executors[%d]", i))
	}
	return plan
}

func guardianPlan(w *types.WillData, now time.Time) sectionPlan {
	plan := sectionPlan{
		name:      types.SectionGuardianAppointment,
		generated: true,
		intent:    "Guardian appointment clause: appoint guardians for beneficiaries under 18 until they attain majority.",
		topic:     "guardian appointment clause minor children custody care until age of majority",
	}
	for i, g := range w.Guardians {
		role := "Guardian"
		if i > 0 {
			role = fmt.Sprintf("Alternate guardian %d", i)
		}
		plan.facts = append(plan.facts, partyLine(role, g))
		plan.factPaths = append(plan.factPaths, fmt.Sprintf("guardians[%d]", i))
	}
	if len(w.Guardians) == 0 {
		// Minors with no guardian named: the clause directs the executor
		// to hold their shares on trust until majority.
		plan.intent = "Trust provision clause: direct the executor to hold minor beneficiaries' shares on trust until they attain 18."
		plan.topic = "trust provisions minor beneficiaries executor holds on trust until age of majority"
		for i, b := range w.Beneficiaries {
			if !b.IsMinorAt(now) {
				continue
			}
			plan.facts = append(plan.facts, fmt.Sprintf("%s, aged %d, takes under this will with no guardian appointed", b.FullName, b.AgeAt(now)))
			plan.factPaths = append(plan.factPaths, fmt.Sprintf("beneficiaries[%d]", i))
		}
	}
	return plan
}

func bequestPlan(w *types.WillData, asset types.Asset) sectionPlan {
	plan := sectionPlan{
		name:      types.BequestSection(asset.ID),
		generated: true,
		intent:    fmt.Sprintf("Specific bequest clause for %s: give, devise and bequeath the asset in the stated shares.", asset.Description),
		topic:     retrievalTopicForAsset(asset),
		facts:     []string{assetLine(asset)},
		factPaths: []string{fmt.Sprintf("assets[%s]", asset.ID)},
	}
	for i, b := range w.Bequests {
		if b.AssetID != asset.ID {
			continue
		}
		for j, s := range b.Shares {
			beneficiary, ok := w.BeneficiaryByNRIC(s.BeneficiaryNRIC)
			if !ok {
				continue
			}
			plan.facts = append(plan.facts, fmt.Sprintf("%s takes %s", partyLine("Beneficiary", beneficiary), s.Share.Describe()))
			plan.factPaths = append(plan.factPaths, fmt.Sprintf("bequests[%d].shares[%d]", i, j))
		}
	}
	return plan
}

func residuePlan(w *types.WillData) sectionPlan {
	plan := sectionPlan{
		name:      types.SectionResidue,
		generated: true,
		intent:    "Residuary estate clause: dispose of all remaining property, including lapsed and void gifts.",
		topic:     "residuary estate clause rest residue and remainder prevent partial intestacy",
	}
	assigned := false
	for i, b := range w.Bequests {
		if !b.IsResidue() {
			continue
		}
		for j, s := range b.Shares {
			beneficiary, ok := w.BeneficiaryByNRIC(s.BeneficiaryNRIC)
			if !ok {
				continue
			}
			plan.facts = append(plan.facts, fmt.Sprintf("%s takes %s of the residue", partyLine("Beneficiary", beneficiary), s.Share.Describe()))
			plan.factPaths = append(plan.factPaths, fmt.Sprintf("bequests[%d].shares[%d]", i, j))
			assigned = true
		}
	}
	if !assigned {
		// No explicit residuary bequest: the residue is divided equally
		// among all beneficiaries, per stirpes.
		for i, b := range w.Beneficiaries {
			plan.facts = append(plan.facts, fmt.Sprintf("%s takes an equal share of the residue, per stirpes", partyLine("Beneficiary", b)))
			plan.factPaths = append(plan.factPaths, fmt.Sprintf("beneficiaries[%d]", i))
		}
	}
	return plan
}

// assetLine renders the asset identification facts for the prompt.
func assetLine(a types.Asset) string {
	switch a.Kind {
	case types.AssetRealProperty:
		return fmt.Sprintf("Asset: property known as %s held under Title No. %s", a.Property.Address, a.Property.TitleRef)
	case types.AssetBankAccount:
		return fmt.Sprintf("Asset: account No. %s with %s", a.Account.Number, a.Account.Institution)
	case types.AssetVehicle:
		line := fmt.Sprintf("Asset: motor vehicle registration No. %s", a.Vehicle.RegistrationNo)
		if a.Vehicle.MakeModel != "" {
			line += " (" + a.Vehicle.MakeModel + ")"
		}
		return line
	case types.AssetBusiness:
		line := fmt.Sprintf("Asset: shares and interests in %s (Company No. %s)", a.Business.CompanyName, a.Business.RegistrationNo)
		if a.Business.OwnershipPct > 0 {
			line += fmt.Sprintf(" comprising %g%% shareholding", a.Business.OwnershipPct)
		}
		return line
	case types.AssetDigital:
		return fmt.Sprintf("Asset: digital assets (%s), access credentials stored at %s", a.Description, a.Digital.AccessLocation)
	}
	return "Asset: " + a.Description
}

// retrievalTopicForAsset steers retrieval at the guidance fragments for
// the asset's kind.
func retrievalTopicForAsset(a types.Asset) string {
	switch a.Kind {
	case types.AssetRealProperty:
		return "real property land title bequest clause I give devise and bequeath"
	case types.AssetBankAccount:
		return "bank account financial assets bequest clause"
	case types.AssetVehicle:
		return "motor vehicle personal property bequest clause"
	case types.AssetBusiness:
		return "business interests shares company bequest clause"
	case types.AssetDigital:
		return "digital assets cryptocurrency online accounts bequest clause"
	}
	return "specific bequest clause personal property"
}
