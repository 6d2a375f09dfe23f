// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rules

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/meshintel/will-engine/pkg/types"
)

// partyValidate checks the struct tags on Party, including the custom
// nric format tag.
var partyValidate = newPartyValidator()

func newPartyValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for a non-function argument.
	_ = v.RegisterValidation("nric", func(fl validator.FieldLevel) bool {
		return types.ValidNRIC(fl.Field().String())
	})
	return v
}

// fieldRules are the stage-1 per-field syntactic checks. Each party and
// asset is checked independently; nothing short-circuits.
func fieldRules() []factsRule {
	return []factsRule{
		{
			name:  "party-fields",
			stage: types.StageField,
			check: checkPartyFields,
		},
		{
			name:  "party-birth-dates",
			stage: types.StageField,
			check: checkBirthDates,
		},
		{
			name:  "asset-fields",
			stage: types.StageField,
			check: checkAssetFields,
		},
	}
}

// eachParty visits every party in the will with its field path prefix.
func eachParty(w *types.WillData, visit func(path string, p types.Party)) {
	visit("testator", w.Testator)
	for i, p := range w.Executors {
		visit(fmt.Sprintf("executors[%d]", i), p)
	}
	for i, p := range w.Witnesses {
		visit(fmt.Sprintf("witnesses[%d]", i), p)
	}
	for i, p := range w.Beneficiaries {
		visit(fmt.Sprintf("beneficiaries[%d]", i), p)
	}
	for i, p := range w.Guardians {
		visit(fmt.Sprintf("guardians[%d]", i), p)
	}
}

func checkPartyFields(w *types.WillData, _ time.Time) []types.ValidationIssue {
	var issues []types.ValidationIssue
	eachParty(w, func(path string, p types.Party) {
		err := partyValidate.Struct(p)
		if err == nil {
			return
		}
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			issues = append(issues, types.ValidationIssue{
				Stage:     types.StageField,
				Kind:      types.KindMissingField,
				Severity:  types.SeverityBlocking,
				Message:   fmt.Sprintf("%s: %v", path, err),
				FieldPath: path,
			})
			return
		}
		for _, fe := range verrs {
			issue := types.ValidationIssue{
				Stage:    types.StageField,
				Severity: types.SeverityBlocking,
			}
			switch fe.Tag() {
			case "nric":
				issue.Kind = types.KindInvalidNRIC
				issue.Message = fmt.Sprintf("%s: NRIC %q is not a valid 12-digit Malaysian NRIC", path, p.NRIC)
				issue.FieldPath = path + ".nric"
			default:
				issue.Kind = types.KindMissingField
				field := fieldPathName(fe.Field())
				issue.Message = fmt.Sprintf("%s: %s is required", path, field)
				issue.FieldPath = path + "." + field
			}
			issues = append(issues, issue)
		}
	})
	return issues
}

// fieldPathName maps struct field names to their manifest path form.
func fieldPathName(structField string) string {
	switch structField {
	case "FullName":
		return "full_name"
	case "NRIC":
		return "nric"
	case "Address":
		return "address"
	}
	return structField
}

func checkBirthDates(w *types.WillData, now time.Time) []types.ValidationIssue {
	var issues []types.ValidationIssue
	eachParty(w, func(path string, p types.Party) {
		if p.DateOfBirth == "" {
			return
		}
		if _, err := time.Parse("2006-01-02", p.DateOfBirth); err != nil {
			issues = append(issues, types.ValidationIssue{
				Stage:     types.StageField,
				Kind:      types.KindUnparseableDate,
				Severity:  types.SeverityBlocking,
				Message:   fmt.Sprintf("%s: date of birth %q is not a valid 2006-01-02 date", path, p.DateOfBirth),
				FieldPath: path + ".date_of_birth",
			})
		}
	})
	return issues
}

func checkAssetFields(w *types.WillData, _ time.Time) []types.ValidationIssue {
	var issues []types.ValidationIssue
	for i, a := range w.Assets {
		if err := a.Validate(); err != nil {
			issues = append(issues, types.ValidationIssue{
				Stage:     types.StageField,
				Kind:      types.KindInvalidAsset,
				Severity:  types.SeverityBlocking,
				Message:   err.Error(),
				FieldPath: fmt.Sprintf("assets[%d]", i),
			})
		}
	}
	return issues
}
