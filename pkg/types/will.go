// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// WillData is the aggregate root for one drafting session: all
// caller-supplied facts the engine validates and assembles from. It is
// constructed once per session and treated as immutable for the duration of
// a validation pass; re-validation requires a fresh snapshot.
type WillData struct {
	Testator Party `json:"testator" yaml:"testator"`

	// Executors in order of appointment; the first is primary, the rest
	// are alternates. Between one and four are required.
	Executors []Party `json:"executors" yaml:"executors"`

	// Witnesses to the execution. Exactly two distinct persons are
	// required by the Wills Act 1959.
	Witnesses []Party `json:"witnesses" yaml:"witnesses"`

	Beneficiaries []Party `json:"beneficiaries" yaml:"beneficiaries"`

	// Guardians for minor beneficiaries, primary first.
	Guardians []Party `json:"guardians,omitempty" yaml:"guardians,omitempty"`

	// Assets in creation order. Specific-bequest sections follow this
	// order regardless of how bequests are listed.
	Assets []Asset `json:"assets,omitempty" yaml:"assets,omitempty"`

	Bequests []Bequest `json:"bequests,omitempty" yaml:"bequests,omitempty"`

	// RevokesPrior asserts that the will revokes all former testamentary
	// dispositions. Drafts are expected to carry it.
	RevokesPrior bool `json:"revokes_prior" yaml:"revokes_prior"`

	// SpecialInstructions is free-form testator wishes (funeral
	// arrangements and the like), rendered verbatim, never generated.
	SpecialInstructions string `json:"special_instructions,omitempty" yaml:"special_instructions,omitempty"`
}

// BeneficiaryByNRIC resolves a beneficiary by normalized NRIC.
func (w *WillData) BeneficiaryByNRIC(nric string) (Party, bool) {
	id := NormalizeNRIC(nric)
	for _, b := range w.Beneficiaries {
		if b.ID() == id {
			return b, true
		}
	}
	return Party{}, false
}

// AssetByID resolves an asset by its ID.
func (w *WillData) AssetByID(id string) (Asset, bool) {
	for _, a := range w.Assets {
		if a.ID == id {
			return a, true
		}
	}
	return Asset{}, false
}

// BequestsForAsset returns the bequests targeting the given asset ID (or
// ResidueTarget), preserving input order.
func (w *WillData) BequestsForAsset(assetID string) []Bequest {
	var out []Bequest
	for _, b := range w.Bequests {
		if b.AssetID == assetID {
			out = append(out, b)
		}
	}
	return out
}

// MinorBeneficiaries returns beneficiaries under 18 at the given time.
func (w *WillData) MinorBeneficiaries(now time.Time) []Party {
	var minors []Party
	for _, b := range w.Beneficiaries {
		if b.IsMinorAt(now) {
			minors = append(minors, b)
		}
	}
	return minors
}

// HasFactPath reports whether a provenance fact path resolves against this
// will. Paths are the dotted/indexed form the assembler records in the
// manifest, e.g. "testator.full_name", "witnesses[1].nric",
// "assets[prop-1]", "bequests[2].shares[0]".
func (w *WillData) HasFactPath(path string) bool {
	return resolveFactPath(w, path)
}
