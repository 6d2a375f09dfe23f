// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// ResidueTarget is the Bequest.AssetID value that directs a bequest at the
// residuary estate instead of a specific asset.
const ResidueTarget = "residue"

// ShareKind selects how a BequestShare expresses its portion.
type ShareKind string

const (
	SharePercentage ShareKind = "percentage"
	ShareFraction   ShareKind = "fraction"
	ShareAll        ShareKind = "all"
)

// Share is one beneficiary's portion of an asset or of the residue.
type Share struct {
	Kind ShareKind `json:"kind" yaml:"kind"`

	// Percent is used when Kind is percentage (0 < Percent <= 100).
	Percent float64 `json:"percent,omitempty" yaml:"percent,omitempty"`

	// Numerator/Denominator are used when Kind is fraction.
	Numerator   int `json:"numerator,omitempty" yaml:"numerator,omitempty"`
	Denominator int `json:"denominator,omitempty" yaml:"denominator,omitempty"`
}

// Fraction returns the share as a value in (0, 1]. An "all" share is 1.
// Malformed shares return 0.
func (s Share) Fraction() float64 {
	switch s.Kind {
	case ShareAll:
		return 1
	case SharePercentage:
		return s.Percent / 100
	case ShareFraction:
		if s.Denominator == 0 {
			return 0
		}
		return float64(s.Numerator) / float64(s.Denominator)
	}
	return 0
}

// Describe renders the share for use in clause prompts ("50%", "1/3",
// "the whole").
func (s Share) Describe() string {
	switch s.Kind {
	case ShareAll:
		return "the whole"
	case SharePercentage:
		return fmt.Sprintf("%g%%", s.Percent)
	case ShareFraction:
		return fmt.Sprintf("%d/%d", s.Numerator, s.Denominator)
	}
	return "an unspecified share"
}

// BequestShare assigns a Share to one beneficiary.
type BequestShare struct {
	BeneficiaryNRIC string `json:"beneficiary_nric" yaml:"beneficiary_nric"`
	Share           Share  `json:"share" yaml:"share"`
}

// Bequest directs an asset (or the residue) to one or more beneficiaries.
type Bequest struct {
	// AssetID names an Asset.ID in the same will, or ResidueTarget.
	AssetID string `json:"asset_id" yaml:"asset_id"`

	Shares []BequestShare `json:"shares" yaml:"shares"`
}

// IsResidue reports whether the bequest targets the residuary estate.
func (b Bequest) IsResidue() bool {
	return b.AssetID == ResidueTarget
}

// TotalFraction sums the bequest's shares as a fraction of the asset. An
// "all" share alongside others still sums arithmetically, which the share
// rules then flag as an overflow.
func (b Bequest) TotalFraction() float64 {
	var total float64
	for _, s := range b.Shares {
		total += s.Share.Fraction()
	}
	return total
}
