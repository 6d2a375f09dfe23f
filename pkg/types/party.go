// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared domain model for will drafting: parties,
// assets, bequests, the WillData aggregate, knowledge fragments, validation
// issues, and the assembled document with its provenance manifest.
package types

import "time"

// Role tags the capacity in which a Party appears in a will.
type Role string

const (
	RoleTestator    Role = "testator"
	RoleBeneficiary Role = "beneficiary"
	RoleWitness     Role = "witness"
	RoleExecutor    Role = "executor"
	RoleGuardian    Role = "guardian"
)

// Party identifies one natural person named in a will. The same person may
// appear under several roles; conflicts between roles are the rule engine's
// concern, not the data model's.
type Party struct {
	// FullName is the legal name as it appears on the identity document.
	FullName string `json:"full_name" yaml:"full_name" validate:"required"`

	// NRIC is the 12-digit Malaysian identity number, with or without
	// separators.
	NRIC string `json:"nric" yaml:"nric" validate:"required,nric"`

	// DateOfBirth overrides the birth date encoded in the NRIC when set
	// (RFC 3339 date, "2006-01-02").
	DateOfBirth string `json:"date_of_birth,omitempty" yaml:"date_of_birth,omitempty"`

	// Address is the complete residential address.
	Address string `json:"address" yaml:"address" validate:"required"`

	// Relationship describes the relation to the testator (e.g. "Wife",
	// "Son"). Empty for the testator.
	Relationship string `json:"relationship,omitempty" yaml:"relationship,omitempty"`

	// Religion is recorded for the testator only; an explicitly Muslim
	// testator is routed to Wasiat preparation instead.
	Religion string `json:"religion,omitempty" yaml:"religion,omitempty"`

	// SpouseNRIC links a party to their spouse for witness-conflict
	// checks: a gift is void when a witness is the spouse of a
	// beneficiary.
	SpouseNRIC string `json:"spouse_nric,omitempty" yaml:"spouse_nric,omitempty"`

	// Incapacitated flags a party who is blind or otherwise lacks
	// capacity to witness. Supplied by the caller, never computed.
	Incapacitated bool `json:"incapacitated,omitempty" yaml:"incapacitated,omitempty"`
}

// ID returns the party's normalized NRIC, the identity key used across the
// engine.
func (p Party) ID() string {
	return NormalizeNRIC(p.NRIC)
}

// BirthDate returns the explicit DateOfBirth when present, otherwise the
// date encoded in the NRIC.
func (p Party) BirthDate(now time.Time) (time.Time, error) {
	if p.DateOfBirth != "" {
		return time.Parse("2006-01-02", p.DateOfBirth)
	}
	return BirthDateFromNRIC(p.NRIC, now)
}

// AgeAt returns the party's age in full years at the given time, or -1 when
// no birth date can be determined.
func (p Party) AgeAt(now time.Time) int {
	birth, err := p.BirthDate(now)
	if err != nil {
		return -1
	}
	return age(birth, now)
}

// IsMinorAt reports whether the party is under 18 at the given time.
// Parties with an undeterminable birth date are not treated as minors.
func (p Party) IsMinorAt(now time.Time) bool {
	a := p.AgeAt(now)
	return a >= 0 && a < 18
}
