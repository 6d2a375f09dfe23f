// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"
	"time"
)

func TestValidNRIC(t *testing.T) {
	cases := []struct {
		nric string
		want bool
	}{
		{"900101-14-5566", true},
		{"900101145566", true},
		{"900101 14 5566", true},
		{"ABC123", false},
		{"900101145", false},   // 9 digits
		{"90010114556", false}, // 11 digits
		{"9001011455667", false},
		{"901301-14-5566", false}, // month 13
		{"900132-14-5566", false}, // day 32
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidNRIC(tc.nric); got != tc.want {
			t.Errorf("ValidNRIC(%q) = %v, want %v", tc.nric, got, tc.want)
		}
	}
}

func TestFormatNRIC(t *testing.T) {
	if got := FormatNRIC("900101145566"); got != "900101-14-5566" {
		t.Errorf("FormatNRIC = %q", got)
	}
	// Invalid input passes through untouched.
	if got := FormatNRIC("ABC123"); got != "ABC123" {
		t.Errorf("FormatNRIC(invalid) = %q", got)
	}
}

func TestBirthDateFromNRIC_CenturyRule(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	born, err := BirthDateFromNRIC("900101-14-5566", now)
	if err != nil {
		t.Fatal(err)
	}
	if born.Year() != 1990 {
		t.Errorf("year = %d, want 1990", born.Year())
	}

	born, err = BirthDateFromNRIC("100303-14-9012", now)
	if err != nil {
		t.Fatal(err)
	}
	if born.Year() != 2010 {
		t.Errorf("year = %d, want 2010", born.Year())
	}
}

func TestPartyAgeAt(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	p := Party{FullName: "Tan Wei Ming", NRIC: "780505-10-1234"}
	if got := p.AgeAt(now); got != 48 {
		t.Errorf("AgeAt = %d, want 48", got)
	}

	minor := Party{FullName: "Tan Xiao Ming", NRIC: "100202-10-1111"}
	if !minor.IsMinorAt(now) {
		t.Error("expected minor")
	}

	// Explicit date of birth wins over the NRIC encoding.
	p.DateOfBirth = "2000-12-31"
	if got := p.AgeAt(now); got != 25 {
		t.Errorf("AgeAt with DOB = %d, want 25", got)
	}
}
