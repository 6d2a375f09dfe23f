// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
	"time"
)

// NormalizeNRIC strips dashes and spaces from a Malaysian NRIC number so
// that "900101-14-5566" and "900101145566" compare equal.
func NormalizeNRIC(nric string) string {
	var b strings.Builder
	for _, c := range nric {
		if c == '-' || c == ' ' {
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

// ValidNRIC reports whether nric is a well-formed Malaysian NRIC:
// 12 digits total (optional dash/space separators), the first six being a
// YYMMDD date with a plausible month and day.
func ValidNRIC(nric string) bool {
	clean := NormalizeNRIC(nric)
	if len(clean) != 12 {
		return false
	}
	for _, c := range clean {
		if c < '0' || c > '9' {
			return false
		}
	}
	month := int(clean[2]-'0')*10 + int(clean[3]-'0')
	day := int(clean[4]-'0')*10 + int(clean[5]-'0')
	if month < 1 || month > 12 {
		return false
	}
	if day < 1 || day > 31 {
		return false
	}
	return true
}

// FormatNRIC renders a normalized NRIC in the conventional
// YYMMDD-PB-###G form. Input that is not a valid NRIC is returned as-is.
func FormatNRIC(nric string) string {
	clean := NormalizeNRIC(nric)
	if !ValidNRIC(clean) {
		return nric
	}
	return fmt.Sprintf("%s-%s-%s", clean[0:6], clean[6:8], clean[8:12])
}

// BirthDateFromNRIC derives the date of birth encoded in the first six
// NRIC digits. Two-digit years beyond the current year's last two digits
// are read as 19xx, otherwise 20xx.
func BirthDateFromNRIC(nric string, now time.Time) (time.Time, error) {
	clean := NormalizeNRIC(nric)
	if !ValidNRIC(clean) {
		return time.Time{}, fmt.Errorf("invalid NRIC %q", nric)
	}
	year := int(clean[0]-'0')*10 + int(clean[1]-'0')
	month := int(clean[2]-'0')*10 + int(clean[3]-'0')
	day := int(clean[4]-'0')*10 + int(clean[5]-'0')

	century := 2000
	if year > now.Year()%100 {
		century = 1900
	}
	return time.Date(century+year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// age returns full years elapsed between birth and now.
func age(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	return years
}
