// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetValidate(t *testing.T) {
	ok := Asset{
		ID:   "prop-1",
		Kind: AssetRealProperty,
		Property: &PropertyDetails{
			Address:  "45 Jalan Bukit Bintang, 50200 Kuala Lumpur",
			TitleRef: "HS(D) 12345 PT 67890",
		},
	}
	require.NoError(t, ok.Validate())

	missing := Asset{ID: "prop-2", Kind: AssetRealProperty}
	assert.Error(t, missing.Validate())

	// Details attached to the wrong kind are rejected.
	mixed := Asset{
		ID:      "acc-1",
		Kind:    AssetBankAccount,
		Account: &AccountDetails{Institution: "Maybank Berhad", Number: "5123-4567"},
		Vehicle: &VehicleDetails{RegistrationNo: "WXY 1234"},
	}
	assert.Error(t, mixed.Validate())

	unknown := Asset{ID: "x", Kind: AssetKind("yacht")}
	assert.Error(t, unknown.Validate())

	other := Asset{ID: "misc", Kind: AssetOther, Description: "art collection"}
	assert.NoError(t, other.Validate())
}

func TestShareFraction(t *testing.T) {
	assert.InDelta(t, 0.5, Share{Kind: SharePercentage, Percent: 50}.Fraction(), 1e-9)
	assert.InDelta(t, 1.0/3, Share{Kind: ShareFraction, Numerator: 1, Denominator: 3}.Fraction(), 1e-9)
	assert.Equal(t, 1.0, Share{Kind: ShareAll}.Fraction())
	assert.Equal(t, 0.0, Share{Kind: ShareFraction, Numerator: 1}.Fraction())
}

func TestBequestTotalFraction(t *testing.T) {
	b := Bequest{
		AssetID: "prop-1",
		Shares: []BequestShare{
			{BeneficiaryNRIC: "800808-10-5678", Share: Share{Kind: SharePercentage, Percent: 60}},
			{BeneficiaryNRIC: "100202-10-1111", Share: Share{Kind: SharePercentage, Percent: 40}},
		},
	}
	assert.InDelta(t, 1.0, b.TotalFraction(), 1e-9)
	assert.False(t, b.IsResidue())

	residue := Bequest{AssetID: ResidueTarget}
	assert.True(t, residue.IsResidue())
}

func TestWillLookups(t *testing.T) {
	w := &WillData{
		Beneficiaries: []Party{
			{FullName: "Lim Mei Ling", NRIC: "800808-10-5678"},
		},
		Assets: []Asset{
			{ID: "prop-1", Kind: AssetRealProperty, Property: &PropertyDetails{Address: "a", TitleRef: "t"}},
		},
		Bequests: []Bequest{
			{AssetID: "prop-1", Shares: []BequestShare{{BeneficiaryNRIC: "800808105678", Share: Share{Kind: ShareAll}}}},
		},
	}

	// Lookup is separator-insensitive.
	_, ok := w.BeneficiaryByNRIC("800808105678")
	assert.True(t, ok)
	_, ok = w.BeneficiaryByNRIC("999999-99-9999")
	assert.False(t, ok)

	_, ok = w.AssetByID("prop-1")
	assert.True(t, ok)

	assert.Len(t, w.BequestsForAsset("prop-1"), 1)
	assert.Empty(t, w.BequestsForAsset(ResidueTarget))
}

func TestHasFactPath(t *testing.T) {
	w := &WillData{
		Testator:  Party{FullName: "Tan Wei Ming", NRIC: "780505-10-1234"},
		Witnesses: []Party{{NRIC: "750606-10-3333"}, {NRIC: "820909-10-4444"}},
		Assets:    []Asset{{ID: "prop-1", Kind: AssetOther, Description: "x"}},
		Bequests:  []Bequest{{AssetID: "prop-1"}},
	}

	for _, path := range []string{
		"testator",
		"testator.full_name",
		"witnesses[0]",
		"witnesses[1].nric",
		"assets[prop-1]",
		"assets[0]",
		"bequests[0]",
	} {
		assert.True(t, w.HasFactPath(path), path)
	}

	for _, path := range []string{
		"",
		"witnesses[2]",
		"assets[missing]",
		"bequests[5]",
		"special_instructions",
		"spouse",
	} {
		assert.False(t, w.HasFactPath(path), path)
	}
}
