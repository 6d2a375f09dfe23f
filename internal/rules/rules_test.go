// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshintel/will-engine/pkg/types"
)

// testNow fixes age arithmetic for reproducible rule evaluation.
var testNow = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

func newTestEngine() *Engine {
	e := NewEngine()
	e.now = func() time.Time { return testNow }
	return e
}

// validWill is the baseline scenario: adult testator, two distinct
// non-beneficiary witnesses, one executor who is also the sole
// beneficiary, one real-property asset bequeathed wholly to them.
func validWill() *types.WillData {
	beneficiary := types.Party{
		FullName:     "Lim Wei Ming",
		NRIC:         "750315-14-5677",
		Address:      "88 Jalan Ampang, 50450 Kuala Lumpur",
		Relationship: "Son",
	}
	return &types.WillData{
		Testator: types.Party{
			FullName: "Tan Ah Kow",
			NRIC:     "810101-14-5566",
			Address:  "12 Jalan Bukit Bintang, 55100 Kuala Lumpur",
			Religion: "Buddhist",
		},
		Executors: []types.Party{beneficiary},
		Witnesses: []types.Party{
			{
				FullName: "Wong Siew Lan",
				NRIC:     "850607-08-1122",
				Address:  "3 Jalan Gasing, 46000 Petaling Jaya",
			},
			{
				FullName: "Kumar Raju",
				NRIC:     "790912-10-3344",
				Address:  "17 Jalan Ipoh, 51100 Kuala Lumpur",
			},
		},
		Beneficiaries: []types.Party{beneficiary},
		Assets: []types.Asset{
			{
				ID:          "prop-1",
				Kind:        types.AssetRealProperty,
				Description: "family home",
				Property: &types.PropertyDetails{
					Address:  "12 Jalan Bukit Bintang, 55100 Kuala Lumpur",
					TitleRef: "HS(D) 12345 PT 67890",
				},
			},
		},
		Bequests: []types.Bequest{
			{
				AssetID: "prop-1",
				Shares: []types.BequestShare{
					{BeneficiaryNRIC: "750315-14-5677", Share: types.Share{Kind: types.ShareAll}},
				},
			},
			{
				AssetID: types.ResidueTarget,
				Shares: []types.BequestShare{
					{BeneficiaryNRIC: "750315-14-5677", Share: types.Share{Kind: types.ShareAll}},
				},
			},
		},
		RevokesPrior: true,
	}
}

func kinds(issues []types.ValidationIssue) []types.IssueKind {
	out := make([]types.IssueKind, len(issues))
	for i, is := range issues {
		out[i] = is.Kind
	}
	return out
}

func TestValidWillPasses(t *testing.T) {
	report := newTestEngine().ValidateFacts(validWill())
	assert.False(t, report.HasBlocking(), "unexpected issues: %v", report.Issues)
	assert.NotEmpty(t, report.ID)
}

func TestNRICFieldValidation(t *testing.T) {
	cases := []struct {
		nric  string
		valid bool
	}{
		{"900101-14-5566", true},
		{"ABC123", false},
		{"900101145", false},
	}
	for _, tc := range cases {
		w := validWill()
		w.Witnesses[0].NRIC = tc.nric
		report := newTestEngine().ValidateFacts(w)
		found := report.ByKind(types.KindInvalidNRIC)
		if tc.valid {
			assert.Empty(t, found, "nric %q", tc.nric)
		} else {
			require.NotEmpty(t, found, "nric %q", tc.nric)
			assert.Equal(t, types.StageField, found[0].Stage)
			assert.Equal(t, types.SeverityBlocking, found[0].Severity)
			assert.Equal(t, "witnesses[0].nric", found[0].FieldPath)
		}
	}
}

func TestMissingFields(t *testing.T) {
	w := validWill()
	w.Testator.FullName = ""
	w.Witnesses[1].Address = ""

	report := newTestEngine().ValidateFacts(w)
	found := report.ByKind(types.KindMissingField)
	require.Len(t, found, 2)
	assert.Equal(t, "testator.full_name", found[0].FieldPath)
	assert.Equal(t, "witnesses[1].address", found[1].FieldPath)
}

func TestUnparseableDate(t *testing.T) {
	w := validWill()
	w.Testator.DateOfBirth = "31/12/1980"
	report := newTestEngine().ValidateFacts(w)
	assert.NotEmpty(t, report.ByKind(types.KindUnparseableDate))
}

func TestInvalidAsset(t *testing.T) {
	w := validWill()
	w.Assets[0].Property = nil
	report := newTestEngine().ValidateFacts(w)
	found := report.ByKind(types.KindInvalidAsset)
	require.Len(t, found, 1)
	assert.Equal(t, "assets[0]", found[0].FieldPath)
}

func TestWitnessCount(t *testing.T) {
	for _, n := range []int{0, 1, 3} {
		w := validWill()
		extra := types.Party{
			FullName: "Extra Witness",
			NRIC:     "820202-06-7788",
			Address:  "9 Jalan Tun Razak, Kuala Lumpur",
		}
		switch n {
		case 0:
			w.Witnesses = nil
		case 1:
			w.Witnesses = w.Witnesses[:1]
		case 3:
			w.Witnesses = append(w.Witnesses, extra)
		}
		report := newTestEngine().ValidateFacts(w)
		found := report.ByKind(types.KindWitnessCount)
		require.Len(t, found, 1, "witness count %d", n)
		assert.Equal(t, types.StageStructural, found[0].Stage)
		assert.True(t, report.HasBlocking())
	}
}

func TestExecutorCount(t *testing.T) {
	w := validWill()
	w.Executors = nil
	report := newTestEngine().ValidateFacts(w)
	assert.NotEmpty(t, report.ByKind(types.KindExecutorCount))

	w = validWill()
	for i := 0; i < 4; i++ {
		w.Executors = append(w.Executors, types.Party{
			FullName: "Backup Executor",
			NRIC:     "770707-07-7777",
			Address:  "somewhere",
		})
	}
	report = newTestEngine().ValidateFacts(w)
	assert.NotEmpty(t, report.ByKind(types.KindExecutorCount))
}

func TestDuplicateWitness(t *testing.T) {
	w := validWill()
	// Same NRIC with different separators is the same person.
	w.Witnesses[1].NRIC = "850607085566"
	w.Witnesses[0].NRIC = "850607-08-5566"
	report := newTestEngine().ValidateFacts(w)
	assert.NotEmpty(t, report.ByKind(types.KindDuplicateWitness))
}

func TestUnknownReferences(t *testing.T) {
	w := validWill()
	w.Bequests[0].AssetID = "no-such-asset"
	w.Bequests[1].Shares[0].BeneficiaryNRIC = "990101-14-0000"
	report := newTestEngine().ValidateFacts(w)
	assert.NotEmpty(t, report.ByKind(types.KindUnknownAsset))
	assert.NotEmpty(t, report.ByKind(types.KindUnknownBeneficiary))
}

func TestDuplicateResidue(t *testing.T) {
	w := validWill()
	w.Bequests = append(w.Bequests, w.Bequests[1])
	report := newTestEngine().ValidateFacts(w)
	assert.NotEmpty(t, report.ByKind(types.KindDuplicateResidue))
}

func TestWitnessBeneficiaryConflictDirect(t *testing.T) {
	w := validWill()
	w.Witnesses[0] = w.Beneficiaries[0]

	report := newTestEngine().ValidateFacts(w)
	found := report.ByKind(types.KindWitnessBeneficiaryConflict)
	require.Len(t, found, 1)
	assert.Equal(t, types.StageCompliance, found[0].Stage)
	assert.Equal(t, types.SeverityBlocking, found[0].Severity)
	assert.Equal(t, "witnesses[0]", found[0].FieldPath)
	assert.Contains(t, found[0].Message, "Lim Wei Ming")
}

func TestWitnessBeneficiaryConflictViaSpouse(t *testing.T) {
	// Declared on the witness side.
	w := validWill()
	w.Witnesses[1].SpouseNRIC = w.Beneficiaries[0].NRIC
	report := newTestEngine().ValidateFacts(w)
	require.Len(t, report.ByKind(types.KindWitnessBeneficiaryConflict), 1)

	// Declared on the beneficiary side.
	w = validWill()
	w.Beneficiaries[0].SpouseNRIC = w.Witnesses[1].NRIC
	report = newTestEngine().ValidateFacts(w)
	require.Len(t, report.ByKind(types.KindWitnessBeneficiaryConflict), 1)
}

func TestExecutorWitnessConflict(t *testing.T) {
	w := validWill()
	w.Witnesses[0].NRIC = w.Executors[0].NRIC
	report := newTestEngine().ValidateFacts(w)
	assert.NotEmpty(t, report.ByKind(types.KindExecutorWitnessConflict))
}

func TestShareOverflow(t *testing.T) {
	w := validWill()
	w.Bequests[0].Shares = []types.BequestShare{
		{BeneficiaryNRIC: "750315-14-5677", Share: types.Share{Kind: types.SharePercentage, Percent: 60}},
		{BeneficiaryNRIC: "750315-14-5677", Share: types.Share{Kind: types.SharePercentage, Percent: 50}},
	}
	report := newTestEngine().ValidateFacts(w)
	found := report.ByKind(types.KindShareOverflow)
	require.Len(t, found, 1)
	assert.Equal(t, types.SeverityBlocking, found[0].Severity)
}

func TestShareExactlyFullPasses(t *testing.T) {
	w := validWill()
	w.Bequests[0].Shares = []types.BequestShare{
		{BeneficiaryNRIC: "750315-14-5677", Share: types.Share{Kind: types.ShareFraction, Numerator: 1, Denominator: 3}},
		{BeneficiaryNRIC: "750315-14-5677", Share: types.Share{Kind: types.ShareFraction, Numerator: 1, Denominator: 3}},
		{BeneficiaryNRIC: "750315-14-5677", Share: types.Share{Kind: types.ShareFraction, Numerator: 1, Denominator: 3}},
	}
	report := newTestEngine().ValidateFacts(w)
	assert.Empty(t, report.ByKind(types.KindShareOverflow))
	assert.Empty(t, report.ByKind(types.KindShareUnderflow))
}

func TestShareUnderflowAdvisory(t *testing.T) {
	w := validWill()
	w.Bequests[0].Shares = []types.BequestShare{
		{BeneficiaryNRIC: "750315-14-5677", Share: types.Share{Kind: types.SharePercentage, Percent: 40}},
	}
	report := newTestEngine().ValidateFacts(w)
	found := report.ByKind(types.KindShareUnderflow)
	require.Len(t, found, 1)
	assert.Equal(t, types.SeverityAdvisory, found[0].Severity)
	assert.False(t, report.HasBlocking())
}

func TestZeroShare(t *testing.T) {
	w := validWill()
	w.Bequests[0].Shares[0].Share = types.Share{Kind: types.SharePercentage, Percent: 0}
	report := newTestEngine().ValidateFacts(w)
	assert.NotEmpty(t, report.ByKind(types.KindZeroShare))
}

func TestBequestWithoutSharesBlocks(t *testing.T) {
	w := validWill()
	w.Bequests[0].Shares = nil
	report := newTestEngine().ValidateFacts(w)
	found := report.ByKind(types.KindZeroShare)
	require.Len(t, found, 1)
	assert.Equal(t, types.SeverityBlocking, found[0].Severity)
	assert.True(t, report.HasBlocking())
}

func TestUnderageTestator(t *testing.T) {
	w := validWill()
	w.Testator.DateOfBirth = "2010-03-03"
	report := newTestEngine().ValidateFacts(w)
	found := report.ByKind(types.KindUnderageParty)
	require.NotEmpty(t, found)
	assert.Equal(t, "testator", found[0].FieldPath)
}

func TestUnderageWitness(t *testing.T) {
	w := validWill()
	w.Witnesses[0].DateOfBirth = "2012-01-01"
	report := newTestEngine().ValidateFacts(w)
	assert.NotEmpty(t, report.ByKind(types.KindUnderageParty))
}

func TestIncapacitatedWitness(t *testing.T) {
	w := validWill()
	w.Witnesses[1].Incapacitated = true
	report := newTestEngine().ValidateFacts(w)
	assert.NotEmpty(t, report.ByKind(types.KindIncapacitatedWitness))
}

func TestMissingGuardianForMinor(t *testing.T) {
	w := validWill()
	w.Beneficiaries = append(w.Beneficiaries, types.Party{
		FullName:     "Lim Mei Ling",
		NRIC:         "150505-14-1234",
		Address:      "88 Jalan Ampang, 50450 Kuala Lumpur",
		Relationship: "Granddaughter",
		DateOfBirth:  "2015-05-05",
	})

	// A minor who takes nothing does not need a guardian.
	report := newTestEngine().ValidateFacts(w)
	assert.Empty(t, report.ByKind(types.KindMissingGuardian))

	// Give the minor a direct share of the residue.
	w.Bequests[1].Shares = []types.BequestShare{
		{BeneficiaryNRIC: "750315-14-5677", Share: types.Share{Kind: types.SharePercentage, Percent: 50}},
		{BeneficiaryNRIC: "150505-14-1234", Share: types.Share{Kind: types.SharePercentage, Percent: 50}},
	}
	report = newTestEngine().ValidateFacts(w)
	found := report.ByKind(types.KindMissingGuardian)
	require.Len(t, found, 1)
	assert.Contains(t, found[0].Message, "Lim Mei Ling")
	assert.Equal(t, types.SeverityAdvisory, found[0].Severity)

	// Naming a guardian clears the finding.
	w.Guardians = []types.Party{{
		FullName: "Chong Li Hua",
		NRIC:     "800808-14-9876",
		Address:  "5 Jalan Klang Lama, Kuala Lumpur",
	}}
	report = newTestEngine().ValidateFacts(w)
	assert.Empty(t, report.ByKind(types.KindMissingGuardian))
}

func TestReligionRouting(t *testing.T) {
	w := validWill()
	w.Testator.Religion = "Muslim"
	report := newTestEngine().ValidateFacts(w)
	found := report.ByKind(types.KindReligionRouting)
	require.Len(t, found, 1)
	assert.Contains(t, found[0].Message, "Wasiat")

	w.Testator.Religion = ""
	report = newTestEngine().ValidateFacts(w)
	assert.Empty(t, report.ByKind(types.KindReligionRouting))
}

func TestIssuesReportedInStageOrder(t *testing.T) {
	w := validWill()
	w.Witnesses = w.Witnesses[:1]           // structural
	w.Witnesses[0].NRIC = "bad"             // field
	w.Testator.Religion = "Islam"           // compliance
	report := newTestEngine().ValidateFacts(w)

	var stages []types.Stage
	for _, is := range report.Issues {
		stages = append(stages, is.Stage)
	}
	for i := 1; i < len(stages); i++ {
		assert.LessOrEqual(t, stages[i-1], stages[i])
	}
	// All stages ran despite earlier findings.
	assert.NotEmpty(t, report.ByStage(types.StageField))
	assert.NotEmpty(t, report.ByStage(types.StageStructural))
	assert.NotEmpty(t, report.ByStage(types.StageCompliance))
}
