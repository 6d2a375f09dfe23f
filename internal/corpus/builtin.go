// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import "github.com/meshintel/will-engine/pkg/types"

// builtinFragments returns the built-in knowledge store content for
// Malaysian non-Muslim wills under the Wills Act 1959. Fragment IDs are
// stable; downstream provenance manifests record them verbatim.
func builtinFragments() []types.KnowledgeFragment {
	return []types.KnowledgeFragment{
		{
			ID:        "lr-age-requirements",
			Category:  types.CategoryLegalRequirement,
			SourceRef: "Wills Act 1959, ss 3-4",
			Text: `AGE REQUIREMENTS (Wills Act 1959, Sections 3-4):
The testator must be at least 18 years old (21 in Sabah). No will made by a
person under the age of majority is valid. Privileged wills for military
personnel and mariners under Section 26 are the only exception. The testator
must also be of sound mind, understanding the nature of the act, the extent
of their property, and the claims of those who might expect to benefit.`,
		},
		{
			ID:        "lr-witness-requirements",
			Category:  types.CategoryLegalRequirement,
			SourceRef: "Wills Act 1959, ss 5, 9, 10, 11",
			Text: `WITNESS REQUIREMENTS (Wills Act 1959, Sections 5, 9, 10, 11):
Two witnesses are required, both present at the same time during execution,
and both must subscribe in the testator's presence. A beneficiary cannot
witness: any beneficial devise, legacy, estate, interest or gift to an
attesting witness, or to the spouse of an attesting witness, is utterly null
and void (Section 9). An executor may witness provided the executor is not
also a beneficiary (Section 11), and a creditor whose debt is charged on the
estate may witness (Section 10). Standard attestation wording: "Signed by the
testator in our presence and by us in the testator's presence".`,
		},
		{
			ID:        "lr-execution-requirements",
			Category:  types.CategoryLegalRequirement,
			SourceRef: "Wills Act 1959, s 5",
			Text: `EXECUTION REQUIREMENTS (Wills Act 1959, Section 5):
The will must be in writing and signed by the testator at the foot or end.
The signature must be made or acknowledged in the presence of two or more
witnesses present at the same time, who then subscribe in the testator's
presence. Some flexibility in signature placement is allowed where it is
apparent on the face of the will that the testator intended the signature to
give effect to it, but signing at the very end after all clauses is best
practice.`,
		},
		{
			ID:        "lr-revocation-rules",
			Category:  types.CategoryLegalRequirement,
			SourceRef: "Wills Act 1959, ss 12-16",
			Text: `REVOCATION MECHANISMS (Wills Act 1959, Sections 12-16):
Marriage or remarriage automatically revokes a will (Section 12) unless the
will was made in contemplation of marriage naming the intended spouse.
Conversion to Islam removes the estate from the Act. Voluntary revocation is
effected by a later will with a revocation clause, a written declaration, a
codicil, or intentional destruction with intent to revoke. Changed
circumstances alone do not revoke a will (Section 13), and divorce does not
revoke a will. Standard revocation clause: "I hereby revoke all former wills
and testamentary dispositions heretofore made by me".`,
		},
		{
			ID:        "lr-mandatory-sections",
			Category:  types.CategoryLegalRequirement,
			SourceRef: "Malaysian probate practice",
			Text: `MANDATORY WILL SECTIONS, IN ORDER:
1. Revocation clause revoking all prior wills and declaring this the last
   will and testament.
2. Opening declaration with the testator's full legal name as per NRIC,
   NRIC number (12-digit YYMMDD-PB-###G format), residential address, and
   declaration of sound mind.
3. Executor appointment naming one to four executors with NRIC and address.
4. Debts and expenses clause directing payment of just debts, funeral and
   testamentary expenses before distribution.
5. Guardian appointment where any beneficiary is under 18.
6. Distribution clauses: specific bequests using "I give, devise and
   bequeath", then the residuary clause covering everything not otherwise
   disposed of.
7. Testimonium clause with the date of execution.
8. Attestation section and signature blocks for the testator and both
   witnesses with full names, NRIC numbers, and addresses.`,
		},
		{
			ID:        "ag-real-property",
			Category:  types.CategoryAssetGuidance,
			SourceRef: "National Land Code practice",
			Text: `REAL PROPERTY (Land and Buildings):
Describe the property with its full address, land title number (HS(D), GM,
or PN formats), and ownership type. Only sole ownership and tenancy in
common shares can be bequeathed; joint tenancy property passes by
survivorship outside the will. Standard clause: "I give, devise and bequeath
my property known as [ADDRESS] held under Title No. [TITLE NUMBER] to my
[RELATIONSHIP], [NAME] (NRIC No. [NUMBER]), absolutely." Foreign property
may require a separate will in that jurisdiction.`,
		},
		{
			ID:        "ag-financial-assets",
			Category:  types.CategoryAssetGuidance,
			SourceRef: "EPF Act 1991; common banking practice",
			Text: `FINANCIAL ASSETS:
Bank accounts may be described generally ("all my bank accounts with [BANK]")
or specifically by account number. Joint accounts pass by survivorship unless
held as tenants in common. EPF/KWSP balances follow a separate nomination
system under the EPF Act 1991 which a will cannot override; will provisions
are backup only where no nomination exists. Insurance policy nominations
likewise override will provisions. Sample clause: "I give all my bank
accounts, deposits, and cash holdings with [BANK NAME] to my [RELATIONSHIP]
[NAME] (NRIC No. [NUMBER])."`,
		},
		{
			ID:        "ag-business-interests",
			Category:  types.CategoryAssetGuidance,
			SourceRef: "Companies Act 2016 practice",
			Text: `BUSINESS INTERESTS:
Identify the company name, SSM registration number, and ownership
percentage. Check shareholder and buy-sell agreements, which may restrict
transfer. Sample clause: "I give all my shares and interests in [COMPANY
NAME] (Company No. [NUMBER]) comprising [PERCENTAGE]% shareholding, together
with all goodwill, intellectual property, and business assets, to my
[RELATIONSHIP] [NAME] (NRIC No. [NUMBER]), absolutely."`,
		},
		{
			ID:        "ag-personal-property",
			Category:  types.CategoryAssetGuidance,
			SourceRef: "JPJ transfer procedures; Securities Commission guidance",
			Text: `PERSONAL AND DIGITAL PROPERTY:
Vehicles are identified by registration number and make/model; transfer
requires a Grant of Probate and JPJ procedures. Household items may use a
general description ("all furniture, household effects, personal
belongings") or name specific items. Digital assets include cryptocurrency,
domain names, and online accounts; state the location of access credentials.
Sample clauses: "I give my motor vehicle registration number [NUMBER] to my
[RELATIONSHIP] [NAME]." "I give all my digital assets including
cryptocurrency holdings, domain names, and online accounts to [NAME], with
access credentials stored at [LOCATION]."`,
		},
		{
			ID:        "ct-specific-bequest",
			Category:  types.CategoryClauseTemplate,
			SourceRef: "Malaysian will precedents",
			Text: `SPECIFIC BEQUEST CLAUSES:
Format: "I give, devise and bequeath [PROPERTY] to [BENEFICIARY] (NRIC No.
[NUMBER]), absolutely." Multiple beneficiaries take "in equal shares as
tenants in common" or in stated percentage shares. Percentage example: "I
give my property at [ADDRESS] as follows: (a) 60% to [NAME] (NRIC No.
[NUMBER]); (b) 40% to [NAME] (NRIC No. [NUMBER])." Always identify each
beneficiary by full name and NRIC number.`,
		},
		{
			ID:        "ct-residuary-clause",
			Category:  types.CategoryClauseTemplate,
			SourceRef: "Malaysian will precedents; Distribution Act 1958",
			Text: `RESIDUARY ESTATE CLAUSE (mandatory):
"I give all the rest, residue, and remainder of my estate, both real and
personal, of whatsoever nature and wheresoever situated, which I may die
possessed of or entitled to, and not hereby otherwise specifically disposed
of, including any lapsed or void gifts, to my [RELATIONSHIP] [NAME] (NRIC
No. [NUMBER]), absolutely." Percentage and equal-share variants follow the
same structure with lettered sub-clauses. The residuary clause covers assets
acquired after execution, lapsed gifts, and gifts voided by
witness-beneficiary conflicts, preventing partial intestacy under the
Distribution Act 1958.`,
		},
		{
			ID:        "ct-trust-provisions",
			Category:  types.CategoryClauseTemplate,
			SourceRef: "Malaysian will precedents",
			Text: `TRUST PROVISIONS FOR MINORS:
"I give [PROPERTY] to my Trustee UPON TRUST for my [RELATIONSHIP] [NAME]
(NRIC No. [NUMBER]) PROVIDED THAT the Trustee shall hold the property until
[NAME] attains the age of [AGE] years, may apply income and capital in the
meantime for maintenance, education, healthcare and general benefit, and
upon [NAME] attaining [AGE] years the trust property shall vest absolutely."
Common vesting ages are 18 (age of majority), 21, or 25 for larger estates.`,
		},
		{
			ID:        "ct-contingency-clauses",
			Category:  types.CategoryClauseTemplate,
			SourceRef: "Malaysian will precedents",
			Text: `CONTINGENCY CLAUSES:
Simple form: "IF [PRIMARY BENEFICIARY] shall predecease me, THEN I give the
said [PROPERTY] to [ALTERNATE BENEFICIARY]." A survivorship period clause
deems a beneficiary who dies within 30 days of the testator to have
predeceased, preventing assets passing through the beneficiary's estate and
saving double administration costs.`,
		},
		{
			ID:        "vr-testator-validation",
			Category:  types.CategoryValidationRule,
			SourceRef: "Wills Act 1959, ss 3-4; NRIC format",
			Text: `TESTATOR VALIDATION RULES:
Block generation if the testator is under 18 (21 in Sabah). The NRIC must be
12 digits in YYMMDD-PB-###G format: YY year, MM month, DD day, PB place of
birth code, ### sequence number, G gender digit. If the testator is Muslim,
stop and recommend a Wasiat under Syariah law instead; only one third of the
estate may be bequeathed and the remainder follows Faraid. Required fields:
full legal name as per NRIC, NRIC number, complete address, and religion.`,
		},
		{
			ID:        "vr-witness-validation",
			Category:  types.CategoryValidationRule,
			SourceRef: "Wills Act 1959, ss 9-11",
			Text: `WITNESS VALIDATION RULES:
Exactly two witnesses. No witness NRIC may match any beneficiary NRIC or the
spouse of any beneficiary; a conflict makes the gift void under Section 9.
An executor may witness only if not also a beneficiary. Witnesses must be at
least 18 and cannot be the same person (check NRIC uniqueness). Each witness
needs a full legal name, 12-digit NRIC, and complete address.`,
		},
		{
			ID:        "vr-distribution-validation",
			Category:  types.CategoryValidationRule,
			SourceRef: "Distribution Act 1958",
			Text: `DISTRIBUTION VALIDATION RULES:
Percentage distributions for a single asset must total exactly 100%; shares
above 100% are an error, and shares below 100% leave a remainder that falls
to the residuary estate. Every beneficiary needs a name, NRIC, relationship,
and address. A minor beneficiary requires a guardian appointment. A
residuary clause is mandatory: without it, unmentioned assets pass under the
intestacy rules of the Distribution Act 1958. Joint tenancy assets and
assets with statutory nominations (EPF, insurance) cannot be effectively
bequeathed.`,
		},
		{
			ID:        "vr-structural-validation",
			Category:  types.CategoryValidationRule,
			SourceRef: "Malaysian probate practice",
			Text: `STRUCTURAL VALIDATION RULES:
The document must contain, in order: revocation clause, opening declaration,
executor appointment, debts and expenses clause, guardian appointment when
minors exist, specific bequests, residuary clause, testimonium, attestation,
and signature blocks for the testator and two witnesses. One to four
executors must be appointed. Distribution clauses use "I give, devise and
bequeath", absolute gifts use "absolutely", trust provisions use "UPON
TRUST", and conditional gifts use "PROVIDED THAT".`,
		},
	}
}
