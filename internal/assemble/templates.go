// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assemble

import (
	"fmt"
	"strings"

	"github.com/meshintel/will-engine/pkg/types"
)

// Fixed-form sections are rendered from these templates rather than
// generated, so statutory wording never drifts.

func renderRevocation(w *types.WillData) string {
	return fmt.Sprintf(`LAST WILL AND TESTAMENT

I, %s (NRIC No. %s), DO HEREBY REVOKE all former testamentary
dispositions, wills or codicils herebefore made by me AND DECLARE this to
be my LAST WILL AND TESTAMENT.`,
		strings.ToUpper(w.Testator.FullName), types.FormatNRIC(w.Testator.NRIC))
}

func renderDebtsExpenses(_ *types.WillData) string {
	return `PAYMENT OF DEBTS AND EXPENSES

I DIRECT my Executor to pay my just debts, funeral and testamentary
expenses, and estate duty (if any) out of my estate as soon as
practicable after my death and before any distribution hereunder.`
}

func renderSpecialInstructions(w *types.WillData) string {
	return "SPECIAL INSTRUCTIONS\n\n" + strings.TrimSpace(w.SpecialInstructions)
}

func renderAttestation(w *types.WillData) string {
	return fmt.Sprintf(`TESTIMONIUM AND ATTESTATION

IN WITNESS WHEREOF I have hereunto set my hand to this my LAST WILL AND
TESTAMENT.

SIGNED by the above-named %s as and for the Testator's LAST WILL AND
TESTAMENT in the presence of us, present at the same time, who at the
Testator's request and in the Testator's presence and in the presence of
each other have hereunto subscribed our names as witnesses.`,
		strings.ToUpper(w.Testator.FullName))
}

func renderExecution(w *types.WillData) string {
	var b strings.Builder
	b.WriteString("EXECUTION\n\n")
	b.WriteString(signatureBlock("Signature of Testator", w.Testator))
	for i, wit := range w.Witnesses {
		fmt.Fprintf(&b, "\n\nWITNESS %d:\n\n", i+1)
		b.WriteString(signatureBlock("Signature of Witness", wit))
	}
	return b.String()
}

func signatureBlock(label string, p types.Party) string {
	return fmt.Sprintf(`________________________________________
%s
%s
NRIC No. %s
Address: %s`, label, strings.ToUpper(p.FullName), types.FormatNRIC(p.NRIC), p.Address)
}
