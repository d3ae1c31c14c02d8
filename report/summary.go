// SPDX-License-Identifier: MIT
// Package report: consolidated text summary of a global certificate.

package report

import (
	"fmt"
	"strings"

	"github.com/tesalab/tesa/core"
)

// Summarize renders the certificate as a deterministic text report:
// global block, per-place table, failure list, sanity line. Failed
// places are always listed — silent omission is forbidden.
func Summarize(cert *core.GlobalCertificate) string {
	var b strings.Builder

	b.WriteString("=== TESA Global Report ===\n")
	fmt.Fprintf(&b, "scenario: %s\n", cert.Scenario)
	fmt.Fprintf(&b, "run: %s\n", cert.RunID)
	fmt.Fprintf(&b, "delta: %s\n", ftoa(cert.Delta))
	fmt.Fprintf(&b, "sum C_Type: %s\n", ftoa(cert.SumCType))
	fmt.Fprintf(&b, "C_infty: %s\n", ftoa(cert.CInfty))
	fmt.Fprintf(&b, "C_Global: %s\n", ftoa(cert.CGlobal))
	fmt.Fprintf(&b, "h_L: %s | m_D: %s | RHS: %s\n", ftoa(cert.HL), ftoa(cert.MD), ftoa(cert.RHS))
	fmt.Fprintf(&b, "verdict: %s\n", cert.Holds)
	if cert.Partial {
		b.WriteString("certificate: PARTIAL\n")
	}

	b.WriteString("-- places --\n")
	if len(cert.Locals) == 0 {
		b.WriteString("(no local results)\n")
	} else {
		b.WriteString("place | type | p | K_v | f_tame | E_fenchel | C_Type | n\n")
		for _, lc := range cert.Locals {
			fmt.Fprintf(&b, "%s | %s | %d | %s | %s | %s | %s | %d\n",
				lc.PlaceID, lc.Type, lc.Prime,
				ftoa(lc.KV), ftoa(lc.TameFactor), ftoa(lc.Energy), ftoa(lc.CType),
				lc.VertexCount)
		}
	}

	b.WriteString("-- failures --\n")
	if len(cert.Failures) == 0 {
		b.WriteString("(none)\n")
	} else {
		for _, f := range cert.Failures {
			fmt.Fprintf(&b, "%s: %s\n", f.PlaceID, f.Reason)
		}
	}

	if cert.Sanity.OK() {
		b.WriteString("sanity: ok\n")
	} else {
		fmt.Fprintf(&b, "sanity: FAILED (delta_in_range=%t sum_non_neg=%t c_infty_finite=%t all_real=%t)\n",
			cert.Sanity.DeltaInRange, cert.Sanity.SumNonNeg,
			cert.Sanity.CInftyFinite, cert.Sanity.AllValuesReal)
	}
	b.WriteString("=== End of Report ===\n")
	return b.String()
}
