// SPDX-License-Identifier: MIT
// Package report: CSV export of per-place local constants.

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/tesalab/tesa/core"
)

// csvHeader is the stable column layout of the local-constant export.
var csvHeader = []string{"place", "type", "p", "K_v", "f_v_tame", "E_fenchel", "C_Type", "n"}

// WriteLocalCSV writes one row per local constant, preserving order.
func WriteLocalCSV(w io.Writer, locals []core.LocalConstant) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("WriteLocalCSV: %w", err)
	}
	for _, lc := range locals {
		row := []string{
			lc.PlaceID,
			string(lc.Type),
			strconv.FormatInt(lc.Prime, 10),
			ftoa(lc.KV),
			ftoa(lc.TameFactor),
			ftoa(lc.Energy),
			ftoa(lc.CType),
			strconv.Itoa(lc.VertexCount),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("WriteLocalCSV: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("WriteLocalCSV: %w", err)
	}
	return nil
}

// ftoa renders a float with the shortest round-trip representation, so
// rational table values stay readable ("0.5", not "0.500000").
func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
