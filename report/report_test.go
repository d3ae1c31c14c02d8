// SPDX-License-Identifier: MIT
// Package report: CSV export tests.

package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tesalab/tesa/core"
)

func sampleLocals() []core.LocalConstant {
	return []core.LocalConstant{
		{PlaceID: "v1", Type: core.TypeIn, Prime: 3, KV: 0.2, TameFactor: 0, Energy: 0.1, CType: 0.3, VertexCount: 2},
		{PlaceID: "v2", Type: core.TypeIn, Prime: 2, KV: 0.5, TameFactor: 0, Energy: 0, CType: 0.5, VertexCount: 3},
	}
}

func TestWriteLocalCSV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteLocalCSV(&buf, sampleLocals()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "place,type,p,K_v,f_v_tame,E_fenchel,C_Type,n", lines[0])
	require.Equal(t, "v1,In,3,0.2,0,0.1,0.3,2", lines[1])
	require.Equal(t, "v2,In,2,0.5,0,0,0.5,3", lines[2])
}

func TestWriteLocalCSVEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteLocalCSV(&buf, nil))
	require.Equal(t, "place,type,p,K_v,f_v_tame,E_fenchel,C_Type,n\n", buf.String())
}

func TestFtoaShortestForm(t *testing.T) {
	t.Parallel()

	require.Equal(t, "0.5", ftoa(0.5))
	require.Equal(t, "9.85", ftoa(9.85))
	require.Equal(t, "0", ftoa(0))
}
