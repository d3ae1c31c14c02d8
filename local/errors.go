// SPDX-License-Identifier: MIT
// Package local: sentinel error set.

package local

import "errors"

var (
	// ErrTableMiss indicates a K_v or f_v^tame lookup for a (type, prime)
	// pair absent from the tables. Same error class as an unknown
	// reduction type: local to one place, never a silent default.
	ErrTableMiss = errors.New("local: constant table miss")

	// ErrIncompleteTable indicates a table under construction that does
	// not cover every supported reduction type; raised by NewTables, so
	// incomplete tables are rejected before any lookup happens.
	ErrIncompleteTable = errors.New("local: table does not cover all supported types")
)
