// SPDX-License-Identifier: MIT
// Package config: sentinel error set (config-error class, fatal).

package config

import "errors"

var (
	// ErrMissingName indicates a scenario without a name.
	ErrMissingName = errors.New("config: scenario name missing")

	// ErrNoPlaces indicates a scenario with an empty place list.
	ErrNoPlaces = errors.New("config: scenario has no places")

	// ErrBadPlace indicates a malformed place record (empty id, negative
	// prime or index, non-positive conductance).
	ErrBadPlace = errors.New("config: malformed place record")

	// ErrBadDeltaBound indicates delta_lower_bound outside [0,1).
	ErrBadDeltaBound = errors.New("config: delta lower bound out of range")

	// ErrUnsupportedFormat indicates a scenario file extension that is
	// neither YAML nor TOML.
	ErrUnsupportedFormat = errors.New("config: unsupported scenario format")
)
