// Package config loads and validates audit scenarios: a scenario name
// plus an ordered list of place records with reduction-type metadata.
//
// Formats: YAML (.yaml/.yml) and TOML (.toml), chosen by file extension.
// Environment variables with the TESA_ prefix override selected fields
// after loading (TESA_WORKERS, TESA_DELTA_LOWER_BOUND, TESA_C_EPSILON).
//
// Validation is structural only (config-error class, fatal for the whole
// run): missing name, empty place list, malformed place fields. An
// unknown reduction-type tag is deliberately NOT a config error — it is
// a per-place graph-construction error, caught and isolated at the place
// boundary so the rest of the batch still completes.
package config
