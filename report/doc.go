// Package report renders certificates for human and spreadsheet
// consumption: a per-place CSV of local constants and a consolidated
// text summary of the global certificate.
//
// The core hands over plain data records; everything here is
// serialization only and must stay byte-deterministic for a given
// certificate (the summary is golden-tested).
package report
