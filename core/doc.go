// Package core defines the central data model of the TESA audit engine:
// places, reduction graphs, potential/current assignments, local constants
// and the global certificate.
//
// Graphs use an index-arena representation (vertex and edge slices, edges
// referencing vertex indices) instead of a pointer-linked structure, so a
// built graph can be shared read-only across parallel per-place workers
// and hashed trivially for caching.
//
// Lifecycle: Place values are read-only inputs for a whole run. Graphs,
// potentials and currents are transient, created and discarded within one
// place's computation. LocalConstant and GlobalCertificate are the only
// values that outlive a single place and are handed to reporting.
//
// Errors:
//
//	ErrNoVertices          - graph has no vertices.
//	ErrBadEdgeEndpoint     - edge references a vertex index out of range.
//	ErrNonPositiveConductance - edge conductance is not strictly positive.
//	ErrNotFinite           - a NaN or ±Inf value where a finite one is required.
package core
