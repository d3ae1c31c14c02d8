// SPDX-License-Identifier: MIT

// Package potential solves the discrete potential/current system on a
// reduction graph: given a zero-sum current injection, it assembles the
// weighted graph Laplacian, solves L·φ = q at double precision and
// derives the per-edge currents J = c·(φ_u − φ_v).
//
// Normalization: L has a one-dimensional kernel (constant vectors) on a
// connected graph, so the system is solved on the reduced subspace with
// the source's exit vertex pinned to φ = 0. WithZeroMean() re-centres
// the pinned solution afterwards; energies and currents are invariant
// under the choice, intermediate potentials are not.
//
// The solve uses a direct Doolittle LU factorization with forward and
// backward triangular substitution. The reduced Laplacian of a connected
// graph with positive conductances is symmetric positive definite, so
// pivots stay bounded away from zero; a vanishing pivot therefore
// signals a kernel dimension above one (disconnection or degenerate
// weights) and is reported as ErrSingularSystem rather than returning a
// degenerate answer.
//
// Kirchhoff's law at every non-source vertex is a required
// post-condition, checked within a relative tolerance before results
// are released.
package potential
