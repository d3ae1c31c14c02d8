// Package local computes the per-place quantities of the audit: the
// Fenchel-dual energy of a solved potential/current pair, the K_v and
// f_v^tame lookup tables, and the aggregation into C_Type,v.
//
// The tables form an exhaustive closed set: NewTables rejects a table
// that misses any supported reduction type, so unknown variants surface
// at construction time rather than at lookup time. Lookups are pure —
// two calls with identical (type, p) always return the identical value.
//
// Tame combination rule, per type (the rule must match the type's
// defining formula, so it is type-dependent):
//
//   - I_n chains: additive. C_Type,v = K_v + E + f_tame, with
//     f_tame(I_n) = 0 for multiplicative reduction.
//   - D/E types: the tame factor scales the injected current before the
//     solve, f_v = f_tame·(1+K_v)/c, and then C_Type,v = K_v + E.
//
// Aggregation results are pure in (type, p, i0, n, conductance), so an
// optional cache may memoize them; the cache is an optimization, never a
// correctness requirement.
package local
