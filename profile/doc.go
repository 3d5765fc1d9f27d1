// Package profile implements the per-site probability vectors ("profiles")
// that this engine substitutes for an explicit O(N^2) distance matrix.
//
// A Profile is an L x 4 matrix of non-negative reals, one row per
// alignment site and one column per nucleotide (A, C, G, T in that
// column order). Leaf profiles are one-hot per site (the all-zero row
// encodes a gap); internal-node profiles are weighted averages of their
// two children's profiles (Average).
//
// Distances derived from profiles:
//
//   - Distance(p, q)       Δ(p,q): expected per-site mismatch probability.
//   - Uncorrected(...)     du: Δ adjusted by BIONJ up-distances for
//     joined (internal) nodes.
//   - JCCorrect(du)        Jukes-Cantor 1969 evolutionary distance
//     estimate from du, clamped to MaxDistance.
//
// Complexity: every exported function here is O(L) in the alignment
// length; there is no O(N) or O(N^2) term anywhere in this package.
package profile
