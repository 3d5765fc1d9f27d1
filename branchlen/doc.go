// Package branchlen assigns a final edge length to every parent/child
// pair in a converged tree. The formula depends on whether each
// endpoint is a leaf or an internal node, mirroring the four-case
// dispatch a Jukes-Cantor-corrected distance model requires once exact
// pairwise distances are no longer directly observable from profiles
// alone.
package branchlen
