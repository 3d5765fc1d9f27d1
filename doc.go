// Package njtree builds an approximately minimum-evolution phylogenetic
// tree from a set of aligned nucleotide sequences and serializes it as
// Newick.
//
// Build wires together the engine's stages:
//
//	profile/    — leaf/internal probability profiles, the total profile T
//	tree/       — the node arena and aggregate tree state
//	tophits/    — the top-hits heuristic and FastNJ best-hit cache
//	join/       — the join engine that reduces n0 leaves to one root
//	nni/        — post-hoc Nearest-Neighbor Interchange refinement
//	branchlen/  — final per-edge length assignment
//	newick/     — Newick string emission
//
// Input parsing, deduplication of identical sequences, and
// command-line handling are the caller's responsibility: Build takes
// already-deduplicated, already-aligned sequences and their names.
//
//	go get github.com/minevo/njtree
package njtree
