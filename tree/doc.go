// Package tree owns the node arena and aggregate state the rest of this
// engine mutates: the append-only slice of Nodes, the count of active
// (still-joinable) nodes, the total profile T, and the BIONJ blending
// weight Lambda.
//
// Nodes are identified by their position in the arena; indices are
// assigned at creation and never reused or aliased. A node's active
// flag flips exactly once, from true to false, when it becomes a child
// of a new join. The arena itself is owned exclusively by Tree; nodes
// are appended and flipped inactive only by Tree.Join. Other packages
// write node fields directly: tophits updates each node's top-hits
// list and best-hit cache, and nni relinks Left/Right/Parent and
// rewrites internal profiles during refinement.
//
// Unlike core.Graph, Tree carries no mutex: this is a single-threaded,
// cooperative, non-concurrent engine, so there is no shared-memory race
// to guard against.
package tree
