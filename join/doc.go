// Package join implements the join engine: BuildInitialTopology drives
// n0-1 joins, each one selected by a three-tier heuristic (top-hits
// candidate pop, local hill-climb, brute-force fallback) and applied by
// createJoin, which also maintains the BIONJ blending weight.
//
// The candidate queue is a container/heap min-heap keyed by
// (criterion, first_index, second_index) — the same lazy "push freely,
// filter stale entries on pop" policy dijkstra.Dijkstra uses, favored
// here over decrease-key. prim_kruskal.Kruskal's "pop sorted
// candidates, validate, accept-or-skip, stop once the tree is
// complete" control flow is the other half of the shape this package
// follows, generalized from a single static sort to a heap that is
// re-seeded after every join.
package join
