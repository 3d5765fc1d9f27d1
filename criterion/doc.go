// Package criterion implements the distance queries the join engine
// minimizes over: the out-distance r(i), and the neighbor-joining
// criterion nj_criterion(i,j) it is built from.
//
// Both are O(L) per call: r(i) is computed against the tree's cached
// total profile T and its cached SumUpDistance rather than by summing
// over all other active nodes, which is what lets the join engine
// afford to recompute criterion values for heap candidates on every pop
// instead of trusting stale cached values.
package criterion
