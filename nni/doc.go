// Package nni implements Nearest-Neighbor Interchange refinement: a
// fixed number of passes over every internal, non-root node, each pass
// testing the three ways to partition the four subtrees around an
// internal edge and relinking child/parent pointers to the cheapest
// one.
//
// This mirrors tsp/two_opt.go and tsp/three_opt.go's shape: score a
// small, fixed set of local rearrangements, adopt the cheapest one if
// it strictly improves on the current one, and repeat over the whole
// structure for a bounded number of rounds rather than hill-climbing
// to convergence.
package nni
