// Package tophits implements the top-hits heuristic and FastNJ best-hit
// cache: per node, a bounded list of the m most promising join
// partners, and a single-slot cache of the best partner
// seen so far, so the join engine can approximate the globally best
// join by inspecting O(m) candidates instead of scanning all active
// nodes.
//
// Three operations drive a node's list over its lifetime:
//
//   - Init seeds every node's initial top-hits from one designated
//     leaf, amortizing the otherwise-quadratic seeding cost by letting
//     "close" nodes inherit and re-rank a subset of the seed's list
//     instead of scanning all n nodes themselves.
//   - NewNode gives a freshly joined internal node a list built from
//     the union of its two children's surviving entries.
//   - refresh (triggered lazily, from BestHit or Refresh) rebuilds a
//     stale list from the two-hop closure of its current entries.
//
// Stale entries (pointing at nodes that have since gone inactive) are
// tolerated in TopHits between refreshes and purged lazily wherever
// they are read; this package never eagerly scans the whole arena to
// clean them out.
package tophits
