// Package community implements local-move community optimization
// (Modularity and CPM variants, sequential and bounded-parallel) and the
// mergeCommunities contraction operator, over a *network.Network.
package community

import "github.com/gilchrisn/community-core/pkg/network"

// Objective is the strategy interface shared by the Modularity and CPM
// variants. precomputeAggregates is called at the start of every run to
// decide noOp, and again once the labels are reset to singletons, since
// aggregates depend on the current partition; gain is called once per
// candidate community per node visit, and accept once per committed move.
type Objective interface {
	// name identifies the objective for logging.
	name() string

	// precomputeAggregates (re)computes whatever per-run constants and
	// per-community totals the objective needs, given the graph's nodes
	// and each node's weighted degree.
	precomputeAggregates(nodes []*network.Node, weightedDegree map[uint64]float64)

	// noOp reports whether a run on this graph would be a no-op (e.g.
	// modularity when total edge weight is zero).
	noOp() bool

	// gain computes the objective delta (ΔQ) for moving a node currently
	// contributing kInCurrent weight to its own community to a candidate
	// community it contributes kInCandidate weight to. kV is the node's
	// weighted degree.
	gain(kV, kInCurrent, kInCandidate float64, currentComm, candidateComm int64) float64

	// accept commits the incremental aggregate update for a move of a
	// node with weighted degree kV from currentComm to candidateComm.
	accept(currentComm, candidateComm int64, kV float64)

	// value returns a diagnostic summary of the objective's aggregates; it
	// is not the full objective value (ComputeModularity and ComputeCPM
	// compute that) and is not used by the move loop.
	value() float64
}

// neighborCommunityWeights returns, for every edge incident to v, the
// weight contributed to the community of the edge's opposite endpoint.
// A self-loop contributes to v's own community, since Edge.Opposite(v)
// returns v for a self-loop edge. Cost is O(deg(v)).
func neighborCommunityWeights(v *network.Node) map[int64]float64 {
	weights := make(map[int64]float64, v.Degree())
	for _, e := range v.AdjEdges() {
		opp := e.Opposite(v)
		weights[opp.Community()] += e.Weight()
	}
	return weights
}

// weightedDegrees computes k[v] for every node: the sum of incident edge
// weights, with a self-loop counted once (it appears once in adjacency).
func weightedDegrees(nodes []*network.Node) map[uint64]float64 {
	k := make(map[uint64]float64, len(nodes))
	for _, n := range nodes {
		var sum float64
		for _, e := range n.AdjEdges() {
			sum += e.Weight()
		}
		k[n.ID()] = sum
	}
	return k
}

// totalEdgeWeight sums the weight of every live edge in the network.
func totalEdgeWeight(edges []*network.Edge) float64 {
	var m float64
	for _, e := range edges {
		m += e.Weight()
	}
	return m
}
