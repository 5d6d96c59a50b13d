package community

import "github.com/gilchrisn/community-core/pkg/network"

// ModularityObjective implements Newman's modularity as the local-move
// quality function. m and k[v] are constant across a run; sigmaTot[c] is
// the only table mutated incrementally as nodes migrate.
type ModularityObjective struct {
	m        float64
	k        map[uint64]float64
	sigmaTot map[int64]float64
}

// NewModularityObjective returns an empty Modularity objective; call
// precomputeAggregates (via RunModularity) before using it.
func NewModularityObjective() *ModularityObjective {
	return &ModularityObjective{sigmaTot: make(map[int64]float64)}
}

func (m *ModularityObjective) name() string { return "modularity" }

func (m *ModularityObjective) precomputeAggregates(nodes []*network.Node, weightedDegree map[uint64]float64) {
	m.k = weightedDegree
	m.sigmaTot = make(map[int64]float64, len(nodes))

	var total float64
	for _, k := range weightedDegree {
		total += k
	}
	m.m = total / 2

	for _, n := range nodes {
		m.sigmaTot[n.Community()] += m.k[n.ID()]
	}
}

func (m *ModularityObjective) noOp() bool {
	return m.m == 0
}

// gain implements §4.3:
//
//	ΔQ = (k_in_D - k_in_C)/m + k(v)·(Σtot[C] - Σtot[D] - k(v)) / (2m²)
func (m *ModularityObjective) gain(kV, kInCurrent, kInCandidate float64, currentComm, candidateComm int64) float64 {
	term1 := (kInCandidate - kInCurrent) / m.m
	term2 := kV * (m.sigmaTot[currentComm] - m.sigmaTot[candidateComm] - kV) / (2 * m.m * m.m)
	return term1 + term2
}

func (m *ModularityObjective) accept(currentComm, candidateComm int64, kV float64) {
	m.sigmaTot[currentComm] -= kV
	m.sigmaTot[candidateComm] += kV
}

// value returns only the degree term of modularity, -Σ_c (Σtot[c]/2m)².
// sigmaTot does not carry internal weight, so the internal-edge term is
// not included; ComputeModularity returns the full Q of a live partition.
func (m *ModularityObjective) value() float64 {
	if m.m == 0 {
		return 0
	}
	var q float64
	m2 := 2 * m.m
	for _, tot := range m.sigmaTot {
		q -= (tot / m2) * (tot / m2)
	}
	return q
}
