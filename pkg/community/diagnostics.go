package community

import (
	"gonum.org/v1/gonum/stat"

	"github.com/gilchrisn/community-core/pkg/network"
)

// SizeDistribution summarizes the current partition's community sizes.
// This is a run diagnostic, not a visualization or a ground-truth
// clustering-quality metric (NMI/ARI) — both of those remain non-goals.
type SizeDistribution struct {
	NumCommunities int
	MeanSize       float64
	StdDevSize     float64
	MaxSize        int
}

// ComputeSizeDistribution groups net's nodes by community and summarizes
// the resulting size distribution using gonum/stat, the same package the
// teacher's coordinate-layout code imports (there for MDS input; here for
// plain run statistics).
func ComputeSizeDistribution(net *network.Network) SizeDistribution {
	sizes := make(map[int64]int)
	for _, n := range net.Nodes() {
		sizes[n.Community()]++
	}

	if len(sizes) == 0 {
		return SizeDistribution{}
	}

	values := make([]float64, 0, len(sizes))
	maxSize := 0
	for _, s := range sizes {
		values = append(values, float64(s))
		if s > maxSize {
			maxSize = s
		}
	}

	mean, std := stat.MeanStdDev(values, nil)
	return SizeDistribution{
		NumCommunities: len(sizes),
		MeanSize:       mean,
		StdDevSize:     std,
		MaxSize:        maxSize,
	}
}
