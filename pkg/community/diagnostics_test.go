package community

import "testing"

func TestComputeSizeDistribution(t *testing.T) {
	g := buildTwoTriangles()
	RunModularity(g, DefaultMinGain, WithRandomSeed(1))

	dist := ComputeSizeDistribution(g)
	if dist.NumCommunities != 2 {
		t.Fatalf("expected 2 communities, got %d", dist.NumCommunities)
	}
	if dist.MeanSize != 3 {
		t.Fatalf("expected mean size 3, got %f", dist.MeanSize)
	}
	if dist.MaxSize != 3 {
		t.Fatalf("expected max size 3, got %d", dist.MaxSize)
	}
}

func TestComputeSizeDistributionBeforeRun(t *testing.T) {
	g := buildTwoTriangles()
	// No run yet: every node still carries its zero-value community (0),
	// so the whole graph is one "community" at the contract level.
	dist := ComputeSizeDistribution(g)
	if dist.NumCommunities != 1 {
		t.Fatalf("expected 1 pre-initialization pseudo-community, got %d", dist.NumCommunities)
	}
}
