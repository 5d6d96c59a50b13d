package community

import (
	"sync"
	"time"

	"github.com/gilchrisn/community-core/pkg/network"
)

// proposal is a single worker's best candidate move for its partition,
// found during one outer iteration of the parallel CPM search.
type proposal struct {
	workerIndex int
	node        *network.Node
	fromComm    int64
	toComm      int64
	kV          float64
	gain        float64
	found       bool
}

// partitionByDegree splits nodes into up to numWorkers contiguous ranges so
// that each range accumulates roughly total-degree/numWorkers of work, per
// spec §4.5. Ranges beyond the point the sweep exhausts nodes are empty.
func partitionByDegree(nodes []*network.Node, k map[uint64]float64, numWorkers int) [][]*network.Node {
	if numWorkers < 1 {
		numWorkers = 1
	}
	parts := make([][]*network.Node, numWorkers)

	var total float64
	for _, n := range nodes {
		total += k[n.ID()]
	}
	target := total / float64(numWorkers)
	if target == 0 {
		// Degenerate (edgeless) graph: deal nodes round-robin by count
		// instead, so these parts are not contiguous ranges.
		for i, n := range nodes {
			w := i % numWorkers
			parts[w] = append(parts[w], n)
		}
		return parts
	}

	worker := 0
	var acc float64
	for _, n := range nodes {
		if worker < numWorkers-1 && acc >= target {
			worker++
			acc = 0
		}
		parts[worker] = append(parts[worker], n)
		acc += k[n.ID()]
	}
	return parts
}

// RunCPMParallel performs bounded-parallel CPM optimization per spec §4.5:
// within one outer iteration, numWorkers workers each scan their partition
// read-only and report their single best move; the driver commits at most
// one proposal — the globally largest positive gain, ties broken by lowest
// worker index — before the next iteration's read-only snapshots are
// rebuilt. This parallelizes move *evaluation*, not move *commitment*.
func RunCPMParallel(net *network.Network, minGain, gamma float64, numWorkers int, opts ...Option) *RunStats {
	cfg := newRunConfig(opts)
	start := time.Now()
	stats := &RunStats{Objective: "cpm-parallel"}

	nodes := net.Nodes()
	if len(nodes) == 0 {
		stats.RuntimeMS = time.Since(start).Milliseconds()
		return stats
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	InitializeCommunities(nodes)

	k := weightedDegrees(nodes)
	obj := NewCPMObjective(gamma)
	obj.precomputeAggregates(nodes, k)

	for {
		// Read-only snapshot of community sizes for this iteration;
		// community labels are read live from the nodes. No worker mutates
		// either during the parallel region.
		sizeSnapshot := make(map[int64]int64, len(obj.size))
		for c, n := range obj.size {
			sizeSnapshot[c] = n
		}

		parts := partitionByDegree(nodes, k, numWorkers)
		proposals := make([]proposal, numWorkers)
		var wg sync.WaitGroup

		for w := 0; w < numWorkers; w++ {
			wg.Add(1)
			go func(workerIndex int) {
				defer wg.Done()
				proposals[workerIndex] = scanPartition(parts[workerIndex], k, sizeSnapshot, gamma, workerIndex)
			}(w)
		}
		wg.Wait()

		best, ok := selectBestProposal(proposals, minGain)
		if !ok {
			break
		}

		best.node.SetCommunity(best.toComm)
		obj.accept(best.fromComm, best.toComm, best.kV)

		stats.Passes++
		stats.TotalMoves++

		cfg.logger.Debug().
			Int("iteration", stats.Passes).
			Uint64("node", best.node.ID()).
			Int64("from", best.fromComm).
			Int64("to", best.toComm).
			Float64("gain", best.gain).
			Msg("parallel CPM move committed")
	}

	stats.RuntimeMS = time.Since(start).Milliseconds()
	cfg.logger.Info().
		Str("objective", stats.Objective).
		Int("iterations", stats.Passes).
		Int("total_moves", stats.TotalMoves).
		Int64("runtime_ms", stats.RuntimeMS).
		Msg("parallel optimization run complete")
	return stats
}

// scanPartition finds the single best move among part, using only the
// read-only sizeSnapshot for community sizes — it never touches obj.size.
func scanPartition(part []*network.Node, k map[uint64]float64, sizeSnapshot map[int64]int64, gamma float64, workerIndex int) proposal {
	var best proposal
	best.workerIndex = workerIndex

	for _, v := range part {
		current := v.Community()
		wTo := neighborCommunityWeights(v)
		kInCurrent := wTo[current]
		kV := k[v.ID()]

		for candidate, kInCandidate := range wTo {
			if candidate == current {
				continue
			}
			sizeCurrent := sizeSnapshot[current]
			sizeCandidate := sizeSnapshot[candidate]
			delta := (kInCandidate - kInCurrent) + gamma*float64(sizeCurrent-sizeCandidate-1)

			if !best.found || delta > best.gain {
				best = proposal{
					workerIndex: workerIndex,
					node:        v,
					fromComm:    current,
					toComm:      candidate,
					kV:          kV,
					gain:        delta,
					found:       true,
				}
			}
		}
	}
	return best
}

// selectBestProposal picks the globally best proposal among workers:
// largest gain above minGain, ties broken by lowest worker index.
func selectBestProposal(proposals []proposal, minGain float64) (proposal, bool) {
	var best proposal
	found := false

	for _, p := range proposals {
		if !p.found || p.gain <= minGain {
			continue
		}
		if !found || p.gain > best.gain ||
			(p.gain == best.gain && p.workerIndex < best.workerIndex) {
			best = p
			found = true
		}
	}
	return best, found
}
