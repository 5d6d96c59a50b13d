package community

import "github.com/gilchrisn/community-core/pkg/network"

// MergeCommunities replaces every multi-node community in net with a
// single super-node whose adjacency is the weighted sum of edges crossing
// out of the community, per spec §4.6. Communities of size 1 are left
// untouched, keeping singletons stable across repeated contraction rounds.
// net is mutated in place.
func MergeCommunities(net *network.Network) {
	groups := make(map[int64][]*network.Node)
	for _, n := range net.Nodes() {
		groups[n.Community()] = append(groups[n.Community()], n)
	}

	maxID, ok := net.MaxNodeID()
	if !ok {
		return
	}
	nextID := maxID + 1

	for comm, members := range groups {
		if len(members) < 2 {
			continue
		}

		memberSet := make(map[uint64]bool, len(members))
		for _, u := range members {
			memberSet[u.ID()] = true
		}

		// Union of each member's own provenance (their `members` set if
		// already a super-node from an earlier contraction, else just
		// their own id), preserving provenance across repeated rounds.
		provenance := make([]uint64, 0, len(members))
		for _, u := range members {
			if existing := u.Members(); len(existing) > 0 {
				provenance = append(provenance, existing...)
			} else {
				provenance = append(provenance, u.ID())
			}
		}

		// Accumulate external weight per neighbor node: edges entirely
		// inside the community become internal to the super-node and are
		// intentionally dropped.
		external := make(map[*network.Node]float64)
		for _, u := range members {
			for _, e := range u.AdjEdges() {
				opp := e.Opposite(u)
				if memberSet[opp.ID()] {
					continue
				}
				external[opp] += e.Weight()
			}
		}

		superNode := net.AddNode(nextID)
		nextID++
		superNode.SetCommunity(comm)
		superNode.SetMembers(provenance)

		for neighbor, weight := range external {
			net.AddEdge(superNode.ID(), neighbor.ID(), weight)
		}

		for _, u := range members {
			net.RemoveNode(u.ID())
		}
	}
}
