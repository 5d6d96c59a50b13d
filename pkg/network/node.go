package network

// Node is a vertex in a Network. It carries a stable id, the community
// label assigned by the last optimization run, an adjacency list of
// incident edges, and — only when the node stands in for a contracted
// community — the set of original node ids it represents.
type Node struct {
	id        uint64
	community int64
	adj       []*Edge
	members   []uint64
}

// ID returns the node's stable identifier.
func (n *Node) ID() uint64 {
	return n.id
}

// Community returns the node's current community label. Before the first
// optimizer run this value is undefined at the contract level (the
// original implementation defaults it to 1; here the zero value is 0, and
// every optimizer run that gets past its no-op check overwrites it via
// initialization); callers should not rely on it until such a run has
// executed at least once.
func (n *Node) Community() int64 {
	return n.community
}

// SetCommunity assigns the node's community label.
func (n *Node) SetCommunity(c int64) {
	n.community = c
}

// Degree returns the number of incident adjacency entries (not
// weight-summed; see the community package for weighted degree).
func (n *Node) Degree() int {
	return len(n.adj)
}

// AdjEdges returns the node's incident edges in insertion order. The
// returned slice is owned by the node; callers must not mutate it.
func (n *Node) AdjEdges() []*Edge {
	return n.adj
}

// Members returns the original node ids this node represents, or nil if
// the node has never been produced by a contraction.
func (n *Node) Members() []uint64 {
	return n.members
}

// SetMembers overwrites the node's member-id set.
func (n *Node) SetMembers(ids []uint64) {
	n.members = ids
}

// Equals reports whether n and other are the same node, by id.
func (n *Node) Equals(other *Node) bool {
	if other == nil {
		return false
	}
	return n.id == other.id
}

func (n *Node) addEdge(e *Edge) {
	n.adj = append(n.adj, e)
}

// eraseEdge removes e from the adjacency list by identity, not id, so that
// parallel edges sharing endpoints are disambiguated correctly.
func (n *Node) eraseEdge(e *Edge) {
	for i, cur := range n.adj {
		if cur == e {
			n.adj = append(n.adj[:i], n.adj[i+1:]...)
			return
		}
	}
}
