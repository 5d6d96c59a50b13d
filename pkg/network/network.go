// Package network implements the mutable graph store: an arena-owned table
// of Nodes and Edges with stable ids and amortized adjacency maintenance.
// Nodes and edges hold non-owning references to each other; only the
// Network owns them, so there is no ownership cycle. Iteration over nodes
// and edges is always in ascending id order, which keeps randomized
// optimizer passes reproducible modulo their own shuffle.
package network

import "sort"

// Network owns every Node and Edge reachable from it. All mutators are
// total: AddNode/AddEdge never fail, and RemoveNode/RemoveEdge are no-ops
// on an unknown id.
type Network struct {
	nodes      map[uint64]*Node
	edges      map[uint64]*Edge
	nextEdgeID uint64
}

// New returns an empty Network.
func New() *Network {
	return &Network{
		nodes: make(map[uint64]*Node),
		edges: make(map[uint64]*Edge),
	}
}

// NumNodes returns the number of live nodes.
func (g *Network) NumNodes() int {
	return len(g.nodes)
}

// NumEdges returns the number of live edges.
func (g *Network) NumEdges() int {
	return len(g.edges)
}

// AddNode returns the node with the given id, creating it with an empty
// adjacency list if it doesn't already exist. Idempotent.
func (g *Network) AddNode(id uint64) *Node {
	if n, ok := g.nodes[id]; ok {
		return n
	}
	n := &Node{id: id}
	g.nodes[id] = n
	return n
}

// AddEdge ensures both endpoints exist, allocates a fresh edge id, and
// appends the new edge to the adjacency list of each distinct endpoint.
// Self-loops and parallel edges are both permitted.
func (g *Network) AddEdge(srcID, dstID uint64, weight float64) *Edge {
	src := g.AddNode(srcID)
	dst := g.AddNode(dstID)

	id := g.nextEdgeID
	g.nextEdgeID++

	e := &Edge{id: id, n1: src, n2: dst, weight: weight}
	g.edges[id] = e

	src.addEdge(e)
	if src != dst {
		dst.addEdge(e)
	}
	return e
}

// RemoveEdge deletes the edge with the given id, detaching it from both
// endpoints' adjacency lists. No-op if the id is unknown.
func (g *Network) RemoveEdge(id uint64) {
	e, ok := g.edges[id]
	if !ok {
		return
	}
	e.n1.eraseEdge(e)
	if e.n2 != e.n1 {
		e.n2.eraseEdge(e)
	}
	delete(g.edges, id)
}

// RemoveNode deletes the node with the given id, cascading removal of
// every edge incident to it. No-op if the id is unknown.
func (g *Network) RemoveNode(id uint64) {
	n, ok := g.nodes[id]
	if !ok {
		return
	}
	// Snapshot incident edges first: RemoveEdge mutates n.adj as it runs.
	incident := make([]*Edge, len(n.adj))
	copy(incident, n.adj)
	for _, e := range incident {
		g.RemoveEdge(e.id)
	}
	delete(g.nodes, id)
}

// GetNode looks up a node by id.
func (g *Network) GetNode(id uint64) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// GetEdge looks up an edge by id.
func (g *Network) GetEdge(id uint64) (*Edge, bool) {
	e, ok := g.edges[id]
	return e, ok
}

// GetEdgesOfNode returns the adjacency list of the node with the given id,
// or an empty slice if the node doesn't exist.
func (g *Network) GetEdgesOfNode(id uint64) []*Edge {
	n, ok := g.nodes[id]
	if !ok {
		return nil
	}
	return n.adj
}

// Nodes returns every live node, sorted by ascending id.
func (g *Network) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// Edges returns every live edge, sorted by ascending id.
func (g *Network) Edges() []*Edge {
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// MaxNodeID returns the largest id currently in the node table, and false
// if the Network has no nodes. Used by the contractor to allocate fresh
// super-node ids.
func (g *Network) MaxNodeID() (uint64, bool) {
	if len(g.nodes) == 0 {
		return 0, false
	}
	var max uint64
	first := true
	for id := range g.nodes {
		if first || id > max {
			max = id
			first = false
		}
	}
	return max, true
}
