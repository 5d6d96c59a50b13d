package network

import "testing"

func TestAddNodeIdempotent(t *testing.T) {
	g := New()
	a := g.AddNode(1)
	b := g.AddNode(1)
	if a != b {
		t.Fatalf("AddNode(1) returned distinct nodes on repeated calls")
	}
	if g.NumNodes() != 1 {
		t.Fatalf("expected 1 node, got %d", g.NumNodes())
	}
}

func TestAddEdgeCreatesEndpoints(t *testing.T) {
	g := New()
	e := g.AddEdge(1, 2, 2.5)

	if g.NumNodes() != 2 {
		t.Fatalf("expected 2 nodes, got %d", g.NumNodes())
	}
	if e.Weight() != 2.5 {
		t.Fatalf("expected weight 2.5, got %f", e.Weight())
	}

	n1, _ := g.GetNode(1)
	n2, _ := g.GetNode(2)
	if len(n1.AdjEdges()) != 1 || len(n2.AdjEdges()) != 1 {
		t.Fatalf("expected both endpoints to carry exactly one adjacency entry")
	}
}

func TestSelfLoopAppearsOnce(t *testing.T) {
	g := New()
	g.AddEdge(1, 1, 2.0)

	n1, _ := g.GetNode(1)
	if len(n1.AdjEdges()) != 1 {
		t.Fatalf("expected self-loop to appear once in adjacency, got %d", len(n1.AdjEdges()))
	}
}

func TestParallelEdgesAreDistinct(t *testing.T) {
	g := New()
	e1 := g.AddEdge(1, 2, 1.0)
	e2 := g.AddEdge(1, 2, 3.0)

	if e1.ID() == e2.ID() {
		t.Fatalf("expected distinct edge ids for parallel edges")
	}
	n1, _ := g.GetNode(1)
	if len(n1.AdjEdges()) != 2 {
		t.Fatalf("expected 2 adjacency entries for node 1, got %d", len(n1.AdjEdges()))
	}
}

func TestRemoveEdgeDetachesBothEndpoints(t *testing.T) {
	g := New()
	e := g.AddEdge(1, 2, 1.0)
	g.RemoveEdge(e.ID())

	n1, _ := g.GetNode(1)
	n2, _ := g.GetNode(2)
	if len(n1.AdjEdges()) != 0 || len(n2.AdjEdges()) != 0 {
		t.Fatalf("expected both endpoints to have empty adjacency after edge removal")
	}
	if _, ok := g.GetEdge(e.ID()); ok {
		t.Fatalf("expected edge to be gone from the edge table")
	}
}

func TestRemoveEdgeDisambiguatesParallelEdgesByIdentity(t *testing.T) {
	g := New()
	e1 := g.AddEdge(1, 2, 1.0)
	e2 := g.AddEdge(1, 2, 3.0)
	g.RemoveEdge(e1.ID())

	n1, _ := g.GetNode(1)
	if len(n1.AdjEdges()) != 1 || n1.AdjEdges()[0] != e2 {
		t.Fatalf("expected only e2 to remain in node 1's adjacency")
	}
}

func TestRemoveNodeCascadesIncidentEdges(t *testing.T) {
	g := New()
	g.AddEdge(1, 2, 1.0)
	g.AddEdge(1, 3, 1.0)
	g.RemoveNode(1)

	if g.NumNodes() != 2 {
		t.Fatalf("expected node 1 to be removed, got %d nodes", g.NumNodes())
	}
	if g.NumEdges() != 0 {
		t.Fatalf("expected both incident edges to cascade-remove, got %d", g.NumEdges())
	}
	n2, _ := g.GetNode(2)
	n3, _ := g.GetNode(3)
	if len(n2.AdjEdges()) != 0 || len(n3.AdjEdges()) != 0 {
		t.Fatalf("expected neighbors' adjacency to be cleaned up")
	}
}

func TestRemoveUnknownIsNoOp(t *testing.T) {
	g := New()
	g.AddEdge(1, 2, 1.0)
	g.RemoveNode(999)
	g.RemoveEdge(999)
	if g.NumNodes() != 2 || g.NumEdges() != 1 {
		t.Fatalf("expected removal of unknown ids to be a no-op")
	}
}

func TestGetEdgesOfNodeUnknownIsEmpty(t *testing.T) {
	g := New()
	if edges := g.GetEdgesOfNode(42); len(edges) != 0 {
		t.Fatalf("expected empty adjacency for unknown node, got %d", len(edges))
	}
}

func TestIterationOrderIsByAscendingID(t *testing.T) {
	g := New()
	g.AddNode(5)
	g.AddNode(1)
	g.AddNode(3)

	nodes := g.Nodes()
	for i := 1; i < len(nodes); i++ {
		if nodes[i-1].ID() >= nodes[i].ID() {
			t.Fatalf("expected ascending id order, got %v", nodes)
		}
	}
}

func TestMaxNodeID(t *testing.T) {
	g := New()
	if _, ok := g.MaxNodeID(); ok {
		t.Fatalf("expected no max id on an empty network")
	}
	g.AddNode(4)
	g.AddNode(9)
	g.AddNode(2)
	max, ok := g.MaxNodeID()
	if !ok || max != 9 {
		t.Fatalf("expected max id 9, got %d (ok=%v)", max, ok)
	}
}
