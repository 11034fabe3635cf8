package graph

// Snapshot is a read-only copy of a graph's node and edge sequences at a
// specific point in time. It will not change even if the original graph is
// modified.
type Snapshot struct {
	nodes []Node
	edges []Edge
}

// Snapshot captures the current node and edge sequences.
func (g *Graph) Snapshot() *Snapshot {
	return &Snapshot{
		nodes: g.Nodes(),
		edges: g.Edges(),
	}
}

// Nodes returns a copy of the snapshot's node sequence.
func (s *Snapshot) Nodes() []Node {
	out := make([]Node, len(s.nodes))
	copy(out, s.nodes)
	return out
}

// Edges returns a copy of the snapshot's edge sequence.
func (s *Snapshot) Edges() []Edge {
	out := make([]Edge, len(s.edges))
	copy(out, s.edges)
	return out
}

// NodeCount returns the number of nodes in the snapshot.
func (s *Snapshot) NodeCount() int {
	return len(s.nodes)
}

// EdgeCount returns the number of edges in the snapshot.
func (s *Snapshot) EdgeCount() int {
	return len(s.edges)
}

// IsEmpty returns true if the snapshot holds no nodes and no edges.
func (s *Snapshot) IsEmpty() bool {
	return len(s.nodes) == 0 && len(s.edges) == 0
}

// Equal reports whether two snapshots hold identical node and edge
// sequences, element for element and in the same order.
func (s *Snapshot) Equal(o *Snapshot) bool {
	if len(s.nodes) != len(o.nodes) || len(s.edges) != len(o.edges) {
		return false
	}
	for i, n := range s.nodes {
		if o.nodes[i] != n {
			return false
		}
	}
	for i, e := range s.edges {
		if o.edges[i] != e {
			return false
		}
	}
	return true
}
