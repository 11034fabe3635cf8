package graph

// Node is a fixed-size coordinate value. Nodes are compared by value;
// the graph enforces no uniqueness constraint.
type Node struct {
	X int
	Y int
}

// Edge is an ordered pair of nodes, compared by value.
type Edge struct {
	From Node
	To   Node
}

// Graph holds an ordered sequence of nodes and an ordered sequence of edges.
// Insertion order is preserved and duplicates are permitted.
//
// Mutating methods are protected by a runtime exclusive-access guard:
// at most one mutation may be in progress at any instant. A reentrant
// mutating call panics with ErrExclusiveAccess. See guard.go.
type Graph struct {
	guard writeGuard
	nodes []Node
	edges []Edge
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{}
}

// AddNode appends a node to the node sequence.
func (g *Graph) AddNode(n Node) {
	g.guard.acquire()
	defer g.guard.release()

	g.nodes = append(g.nodes, n)
}

// RemoveNode deletes every node equal to n.
// Removing a node that is absent is a no-op, not an error.
func (g *Graph) RemoveNode(n Node) {
	g.guard.acquire()
	defer g.guard.release()

	kept := g.nodes[:0]
	for _, existing := range g.nodes {
		if existing != n {
			kept = append(kept, existing)
		}
	}
	g.nodes = kept
}

// AddEdge appends an edge from one node to another.
// Neither endpoint needs to be present in the node sequence.
func (g *Graph) AddEdge(from, to Node) {
	g.guard.acquire()
	defer g.guard.release()

	g.edges = append(g.edges, Edge{From: from, To: to})
}

// RemoveEdge deletes every edge equal to (from, to).
// Removing an edge that is absent is a no-op, not an error.
func (g *Graph) RemoveEdge(from, to Node) {
	g.guard.acquire()
	defer g.guard.release()

	target := Edge{From: from, To: to}
	kept := g.edges[:0]
	for _, existing := range g.edges {
		if existing != target {
			kept = append(kept, existing)
		}
	}
	g.edges = kept
}

// Nodes returns a copy of the node sequence in insertion order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Edges returns a copy of the edge sequence in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// ContainsNode reports whether at least one node equal to n is present.
func (g *Graph) ContainsNode(n Node) bool {
	for _, existing := range g.nodes {
		if existing == n {
			return true
		}
	}
	return false
}

// ContainsEdge reports whether at least one edge equal to (from, to) is present.
func (g *Graph) ContainsEdge(from, to Node) bool {
	target := Edge{From: from, To: to}
	for _, existing := range g.edges {
		if existing == target {
			return true
		}
	}
	return false
}
