package graph

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ErrInvalidJSON indicates data that cannot be decoded into a graph.
var ErrInvalidJSON = errors.New("graph: invalid JSON")

// MarshalJSON encodes the graph as
//
//	{"nodes":[[x,y],...],"edges":[[[x,y],[x,y]],...]}
//
// Only the graph state is serialized; the operation log is not part of the
// wire format.
func (g *Graph) MarshalJSON() ([]byte, error) {
	out := []byte(`{"nodes":[],"edges":[]}`)
	var err error

	for i, n := range g.nodes {
		out, err = sjson.SetBytes(out, "nodes.-1", []int{n.X, n.Y})
		if err != nil {
			return nil, fmt.Errorf("encode node %d: %w", i, err)
		}
	}
	for i, e := range g.edges {
		out, err = sjson.SetBytes(out, "edges.-1", [][]int{
			{e.From.X, e.From.Y},
			{e.To.X, e.To.Y},
		})
		if err != nil {
			return nil, fmt.Errorf("encode edge %d: %w", i, err)
		}
	}
	return out, nil
}

// UnmarshalJSON replaces the graph's node and edge sequences with the
// decoded content. The replacement counts as a single mutation under the
// exclusive-access guard.
func (g *Graph) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return ErrInvalidJSON
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return fmt.Errorf("%w: expected object", ErrInvalidJSON)
	}

	var nodes []Node
	for i, v := range doc.Get("nodes").Array() {
		n, err := decodeNode(v)
		if err != nil {
			return fmt.Errorf("node %d: %w", i, err)
		}
		nodes = append(nodes, n)
	}

	var edges []Edge
	for i, v := range doc.Get("edges").Array() {
		pair := v.Array()
		if len(pair) != 2 {
			return fmt.Errorf("edge %d: %w: expected two endpoints", i, ErrInvalidJSON)
		}
		from, err := decodeNode(pair[0])
		if err != nil {
			return fmt.Errorf("edge %d: %w", i, err)
		}
		to, err := decodeNode(pair[1])
		if err != nil {
			return fmt.Errorf("edge %d: %w", i, err)
		}
		edges = append(edges, Edge{From: from, To: to})
	}

	g.guard.acquire()
	defer g.guard.release()

	g.nodes = nodes
	g.edges = edges
	return nil
}

func decodeNode(v gjson.Result) (Node, error) {
	coords := v.Array()
	if len(coords) != 2 {
		return Node{}, fmt.Errorf("%w: expected [x,y] pair", ErrInvalidJSON)
	}
	return Node{
		X: int(coords[0].Int()),
		Y: int(coords[1].Int()),
	}, nil
}
