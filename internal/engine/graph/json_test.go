package graph

import (
	"errors"
	"testing"
)

func TestMarshalEmptyGraph(t *testing.T) {
	g := New()
	data, err := g.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	if string(data) != `{"nodes":[],"edges":[]}` {
		t.Errorf("got %s", data)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	g := New()
	a := Node{X: 0, Y: 0}
	b := Node{X: 1, Y: 1}
	g.AddNode(a)
	g.AddNode(b)
	g.AddNode(a) // duplicate survives the round trip
	g.AddEdge(a, b)

	data, err := g.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}

	decoded := New()
	if err := decoded.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON failed: %v", err)
	}

	if !decoded.Snapshot().Equal(g.Snapshot()) {
		t.Errorf("round trip mismatch: got nodes %v edges %v", decoded.Nodes(), decoded.Edges())
	}
}

func TestUnmarshalReplacesContent(t *testing.T) {
	g := New()
	g.AddNode(Node{X: 9, Y: 9})

	err := g.UnmarshalJSON([]byte(`{"nodes":[[2,3]],"edges":[]}`))
	if err != nil {
		t.Fatalf("UnmarshalJSON failed: %v", err)
	}

	got := g.Nodes()
	if len(got) != 1 || got[0] != (Node{X: 2, Y: 3}) {
		t.Errorf("got %v, want [{2 3}]", got)
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{nodes`},
		{"not an object", `[1,2]`},
		{"node arity", `{"nodes":[[1]],"edges":[]}`},
		{"edge arity", `{"nodes":[],"edges":[[[0,0]]]}`},
		{"edge endpoint arity", `{"nodes":[],"edges":[[[0,0],[1]]]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			err := g.UnmarshalJSON([]byte(tt.data))
			if !errors.Is(err, ErrInvalidJSON) {
				t.Errorf("err = %v, want ErrInvalidJSON", err)
			}
		})
	}
}
