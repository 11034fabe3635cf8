package engine

import (
	"errors"
	"testing"
)

func TestNewEngineIsEmpty(t *testing.T) {
	e := New()

	if e.Revision() != 0 || e.Cursor() != 0 || e.LogLen() != 0 {
		t.Errorf("revision=%d cursor=%d log=%d, want all 0", e.Revision(), e.Cursor(), e.LogLen())
	}
	if e.NodeCount() != 0 || e.EdgeCount() != 0 {
		t.Error("new engine should hold an empty graph")
	}
}

// TestEditSession walks the full session: queue, flush, undo, redo, and
// branch truncation after an undo.
func TestEditSession(t *testing.T) {
	e := New()

	// Queue two nodes; the graph stays unchanged
	e.AddNode(Node{X: 0, Y: 0})
	e.AddNode(Node{X: 1, Y: 1})

	if e.Revision() != 2 || e.Cursor() != 0 {
		t.Fatalf("revision=%d cursor=%d, want 2/0", e.Revision(), e.Cursor())
	}
	if e.NodeCount() != 0 {
		t.Fatalf("graph mutated before Flush: %v", e.Nodes())
	}

	// Flush materializes both
	if err := e.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if e.Cursor() != 2 {
		t.Fatalf("cursor = %d, want 2", e.Cursor())
	}
	nodes := e.Nodes()
	if len(nodes) != 2 || nodes[0] != (Node{X: 0, Y: 0}) || nodes[1] != (Node{X: 1, Y: 1}) {
		t.Fatalf("nodes = %v", nodes)
	}

	// Connect them
	e.AddEdge(Node{X: 0, Y: 0}, Node{X: 1, Y: 1})
	if err := e.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if e.Revision() != 3 || e.Cursor() != 3 {
		t.Fatalf("revision=%d cursor=%d, want 3/3", e.Revision(), e.Cursor())
	}
	if e.EdgeCount() != 1 {
		t.Fatalf("edges = %v", e.Edges())
	}

	// Undo the edge; the log keeps the entry as a redoable tail
	if err := e.Undo(); err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	if e.Revision() != 2 || e.Cursor() != 2 || e.LogLen() != 3 {
		t.Fatalf("revision=%d cursor=%d log=%d, want 2/2/3", e.Revision(), e.Cursor(), e.LogLen())
	}
	if e.EdgeCount() != 0 {
		t.Fatalf("edges after undo = %v", e.Edges())
	}

	// Redo restores it exactly
	if err := e.Redo(); err != nil {
		t.Fatalf("Redo failed: %v", err)
	}
	if e.Revision() != 3 || e.EdgeCount() != 1 {
		t.Fatalf("revision=%d edges=%v after redo", e.Revision(), e.Edges())
	}

	// Undo, then branch: the stale edge entry is discarded
	e.Undo()
	e.AddNode(Node{X: 2, Y: 2})
	if err := e.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	if e.Revision() != 3 || e.Cursor() != 3 || e.LogLen() != 3 {
		t.Fatalf("revision=%d cursor=%d log=%d, want 3/3/3", e.Revision(), e.Cursor(), e.LogLen())
	}
	nodes = e.Nodes()
	if len(nodes) != 3 || nodes[2] != (Node{X: 2, Y: 2}) {
		t.Errorf("nodes = %v", nodes)
	}
	if e.EdgeCount() != 0 {
		t.Errorf("edges = %v, want none", e.Edges())
	}
	if err := e.Redo(); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("Redo after branch: err = %v, want ErrNothingToRedo", err)
	}
}

func TestEngineErrors(t *testing.T) {
	e := New()

	if err := e.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("err = %v, want ErrNothingToUndo", err)
	}
	if err := e.Redo(); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("err = %v, want ErrNothingToRedo", err)
	}

	e.AddNode(Node{X: 0, Y: 0})
	if err := e.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("Undo with queued edit: err = %v, want ErrNothingToUndo", err)
	}
}

func TestEngineInitialContent(t *testing.T) {
	e := New(
		WithNodes(Node{X: 0, Y: 0}, Node{X: 1, Y: 1}),
		WithEdges(Edge{From: Node{X: 0, Y: 0}, To: Node{X: 1, Y: 1}}),
	)

	if e.NodeCount() != 2 || e.EdgeCount() != 1 {
		t.Fatalf("nodes=%d edges=%d, want 2/1", e.NodeCount(), e.EdgeCount())
	}

	// Initial content is not on the timeline
	if e.Revision() != 0 {
		t.Errorf("revision = %d, want 0", e.Revision())
	}
	if err := e.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("err = %v, want ErrNothingToUndo", err)
	}
}

func TestEngineTransaction(t *testing.T) {
	e := New()

	err := e.Transaction("pair", func() error {
		e.AddNode(Node{X: 0, Y: 0})
		e.AddNode(Node{X: 1, Y: 1})
		return nil
	})
	if err != nil {
		t.Fatalf("Transaction failed: %v", err)
	}
	if err := e.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	if e.Revision() != 1 {
		t.Errorf("revision = %d, want 1 (grouped entry)", e.Revision())
	}

	if err := e.Undo(); err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	if e.NodeCount() != 0 {
		t.Errorf("nodes after grouped undo = %v", e.Nodes())
	}
}

func TestEngineSnapshotRoundTrip(t *testing.T) {
	e := New()
	e.AddNode(Node{X: 0, Y: 0})
	e.AddEdge(Node{X: 0, Y: 0}, Node{X: 1, Y: 1})
	if err := e.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	before := e.Snapshot()

	e.Undo()
	e.Redo()

	if !e.Snapshot().Equal(before) {
		t.Error("undo+redo did not restore the exact graph state")
	}
}

func TestEngineJSON(t *testing.T) {
	e := New()
	e.AddNode(Node{X: 2, Y: 3})
	e.AddEdge(Node{X: 2, Y: 3}, Node{X: 4, Y: 5})
	if err := e.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	data, err := e.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}

	loaded, err := NewFromJSON(data)
	if err != nil {
		t.Fatalf("NewFromJSON failed: %v", err)
	}

	if !loaded.Snapshot().Equal(e.Snapshot()) {
		t.Errorf("loaded graph differs: nodes %v edges %v", loaded.Nodes(), loaded.Edges())
	}
	if loaded.Revision() != 0 {
		t.Errorf("loaded revision = %d, want 0", loaded.Revision())
	}

	if _, err := NewFromJSON([]byte(`not json`)); !errors.Is(err, ErrInvalidJSON) {
		t.Errorf("err = %v, want ErrInvalidJSON", err)
	}
}

func TestEngineInfo(t *testing.T) {
	e := New()
	e.AddNode(Node{X: 0, Y: 0})

	if got := e.PendingCount(); got != 1 {
		t.Errorf("pending = %d, want 1", got)
	}

	e.Flush()
	if !e.CanUndo() || e.CanRedo() {
		t.Error("expected undo available, redo unavailable")
	}

	info, ok := e.PeekUndo()
	if !ok || info.Description != "Add node (0,0)" {
		t.Errorf("PeekUndo = %q, %v", info.Description, ok)
	}

	if got := len(e.UndoInfo()); got != 1 {
		t.Errorf("UndoInfo length = %d, want 1", got)
	}
	if got := len(e.RedoInfo()); got != 0 {
		t.Errorf("RedoInfo length = %d, want 0", got)
	}
}
