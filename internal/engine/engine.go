package engine

import (
	"sync"

	"github.com/dshills/graphedit/internal/engine/graph"
	"github.com/dshills/graphedit/internal/engine/history"
)

// Re-export commonly used types for convenience.
type (
	// Node is a coordinate value in the graph.
	Node = graph.Node

	// Edge is an ordered pair of nodes.
	Edge = graph.Edge

	// Snapshot is a read-only copy of graph state.
	Snapshot = graph.Snapshot

	// Command is a reversible graph edit.
	Command = history.Command

	// OperationInfo is read-only info about a log entry.
	OperationInfo = history.OperationInfo
)

// Engine is the main facade for the graph editor core.
// It combines the mutable graph and its operation log into a unified,
// thread-safe API: edits are proposed as commands, queued on the log,
// materialized with Flush, and walked backward and forward with Undo/Redo.
//
// All operations are thread-safe and can be called from multiple goroutines.
type Engine struct {
	mu sync.RWMutex

	// Core components
	graph   *graph.Graph
	history *history.History

	// Configuration
	maxUndoEntries int

	// Initialization
	initNodes []Node
	initEdges []Edge
}

// New creates a new Engine with the given options.
// Initial content set via WithNodes/WithEdges is placed directly in the
// graph and is not undoable.
func New(opts ...Option) *Engine {
	e := &Engine{
		maxUndoEntries: DefaultMaxUndoEntries,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.graph = graph.New()
	for _, n := range e.initNodes {
		e.graph.AddNode(n)
	}
	for _, ed := range e.initEdges {
		e.graph.AddEdge(ed.From, ed.To)
	}

	e.history = history.NewHistory(e.graph, e.maxUndoEntries)
	return e
}

// NewFromJSON creates an engine whose graph is decoded from data.
// The decoded content is initial state and is not undoable.
func NewFromJSON(data []byte, opts ...Option) (*Engine, error) {
	e := New(opts...)
	if err := e.graph.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return e, nil
}

// Edit Operations

// AddNode queues a command that adds node n.
// The graph is unchanged until the next Flush.
func (e *Engine) AddNode(n Node) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.history.Append(history.NewAddNode(e.graph, n))
}

// AddEdge queues a command that adds an edge from one node to another.
func (e *Engine) AddEdge(from, to Node) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.history.Append(history.NewAddEdge(e.graph, from, to))
}

// Append queues an arbitrary command on the log.
func (e *Engine) Append(cmd Command) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.history.Append(cmd)
}

// AppendGrouped queues multiple commands as a single log entry.
func (e *Engine) AppendGrouped(name string, cmds ...Command) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.history.AppendGrouped(name, cmds...)
}

// Flush materializes every queued command against the graph.
// Calling it with nothing queued is a no-op.
func (e *Engine) Flush() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.history.Apply()
}

// Undo rolls back the most recent materialized command.
// Returns ErrNothingToUndo if the timeline is empty or commands are still
// queued.
func (e *Engine) Undo() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.history.Undo()
}

// Redo replays the most recently undone command.
// Returns ErrNothingToRedo if no future tail exists.
func (e *Engine) Redo() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.history.Redo()
}

// Transaction collects edits made inside fn into a single log entry.
// If fn returns an error, the collected edits are discarded; the graph is
// untouched either way until the next Flush. fn may call the engine's edit
// methods but must not call Flush, Undo, or Redo.
func (e *Engine) Transaction(name string, fn func() error) error {
	return e.history.Transaction(name, fn)
}

// Read Operations

// Nodes returns a copy of the node sequence in insertion order.
func (e *Engine) Nodes() []Node {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.graph.Nodes()
}

// Edges returns a copy of the edge sequence in insertion order.
func (e *Engine) Edges() []Edge {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.graph.Edges()
}

// NodeCount returns the number of nodes in the graph.
func (e *Engine) NodeCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.graph.NodeCount()
}

// EdgeCount returns the number of edges in the graph.
func (e *Engine) EdgeCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.graph.EdgeCount()
}

// ContainsNode reports whether at least one node equal to n is present.
func (e *Engine) ContainsNode(n Node) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.graph.ContainsNode(n)
}

// Snapshot captures the current graph state as a read-only copy.
func (e *Engine) Snapshot() *Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.graph.Snapshot()
}

// MarshalJSON encodes the current graph state.
func (e *Engine) MarshalJSON() ([]byte, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.graph.MarshalJSON()
}

// History Inspection

// Revision returns the length of the active timeline.
func (e *Engine) Revision() int {
	return e.history.Committed()
}

// Cursor returns the number of log entries materialized against the graph.
func (e *Engine) Cursor() int {
	return e.history.Applied()
}

// LogLen returns the physical log length, including any future tail.
func (e *Engine) LogLen() int {
	return e.history.Len()
}

// PendingCount returns the number of queued commands awaiting Flush.
func (e *Engine) PendingCount() int {
	return e.history.PendingCount()
}

// CanUndo returns true if undo is available.
func (e *Engine) CanUndo() bool {
	return e.history.CanUndo()
}

// CanRedo returns true if redo is available.
func (e *Engine) CanRedo() bool {
	return e.history.CanRedo()
}

// UndoInfo returns info about materialized entries, oldest first.
func (e *Engine) UndoInfo() []OperationInfo {
	return e.history.UndoInfo()
}

// RedoInfo returns info about the future tail, next redo first.
func (e *Engine) RedoInfo() []OperationInfo {
	return e.history.RedoInfo()
}

// PeekUndo returns info about the entry the next Undo would roll back.
func (e *Engine) PeekUndo() (OperationInfo, bool) {
	return e.history.PeekUndo()
}

// PeekRedo returns info about the entry the next Redo would replay.
func (e *Engine) PeekRedo() (OperationInfo, bool) {
	return e.history.PeekRedo()
}
