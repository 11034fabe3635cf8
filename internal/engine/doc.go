// Package engine provides the core graph editing engine for graphedit.
//
// The engine package serves as the main facade, combining the mutable
// graph, the reversible command abstraction, and the operation-log manager
// into a unified, thread-safe API.
//
// # Architecture
//
// The engine is built on two sub-packages:
//
//   - graph: ordered node/edge sequences with a runtime exclusive-access guard
//   - history: command-based operation log with linear undo/redo
//
// # Thread Safety
//
// All Engine operations are thread-safe. The engine uses a read-write mutex
// to allow concurrent reads while serializing graph-mutating operations.
//
// # Basic Usage
//
// Create an engine and propose edits:
//
//	e := engine.New()
//
//	// Queue edits; the graph is unchanged until Flush
//	e.AddNode(engine.Node{X: 0, Y: 0})
//	e.AddNode(engine.Node{X: 1, Y: 1})
//	e.Flush()
//
//	e.AddEdge(engine.Node{X: 0, Y: 0}, engine.Node{X: 1, Y: 1})
//	e.Flush()
//
// # Undo/Redo
//
// The engine maintains a linear timeline with branch truncation:
//
//	e.Undo() // removes the edge
//	e.Redo() // restores it
//
//	e.Undo()
//	e.AddNode(engine.Node{X: 2, Y: 2}) // discards the redoable edge
//	e.Flush()
//
// Group multiple edits into a single undo unit:
//
//	e.Transaction("build cluster", func() error {
//	    e.AddNode(engine.Node{X: 3, Y: 3})
//	    e.AddNode(engine.Node{X: 4, Y: 4})
//	    return nil
//	})
//	e.Flush()
//	e.Undo() // removes both nodes at once
//
// # Inspection
//
// Revision reports the active timeline length, Cursor how much of it is
// materialized, and LogLen the physical log size including any redoable
// tail. UndoInfo/RedoInfo describe entries for display.
//
// # Configuration
//
//	e := engine.New(
//	    engine.WithNodes(engine.Node{X: 0, Y: 0}),
//	    engine.WithMaxUndoEntries(500),
//	)
//
// # Error Handling
//
// The package defines several error values:
//
//   - ErrNothingToUndo: timeline empty, or queued edits not yet flushed
//   - ErrNothingToRedo: no redoable tail
//   - ErrExclusiveAccess: panic value for reentrant graph mutation
//   - ErrInvalidJSON: undecodable graph data
package engine
