// Package history provides linear undo/redo over a log of reversible graph
// commands.
//
// The history system uses the Command pattern to encapsulate edits,
// enabling them to be queued, materialized, undone, and redone. Key
// concepts:
//
// # Commands
//
// Commands implement the Command interface with Apply and Invert methods.
// Each command captures its target graph and argument values at
// construction time; Invert is the exact structural inverse of Apply for
// those values. Built-in commands include:
//   - AddNodeCommand: Append a node to the graph
//   - AddEdgeCommand: Append an edge to the graph
//   - CompoundCommand: Group multiple commands as one log entry
//
// # The Log and Its Cursors
//
// Unlike a classic pair of undo/redo stacks, History keeps one ordered log
// and two cursors over it:
//
//   - committed is the length of the active timeline
//   - applied counts the entries currently materialized against the graph
//
// Append queues a command (advancing committed), Apply materializes the
// queue (advancing applied), and Undo/Redo move both cursors across the
// materialized frontier. Entries past committed form a future tail that
// makes Redo cheap; appending after an undo truncates that tail, which
// gives the usual editor semantics for "undo, then do something new":
//
//	h := NewHistory(g, 1000)
//
//	h.Append(NewAddNode(g, graph.Node{X: 0, Y: 0}))
//	h.Apply()               // materialize the queue
//
//	h.Undo()                // roll back, entry stays as future tail
//	h.Redo()                // replay it
//
//	h.Undo()
//	h.Append(NewAddNode(g, graph.Node{X: 2, Y: 2})) // discards the old tail
//
// # Command Grouping
//
// Multiple commands can be grouped into a single log entry:
//
//	h.BeginGroup("Build Cluster")
//	// ... multiple appends ...
//	h.EndGroup()
//
// Grouped commands are only queued while the group is open, so CancelGroup
// discards them without touching the graph.
package history
