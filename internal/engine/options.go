package engine

// Default configuration values.
const (
	DefaultMaxUndoEntries = 1000
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithMaxUndoEntries sets the maximum number of operation-log entries.
func WithMaxUndoEntries(max int) Option {
	return func(e *Engine) {
		if max > 0 {
			e.maxUndoEntries = max
		}
	}
}

// WithNodes sets initial nodes for the graph.
// Initial content is not undoable.
func WithNodes(nodes ...Node) Option {
	return func(e *Engine) {
		e.initNodes = append(e.initNodes, nodes...)
	}
}

// WithEdges sets initial edges for the graph.
// Initial content is not undoable.
func WithEdges(edges ...Edge) Option {
	return func(e *Engine) {
		e.initEdges = append(e.initEdges, edges...)
	}
}
