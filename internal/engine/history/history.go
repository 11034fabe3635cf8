package history

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dshills/graphedit/internal/engine/graph"
)

// Common errors for history operations.
var (
	// ErrNothingToUndo indicates there is no materialized operation at the
	// frontier: the timeline is empty, or appended operations have not been
	// applied yet.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNothingToRedo indicates there is no future tail to replay.
	ErrNothingToRedo = errors.New("nothing to redo")
)

// DefaultMaxEntries is the log cap used when none is configured.
const DefaultMaxEntries = 1000

// logEntry wraps a command with metadata.
type logEntry struct {
	command   Command
	timestamp time.Time
}

// History is the operation-log manager. It owns a reference to the target
// graph and an ordered log of commands, and tracks two cursors over it:
//
//   - committed: the length of the currently active timeline
//   - applied: how many log entries are materialized against the target
//
// Invariant: 0 <= applied <= committed <= len(log). Entries past committed
// are a future tail kept only so the next Redo is cheap; the next Append
// discards them.
type History struct {
	mu sync.Mutex

	target *graph.Graph

	log       []*logEntry
	applied   int
	committed int

	// Grouping state
	grouping  bool
	groupName string
	groupCmds []Command

	// Configuration
	maxEntries int
}

// NewHistory creates a history manager for the given target graph.
func NewHistory(target *graph.Graph, maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{
		target:     target,
		maxEntries: maxEntries,
	}
}

// Target returns the graph this history edits.
func (h *History) Target() *graph.Graph {
	return h.target
}

// Append records a command on the active timeline without materializing it.
// Any future tail left behind by earlier undos is discarded first; the
// discarded entries are unreachable once a new branch starts. The appended
// command stays queued until the next Apply.
func (h *History) Append(cmd Command) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.grouping {
		h.groupCmds = append(h.groupCmds, cmd)
		return
	}

	h.appendLocked(cmd)
}

// appendLocked truncates the stale future tail, pushes the command, and
// advances committed, as one atomic sequence under the lock.
func (h *History) appendLocked(cmd Command) {
	if h.committed < len(h.log) {
		h.log = h.log[:h.committed]
	}

	h.log = append(h.log, &logEntry{
		command:   cmd,
		timestamp: time.Now(),
	})
	h.committed = len(h.log)

	// Enforce max entries. Only fully materialized entries may be evicted;
	// both cursors shift with the log start.
	if len(h.log) > h.maxEntries {
		excess := len(h.log) - h.maxEntries
		if excess > h.applied {
			excess = h.applied
		}
		if excess > 0 {
			h.log = h.log[excess:]
			h.applied -= excess
			h.committed -= excess
		}
	}
}

// Apply materializes every queued command, in log order. It is a no-op when
// nothing is queued, so calling it twice in a row changes nothing.
//
// Commands run while the lock is held; a command must never call back into
// the same History (that would break the single-writer discipline the
// target enforces).
func (h *History) Apply() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for h.applied < h.committed {
		if err := h.log[h.applied].command.Apply(); err != nil {
			return fmt.Errorf("apply log entry %d: %w", h.applied, err)
		}
		h.applied++
	}
	return nil
}

// Undo rolls back the most recent materialized command. It requires a fully
// materialized frontier: undo is undefined while appended commands are
// still queued, and ErrNothingToUndo is returned in that case as well as
// when the timeline is empty. The rolled-back entry stays in the log as the
// future tail for a possible Redo.
func (h *History) Undo() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.committed == 0 || h.applied != h.committed {
		return ErrNothingToUndo
	}

	if err := h.log[h.committed-1].command.Invert(); err != nil {
		return fmt.Errorf("undo %s: %w", h.log[h.committed-1].command.Description(), err)
	}

	h.committed--
	h.applied--
	return nil
}

// Redo replays the first entry of the future tail, restoring the target to
// its exact pre-undo state. Returns ErrNothingToRedo when no tail exists.
func (h *History) Redo() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.committed == len(h.log) {
		return ErrNothingToRedo
	}

	if err := h.log[h.committed].command.Apply(); err != nil {
		return fmt.Errorf("redo %s: %w", h.log[h.committed].command.Description(), err)
	}

	h.committed++
	h.applied++
	return nil
}

// Applied returns the number of log entries materialized against the target.
func (h *History) Applied() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.applied
}

// Committed returns the length of the active timeline.
func (h *History) Committed() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.committed
}

// Len returns the physical log length, including any future tail.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.log)
}

// PendingCount returns the number of appended commands not yet materialized.
func (h *History) PendingCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.committed - h.applied
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.committed > 0 && h.applied == h.committed
}

// CanRedo returns true if a future tail exists.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.committed < len(h.log)
}

// MaxEntries returns the maximum number of log entries.
func (h *History) MaxEntries() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.maxEntries
}

// OperationInfo provides read-only info about a log entry.
// Used for displaying undo/redo history to users.
type OperationInfo struct {
	Description string    // Human-readable description
	Timestamp   time.Time // When the entry was appended
}

func entryInfo(e *logEntry) OperationInfo {
	return OperationInfo{
		Description: e.command.Description(),
		Timestamp:   e.timestamp,
	}
}

// UndoInfo returns info about materialized entries, oldest first.
func (h *History) UndoInfo() []OperationInfo {
	h.mu.Lock()
	defer h.mu.Unlock()

	result := make([]OperationInfo, h.applied)
	for i, entry := range h.log[:h.applied] {
		result[i] = entryInfo(entry)
	}
	return result
}

// PendingInfo returns info about appended but not yet materialized entries.
func (h *History) PendingInfo() []OperationInfo {
	h.mu.Lock()
	defer h.mu.Unlock()

	result := make([]OperationInfo, h.committed-h.applied)
	for i, entry := range h.log[h.applied:h.committed] {
		result[i] = entryInfo(entry)
	}
	return result
}

// RedoInfo returns info about the future tail, next redo first.
func (h *History) RedoInfo() []OperationInfo {
	h.mu.Lock()
	defer h.mu.Unlock()

	result := make([]OperationInfo, len(h.log)-h.committed)
	for i, entry := range h.log[h.committed:] {
		result[i] = entryInfo(entry)
	}
	return result
}

// PeekUndo returns info about the entry the next Undo would roll back.
func (h *History) PeekUndo() (OperationInfo, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.committed == 0 || h.applied != h.committed {
		return OperationInfo{}, false
	}
	return entryInfo(h.log[h.committed-1]), true
}

// PeekRedo returns info about the entry the next Redo would replay.
func (h *History) PeekRedo() (OperationInfo, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.committed == len(h.log) {
		return OperationInfo{}, false
	}
	return entryInfo(h.log[h.committed]), true
}
