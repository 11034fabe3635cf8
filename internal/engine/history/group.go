package history

// BeginGroup starts a command group.
// Commands appended while grouping are collected and become a single
// CompoundCommand log entry when the group ends. Nested calls are ignored.
func (h *History) BeginGroup(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.grouping {
		return
	}

	h.grouping = true
	h.groupName = name
	h.groupCmds = nil
}

// EndGroup finishes a command group.
// All commands since BeginGroup are combined into one CompoundCommand and
// appended as a single log entry.
func (h *History) EndGroup() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.grouping {
		return
	}

	h.grouping = false

	if len(h.groupCmds) == 0 {
		h.groupCmds = nil
		return
	}

	compound := &CompoundCommand{
		Name:     h.groupName,
		Commands: h.groupCmds,
	}

	h.appendLocked(compound)
	h.groupCmds = nil
}

// CancelGroup discards a command group without appending anything.
// Grouped commands are only queued, never materialized, so cancelling
// leaves the target untouched.
func (h *History) CancelGroup() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.grouping = false
	h.groupCmds = nil
}

// IsGrouping returns true if currently in a command group.
func (h *History) IsGrouping() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.grouping
}

// GroupScope provides a convenient way to group commands using defer.
// Usage:
//
//	func buildCluster(h *History) {
//	    defer h.GroupScope("Build Cluster").End()
//	    // ... multiple appends ...
//	}
type GroupScope struct {
	history *History
	active  bool
}

// GroupScope starts a new group scope.
// Call End() or use with defer to properly close the group.
func (h *History) GroupScope(name string) *GroupScope {
	h.BeginGroup(name)
	return &GroupScope{
		history: h,
		active:  true,
	}
}

// End ends the group scope.
// Safe to call multiple times; only the first call has effect.
func (g *GroupScope) End() {
	if g.active {
		g.history.EndGroup()
		g.active = false
	}
}

// Cancel cancels the group scope without creating a compound entry.
func (g *GroupScope) Cancel() {
	if g.active {
		g.history.CancelGroup()
		g.active = false
	}
}

// Transaction collects appends made inside fn into a single log entry.
// If fn returns an error, the group is discarded and nothing is appended.
func (h *History) Transaction(name string, fn func() error) error {
	h.BeginGroup(name)

	err := fn()
	if err != nil {
		h.CancelGroup()
		return err
	}

	h.EndGroup()
	return nil
}

// AppendGrouped appends multiple commands as a single log entry.
func (h *History) AppendGrouped(name string, cmds ...Command) {
	if len(cmds) == 0 {
		return
	}

	if len(cmds) == 1 {
		// Single command doesn't need grouping
		h.Append(cmds[0])
		return
	}

	h.Append(&CompoundCommand{Name: name, Commands: cmds})
}

// Checkpoint represents a point on the timeline that can be returned to.
type Checkpoint struct {
	committed int
}

// CreateCheckpoint creates a checkpoint at the current timeline position.
func (h *History) CreateCheckpoint() Checkpoint {
	h.mu.Lock()
	defer h.mu.Unlock()
	return Checkpoint{committed: h.committed}
}

// UndoToCheckpoint undoes all materialized operations since the checkpoint.
func (h *History) UndoToCheckpoint(cp Checkpoint) error {
	for h.Committed() > cp.committed {
		if err := h.Undo(); err != nil {
			return err
		}
	}
	return nil
}

// RedoToCheckpoint redoes operations up to the checkpoint position.
// This only works while the future tail still holds them.
func (h *History) RedoToCheckpoint(cp Checkpoint) error {
	for h.Committed() < cp.committed && h.CanRedo() {
		if err := h.Redo(); err != nil {
			return err
		}
	}
	return nil
}
