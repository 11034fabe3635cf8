package engine

import (
	"github.com/dshills/graphedit/internal/engine/graph"
	"github.com/dshills/graphedit/internal/engine/history"
)

// Errors returned by engine operations. These alias the sentinel values of
// the sub-packages so errors.Is works across layers.
var (
	// ErrNothingToUndo indicates the timeline is empty or commands are queued.
	ErrNothingToUndo = history.ErrNothingToUndo

	// ErrNothingToRedo indicates no future tail exists.
	ErrNothingToRedo = history.ErrNothingToRedo

	// ErrExclusiveAccess is the panic value raised on a reentrant graph mutation.
	ErrExclusiveAccess = graph.ErrExclusiveAccess

	// ErrInvalidJSON indicates data that cannot be decoded into a graph.
	ErrInvalidJSON = graph.ErrInvalidJSON
)
