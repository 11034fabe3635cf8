package history

import (
	"fmt"

	"github.com/dshills/graphedit/internal/engine/graph"
)

// Command represents a reversible unit of change recorded in the log.
// A command is bound to its target graph and its argument values at
// construction time; Invert performs the exact structural inverse of Apply
// for those recorded values and is never derived from current graph state.
type Command interface {
	// Apply performs the forward mutation and returns an error if it fails.
	Apply() error

	// Invert performs the exact inverse mutation and returns an error if it fails.
	Invert() error

	// Description returns a human-readable description of the command.
	Description() string
}

// AddNodeCommand appends a node to the target graph.
type AddNodeCommand struct {
	graph *graph.Graph
	node  graph.Node
}

// NewAddNode creates a command that adds node n to g.
func NewAddNode(g *graph.Graph, n graph.Node) *AddNodeCommand {
	return &AddNodeCommand{graph: g, node: n}
}

// Apply adds the recorded node.
func (c *AddNodeCommand) Apply() error {
	c.graph.AddNode(c.node)
	return nil
}

// Invert removes every node equal to the recorded value. If the caller
// appended duplicate nodes, one inversion removes all copies.
func (c *AddNodeCommand) Invert() error {
	c.graph.RemoveNode(c.node)
	return nil
}

// Description returns a human-readable description.
func (c *AddNodeCommand) Description() string {
	return fmt.Sprintf("Add node (%d,%d)", c.node.X, c.node.Y)
}

// AddEdgeCommand appends an edge to the target graph.
type AddEdgeCommand struct {
	graph *graph.Graph
	from  graph.Node
	to    graph.Node
}

// NewAddEdge creates a command that adds an edge from one node to another in g.
func NewAddEdge(g *graph.Graph, from, to graph.Node) *AddEdgeCommand {
	return &AddEdgeCommand{graph: g, from: from, to: to}
}

// Apply adds the recorded edge.
func (c *AddEdgeCommand) Apply() error {
	c.graph.AddEdge(c.from, c.to)
	return nil
}

// Invert removes every edge equal to the recorded endpoints.
func (c *AddEdgeCommand) Invert() error {
	c.graph.RemoveEdge(c.from, c.to)
	return nil
}

// Description returns a human-readable description.
func (c *AddEdgeCommand) Description() string {
	return fmt.Sprintf("Add edge (%d,%d)-(%d,%d)", c.from.X, c.from.Y, c.to.X, c.to.Y)
}

// CompoundCommand groups multiple commands as one log entry.
type CompoundCommand struct {
	Name     string
	Commands []Command
}

// NewCompoundCommand creates a new compound command.
func NewCompoundCommand(name string, commands ...Command) *CompoundCommand {
	return &CompoundCommand{
		Name:     name,
		Commands: commands,
	}
}

// Apply runs all commands in order.
// On error, commands already applied are inverted so the target is left as
// it was before the compound started.
func (c *CompoundCommand) Apply() error {
	for i, cmd := range c.Commands {
		if err := cmd.Apply(); err != nil {
			for j := i - 1; j >= 0; j-- {
				_ = c.Commands[j].Invert()
			}
			return fmt.Errorf("compound command %q step %d: %w", c.Name, i, err)
		}
	}
	return nil
}

// Invert reverses all commands in reverse order.
func (c *CompoundCommand) Invert() error {
	for i := len(c.Commands) - 1; i >= 0; i-- {
		if err := c.Commands[i].Invert(); err != nil {
			return fmt.Errorf("invert compound command %q step %d: %w", c.Name, i, err)
		}
	}
	return nil
}

// Description returns the compound command's name.
func (c *CompoundCommand) Description() string {
	if c.Name != "" {
		return c.Name
	}
	if len(c.Commands) == 1 {
		return c.Commands[0].Description()
	}
	return fmt.Sprintf("%d operations", len(c.Commands))
}

// Add adds a command to the compound command.
func (c *CompoundCommand) Add(cmd Command) {
	c.Commands = append(c.Commands, cmd)
}

// IsEmpty returns true if the compound command has no commands.
func (c *CompoundCommand) IsEmpty() bool {
	return len(c.Commands) == 0
}
