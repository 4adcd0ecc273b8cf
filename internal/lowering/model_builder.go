package lowering

import (
	"fmt"
	"log/slog"

	"github.com/webnn-go/webnn/internal/ir"
	"github.com/webnn-go/webnn/internal/webnn"
)

var discardLogger = slog.New(slog.DiscardHandler)

// orDiscard makes a nil logger safe to log through.
func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return discardLogger
	}
	return logger
}

// ModelBuilder drives lowering of one IR graph into one target graph.
//
// It owns the walk over the graph's nodes, dispatches each node through the
// registry, and exposes the operand table of the underlying GraphBuilder to
// the op builders. A ModelBuilder lowers a single graph-build session;
// construct a fresh one per graph.
type ModelBuilder struct {
	graph   *ir.Graph
	builder *webnn.GraphBuilder
	reg     *Registrations
	logger  *slog.Logger
}

// NewModelBuilder creates a ModelBuilder for one graph. A nil logger
// suppresses decline diagnostics.
func NewModelBuilder(graph *ir.Graph, reg *Registrations, logger *slog.Logger) *ModelBuilder {
	return &ModelBuilder{
		graph:   graph,
		builder: webnn.NewGraphBuilder(),
		reg:     reg,
		logger:  orDiscard(logger),
	}
}

// Graph returns the IR graph being lowered.
func (mb *ModelBuilder) Graph() *ir.Graph {
	return mb.graph
}

// Builder returns the target graph builder.
func (mb *ModelBuilder) Builder() *webnn.GraphBuilder {
	return mb.builder
}

// GetOperand looks up a previously materialized operand by tensor name.
func (mb *ModelBuilder) GetOperand(name string) (webnn.Operand, bool) {
	return mb.builder.GetOperand(name)
}

// AddOperand registers a new operand under a tensor name.
func (mb *ModelBuilder) AddOperand(name string, op webnn.Operand) error {
	return mb.builder.AddOperand(name, op)
}

// IsNodeSupported reports whether this backend accepts the node: its operator
// type must have a registered builder and the node must pass both the support
// filter and the input-type filter. A false result is a soft decline.
func (mb *ModelBuilder) IsNodeSupported(node *ir.Node) bool {
	builder, ok := mb.reg.Get(node.OpType)
	if !ok {
		mb.logger.Debug("no builder registered", "op", node.OpType)
		return false
	}
	return builder.IsSupported(mb.graph, node, mb.logger) &&
		builder.InputsSupported(mb.graph, node, mb.logger)
}

// AddInputs materializes every graph input (model inputs and initializers)
// as an operand so node lowering can look them up.
func (mb *ModelBuilder) AddInputs() error {
	for _, name := range mb.graph.Inputs {
		shape, ok := mb.graph.Shape(name)
		if !ok {
			return fmt.Errorf("cannot get shape of graph input %q: %w", name, ErrInvalidArgument)
		}
		dtype, ok := mb.graph.DType(name)
		if !ok {
			return fmt.Errorf("cannot get type of graph input %q: %w", name, ErrInvalidArgument)
		}
		dims, err := toUint32Shape(shape)
		if err != nil {
			return fmt.Errorf("graph input %q: %w", name, err)
		}
		if _, err := mb.builder.AddInput(name, dtype, dims); err != nil {
			return fmt.Errorf("graph input %q: %w", name, err)
		}
	}
	return nil
}

// AddOperations lowers every node of the graph in order. The caller is
// expected to have admitted each node via IsNodeSupported beforehand; a node
// without a registered builder is therefore a hard failure here.
func (mb *ModelBuilder) AddOperations() error {
	for i := range mb.graph.Nodes {
		node := &mb.graph.Nodes[i]
		builder, ok := mb.reg.Get(node.OpType)
		if !ok {
			return fmt.Errorf("no builder registered for op type %s: %w", node.OpType, ErrInvalidArgument)
		}
		if err := builder.AddToGraph(mb, node); err != nil {
			return fmt.Errorf("lowering node %q: %w", node.Name, err)
		}
	}
	return nil
}

// Lower runs the whole build: inputs first, then every node.
func (mb *ModelBuilder) Lower() error {
	if err := mb.AddInputs(); err != nil {
		return err
	}
	return mb.AddOperations()
}
