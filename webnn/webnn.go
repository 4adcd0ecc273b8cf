// Package webnn lowers normalization operators from the portable graph IR to
// a WebNN-style graph builder.
//
// The package covers the BatchNormalization, InstanceNormalization, and
// LayerNormalization operator types. Each node is first screened by two soft
// filters (structural support and input element types); accepted nodes are
// then lowered into one or more target-graph operations.
//
// # Example Usage
//
//	import (
//	    "github.com/webnn-go/webnn/ir"
//	    "github.com/webnn-go/webnn/webnn"
//	)
//
//	reg := webnn.NewRegistry()
//	mb := webnn.NewModelBuilder(graph, reg, nil)
//
//	for i := range graph.Nodes {
//	    if !mb.IsNodeSupported(&graph.Nodes[i]) {
//	        // fall back to another execution path for this node
//	    }
//	}
//
//	if err := mb.Lower(); err != nil {
//	    log.Fatal(err)
//	}
//	ops := mb.Builder().Operations()
package webnn

import (
	"log/slog"

	"github.com/webnn-go/webnn/internal/ir"
	"github.com/webnn-go/webnn/internal/lowering"
	internalwebnn "github.com/webnn-go/webnn/internal/webnn"
)

// Operand is an opaque handle to a value materialized in the target graph.
type Operand = internalwebnn.Operand

// Operation is one recorded target-graph operation.
type Operation = internalwebnn.Operation

// NormalizationOptions configures one normalization operation.
type NormalizationOptions = internalwebnn.NormalizationOptions

// OperatorOptions carries the common per-operation settings.
type OperatorOptions = internalwebnn.OperatorOptions

// GraphBuilder constructs the target graph and owns the operand table.
type GraphBuilder = internalwebnn.GraphBuilder

// NewGraphBuilder creates an empty graph builder.
func NewGraphBuilder() *GraphBuilder {
	return internalwebnn.NewGraphBuilder()
}

// Registrations maps IR operator-type names to op builders.
type Registrations = lowering.Registrations

// NewRegistry creates a registry with all supported operator families bound.
func NewRegistry() *Registrations {
	return lowering.NewRegistry()
}

// OpBuilder lowers one family of IR operators to the target graph.
type OpBuilder = lowering.OpBuilder

// ModelBuilder drives the lowering of one IR graph.
type ModelBuilder = lowering.ModelBuilder

// NewModelBuilder creates a ModelBuilder for one graph. A nil logger
// suppresses decline diagnostics.
func NewModelBuilder(graph *ir.Graph, reg *Registrations, logger *slog.Logger) *ModelBuilder {
	return lowering.NewModelBuilder(graph, reg, logger)
}

// ErrInvalidArgument marks a hard lowering failure.
var ErrInvalidArgument = lowering.ErrInvalidArgument
