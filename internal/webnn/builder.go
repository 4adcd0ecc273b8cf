// Package webnn implements a WebNN-style graph builder: the target API the
// lowering pass emits into.
//
// The builder follows the WebNN graph-construction model: every operation
// takes already-built operands, returns a new operand, and is recorded in
// emission order. Operand shapes use the WebNN convention of unsigned
// 32-bit dimensions.
package webnn

import (
	"fmt"

	"github.com/webnn-go/webnn/internal/ir"
)

// Operand is an opaque handle to a value materialized in the target graph.
type Operand struct {
	id    int
	dtype ir.DataType
	shape []uint32
}

// DType returns the operand's element type.
func (o Operand) DType() ir.DataType {
	return o.dtype
}

// Shape returns the operand's shape.
func (o Operand) Shape() []uint32 {
	return o.shape
}

// NormalizationOptions configures one normalization operation.
// Bias is optional; Axes is consumed by layer normalization only.
type NormalizationOptions struct {
	Label   string
	Scale   Operand
	Bias    *Operand
	Epsilon float32
	Axes    []uint32
}

// OperatorOptions carries the common per-operation settings.
type OperatorOptions struct {
	Label string
}

// Operation is one recorded target-graph operation.
type Operation struct {
	Kind     string // "batchNormalization", "layerNormalization", "instanceNormalization", "reshape"
	Label    string
	Inputs   []Operand
	Options  NormalizationOptions // set for the three normalization kinds
	NewShape []uint32             // set for "reshape"
	Output   Operand
}

// GraphBuilder constructs the target graph.
//
// It owns the operand table mapping IR tensor names to operands. The table is
// append-only: names are never removed or overwritten for the lifetime of the
// build session.
type GraphBuilder struct {
	operands map[string]Operand
	ops      []Operation
	nextID   int
}

// NewGraphBuilder creates an empty graph builder.
func NewGraphBuilder() *GraphBuilder {
	return &GraphBuilder{
		operands: make(map[string]Operand),
	}
}

// newOperand mints a fresh operand handle.
func (b *GraphBuilder) newOperand(dtype ir.DataType, shape []uint32) Operand {
	op := Operand{id: b.nextID, dtype: dtype, shape: shape}
	b.nextID++
	return op
}

// AddInput materializes an externally supplied tensor (graph input or
// initializer) as an operand and registers it under its name.
func (b *GraphBuilder) AddInput(name string, dtype ir.DataType, shape []uint32) (Operand, error) {
	op := b.newOperand(dtype, shape)
	if err := b.AddOperand(name, op); err != nil {
		return Operand{}, err
	}
	return op, nil
}

// GetOperand looks up a previously registered operand by tensor name.
func (b *GraphBuilder) GetOperand(name string) (Operand, bool) {
	op, ok := b.operands[name]
	return op, ok
}

// AddOperand registers an operand under a tensor name.
// Registering the same name twice is an error: the table is append-only.
func (b *GraphBuilder) AddOperand(name string, op Operand) error {
	if _, exists := b.operands[name]; exists {
		return fmt.Errorf("operand %q is already registered", name)
	}
	b.operands[name] = op
	return nil
}

// BatchNormalization emits a batch normalization over a pre-computed mean and
// variance. The output shape equals the input shape.
func (b *GraphBuilder) BatchNormalization(input, mean, variance Operand, opts NormalizationOptions) Operand {
	out := b.newOperand(input.dtype, input.shape)
	b.ops = append(b.ops, Operation{
		Kind:    "batchNormalization",
		Label:   opts.Label,
		Inputs:  []Operand{input, mean, variance},
		Options: opts,
		Output:  out,
	})
	return out
}

// LayerNormalization emits a layer normalization over opts.Axes.
func (b *GraphBuilder) LayerNormalization(input Operand, opts NormalizationOptions) Operand {
	out := b.newOperand(input.dtype, input.shape)
	b.ops = append(b.ops, Operation{
		Kind:    "layerNormalization",
		Label:   opts.Label,
		Inputs:  []Operand{input},
		Options: opts,
		Output:  out,
	})
	return out
}

// InstanceNormalization emits an instance normalization. The input must be
// 4-dimensional; rank adaptation is the caller's responsibility.
func (b *GraphBuilder) InstanceNormalization(input Operand, opts NormalizationOptions) Operand {
	out := b.newOperand(input.dtype, input.shape)
	b.ops = append(b.ops, Operation{
		Kind:    "instanceNormalization",
		Label:   opts.Label,
		Inputs:  []Operand{input},
		Options: opts,
		Output:  out,
	})
	return out
}

// Reshape emits a reshape to newShape. Element count must be conserved by the
// caller; the builder records the operation as given.
func (b *GraphBuilder) Reshape(input Operand, newShape []uint32, opts OperatorOptions) Operand {
	out := b.newOperand(input.dtype, newShape)
	b.ops = append(b.ops, Operation{
		Kind:     "reshape",
		Label:    opts.Label,
		Inputs:   []Operand{input},
		NewShape: newShape,
		Output:   out,
	})
	return out
}

// Operations returns the recorded operations in emission order.
func (b *GraphBuilder) Operations() []Operation {
	return b.ops
}
