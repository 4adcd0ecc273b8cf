package lowering

import (
	"fmt"
	"log/slog"

	"fortio.org/safecast"

	"github.com/webnn-go/webnn/internal/ir"
	"github.com/webnn-go/webnn/internal/webnn"
)

const defaultEpsilon float32 = 1e-05

// WebNN instanceNormalization is fixed at 4-D input.
const webnnShapeRank = 4

var normalizationOpTypes = []string{
	"BatchNormalization",
	"InstanceNormalization",
	"LayerNormalization",
}

// normalizationOpBuilder lowers the batch, instance, and layer normalization
// operators. One instance serves all three registered operator types.
type normalizationOpBuilder struct{}

// RegisterNormalizationOpBuilder binds all three normalization operator types
// to a single builder instance. If opType already has a builder the call is a
// no-op, so re-registration is safe.
func RegisterNormalizationOpBuilder(opType string, r *Registrations) {
	if r.Count(opType) > 0 {
		return
	}
	builder := &normalizationOpBuilder{}
	for _, t := range normalizationOpTypes {
		r.Emplace(t, builder)
	}
}

// IsSupported decides whether this backend can lower the node at all.
//
// Beyond the structural checks (arity, single output, resolvable shapes) it
// validates the scale/bias shape relationships up front, so that AddToGraph
// never fails on a node this filter accepted.
func (nb *normalizationOpBuilder) IsSupported(g *ir.Graph, node *ir.Node, logger *slog.Logger) bool {
	logger = orDiscard(logger)
	opType := node.OpType

	if len(node.Inputs) < 2 {
		logger.Debug("node requires at least two inputs", "op", opType)
		return false
	}
	if len(node.Outputs) != 1 {
		logger.Debug("node output count must be one", "op", opType)
		return false
	}

	inputShape, ok := g.Shape(node.Inputs[0])
	if !ok {
		logger.Debug("cannot get input shape", "op", opType)
		return false
	}
	rank := len(inputShape)

	scaleShape, ok := g.Shape(node.Inputs[1])
	if !ok {
		logger.Debug("cannot get scale shape", "op", opType)
		return false
	}
	// Except LayerNormalization, the scale input must be 1-D.
	if opType == "LayerNormalization" {
		if len(scaleShape) < 1 || len(scaleShape) > rank {
			logger.Debug("scale rank must lie within the input rank", "op", opType)
			return false
		}
	} else if len(scaleShape) != 1 {
		logger.Debug("scale must be one-dimensional", "op", opType)
		return false
	}

	if node.HasInput(2) {
		biasShape, ok := g.Shape(node.Inputs[2])
		if !ok {
			logger.Debug("cannot get bias shape", "op", opType)
			return false
		}
		if !shapesEqual(biasShape, scaleShape) {
			logger.Debug("bias shape must equal scale shape", "op", opType)
			return false
		}
	}

	if opType == "BatchNormalization" {
		if ir.GetAttrInt(node, "training_mode", 0) != 0 {
			logger.Debug("BatchNormalization with training_mode set is not supported", "op", opType)
			return false
		}
		if len(node.Inputs) != 5 {
			logger.Debug("BatchNormalization requires five inputs", "op", opType)
			return false
		}
	}

	return true
}

// InputsSupported decides whether the node's operand element types are
// jointly acceptable: every present operand among input, scale, bias, mean,
// and variance must share one of the two supported floating-point types.
func (nb *normalizationOpBuilder) InputsSupported(g *ir.Graph, node *ir.Node, logger *slog.Logger) bool {
	logger = orDiscard(logger)
	opType := node.OpType

	if len(node.Inputs) < 2 {
		logger.Debug("node requires at least two inputs", "op", opType)
		return false
	}

	input0, ok := g.DType(node.Inputs[0])
	if !ok {
		return false
	}
	input1, ok := g.DType(node.Inputs[1])
	if !ok {
		return false
	}

	hasInput2 := node.HasInput(2)
	hasInput3 := node.HasInput(3)
	hasInput4 := node.HasInput(4)

	var input2, input3, input4 ir.DataType
	if hasInput2 {
		if input2, ok = g.DType(node.Inputs[2]); !ok {
			return false
		}
	}
	if hasInput3 {
		if input3, ok = g.DType(node.Inputs[3]); !ok {
			return false
		}
	}
	if hasInput4 {
		if input4, ok = g.DType(node.Inputs[4]); !ok {
			return false
		}
	}

	if !isSupportedFloatType(input0) {
		logger.Debug("input type is not supported", "op", opType, "type", input0.String())
		return false
	}
	if input0 != input1 ||
		(hasInput2 && input0 != input2) ||
		(hasInput3 && input0 != input3) ||
		(hasInput4 && input0 != input4) {
		logger.Debug("input data types should be the same", "op", opType)
		return false
	}

	return true
}

// AddToGraph emits the target-graph operations for one filter-accepted node
// and registers the node's output operand.
func (nb *normalizationOpBuilder) AddToGraph(mb *ModelBuilder, node *ir.Node) error {
	opType := node.OpType
	if len(node.Inputs) < 2 {
		return fmt.Errorf("%s requires at least two inputs: %w", opType, ErrInvalidArgument)
	}
	if len(node.Outputs) != 1 {
		return fmt.Errorf("%s must have exactly one output: %w", opType, ErrInvalidArgument)
	}

	input, ok := mb.GetOperand(node.Inputs[0])
	if !ok {
		return fmt.Errorf("%s: operand %q is not registered: %w", opType, node.Inputs[0], ErrInvalidArgument)
	}
	inputShape, ok := mb.Graph().Shape(node.Inputs[0])
	if !ok {
		return fmt.Errorf("%s: cannot get input shape: %w", opType, ErrInvalidArgument)
	}
	rank := len(inputShape)

	scaleShape, ok := mb.Graph().Shape(node.Inputs[1])
	if !ok {
		return fmt.Errorf("%s: cannot get scale shape: %w", opType, ErrInvalidArgument)
	}
	if opType == "LayerNormalization" {
		if len(scaleShape) < 1 || len(scaleShape) > rank {
			return fmt.Errorf("%s: scale rank must lie within the input rank: %w", opType, ErrInvalidArgument)
		}
	} else if len(scaleShape) != 1 {
		return fmt.Errorf("%s: scale must be one-dimensional: %w", opType, ErrInvalidArgument)
	}

	scale, ok := mb.GetOperand(node.Inputs[1])
	if !ok {
		return fmt.Errorf("%s: operand %q is not registered: %w", opType, node.Inputs[1], ErrInvalidArgument)
	}
	opts := webnn.NormalizationOptions{
		Label:   node.Name,
		Scale:   scale,
		Epsilon: ir.GetAttrFloat(node, "epsilon", defaultEpsilon),
	}

	if node.HasInput(2) {
		biasShape, ok := mb.Graph().Shape(node.Inputs[2])
		if !ok {
			return fmt.Errorf("%s: cannot get bias shape: %w", opType, ErrInvalidArgument)
		}
		if !shapesEqual(biasShape, scaleShape) {
			return fmt.Errorf("%s: bias shape must equal scale shape: %w", opType, ErrInvalidArgument)
		}
		bias, ok := mb.GetOperand(node.Inputs[2])
		if !ok {
			return fmt.Errorf("%s: operand %q is not registered: %w", opType, node.Inputs[2], ErrInvalidArgument)
		}
		opts.Bias = &bias
	}

	var output webnn.Operand
	switch opType {
	case "BatchNormalization":
		if len(node.Inputs) != 5 {
			return fmt.Errorf("BatchNormalization requires five inputs: %w", ErrInvalidArgument)
		}
		mean, ok := mb.GetOperand(node.Inputs[3])
		if !ok {
			return fmt.Errorf("%s: operand %q is not registered: %w", opType, node.Inputs[3], ErrInvalidArgument)
		}
		variance, ok := mb.GetOperand(node.Inputs[4])
		if !ok {
			return fmt.Errorf("%s: operand %q is not registered: %w", opType, node.Inputs[4], ErrInvalidArgument)
		}
		output = mb.Builder().BatchNormalization(input, mean, variance, opts)

	case "LayerNormalization":
		axis := HandleNegativeAxis(ir.GetAttrInt(node, "axis", -1), rank)
		if axis < 0 || axis >= int64(rank) {
			return fmt.Errorf("%s: axis %d is out of range for rank %d: %w", opType, axis, rank, ErrInvalidArgument)
		}
		start, err := safecast.Conv[uint32](axis)
		if err != nil {
			return fmt.Errorf("%s: axis %d does not fit in uint32: %w", opType, axis, ErrInvalidArgument)
		}
		// The reduction covers the contiguous trailing dimensions [axis, rank).
		axes := make([]uint32, 0, int64(rank)-axis)
		for a := start; a < uint32(rank); a++ {
			axes = append(axes, a)
		}
		opts.Axes = axes
		output = mb.Builder().LayerNormalization(input, opts)

	case "InstanceNormalization":
		shape, err := toUint32Shape(inputShape)
		if err != nil {
			return fmt.Errorf("%s: %w", opType, err)
		}
		if rank != webnnShapeRank {
			var newShape []uint32
			if rank < webnnShapeRank {
				newShape = padTo4D(shape)
			} else {
				newShape, err = foldTo4D(shape)
				if err != nil {
					return fmt.Errorf("%s: %w", opType, err)
				}
			}
			input = mb.Builder().Reshape(input, newShape, webnn.OperatorOptions{
				Label: node.Name + "_reshape_input",
			})
		}
		output = mb.Builder().InstanceNormalization(input, opts)
		// Restore the original shape; element count is conserved by
		// construction, so this reshape cannot fail on size grounds.
		if rank != webnnShapeRank {
			output = mb.Builder().Reshape(output, shape, webnn.OperatorOptions{
				Label: node.Name + "reshape_output",
			})
		}

	default:
		return fmt.Errorf("unsupported normalization op %s: %w", opType, ErrInvalidArgument)
	}

	return mb.AddOperand(node.Outputs[0], output)
}

// padTo4D pads a shape of rank < 4 to rank 4 by inserting size-1 dimensions
// immediately after the first two dimensions, so a [batch, channel, length]
// input becomes [batch, channel, 1, length].
func padTo4D(shape []uint32) []uint32 {
	insert := len(shape)
	if insert > 2 {
		insert = 2
	}
	padded := make([]uint32, 0, webnnShapeRank)
	padded = append(padded, shape[:insert]...)
	for i := len(shape); i < webnnShapeRank; i++ {
		padded = append(padded, 1)
	}
	return append(padded, shape[insert:]...)
}

// foldTo4D folds a shape of rank > 4 to rank 4 by multiplying the trailing
// dimensions starting at index 3 into a single dimension.
func foldTo4D(shape []uint32) ([]uint32, error) {
	product := uint64(1)
	for _, dim := range shape[webnnShapeRank-1:] {
		product *= uint64(dim)
	}
	folded, err := safecast.Conv[uint32](product)
	if err != nil {
		return nil, fmt.Errorf("folded dimension %d does not fit in uint32: %w", product, ErrInvalidArgument)
	}
	out := make([]uint32, 0, webnnShapeRank)
	out = append(out, shape[:webnnShapeRank-1]...)
	return append(out, folded), nil
}
