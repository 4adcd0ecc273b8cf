package ir

// TensorInfo holds the static metadata the lowering pass needs for one tensor.
//
// A negative dimension marks a dynamic (symbolic) size, following the ONNX
// convention; such shapes count as unresolved.
type TensorInfo struct {
	Shape []int64
	DType DataType
}

// Graph is an IR graph: an ordered node list plus per-tensor metadata.
//
// Inputs names the tensors supplied from outside the graph (model inputs and
// initializers alike); Outputs names the tensors the graph produces.
type Graph struct {
	Name    string
	Nodes   []Node
	Inputs  []string
	Outputs []string
	Values  map[string]TensorInfo
}

// Shape returns the statically resolved shape of the named tensor.
// It reports ok=false when the tensor is unknown or any dimension is dynamic.
func (g *Graph) Shape(name string) ([]int64, bool) {
	info, ok := g.Values[name]
	if !ok {
		return nil, false
	}
	for _, dim := range info.Shape {
		if dim < 0 {
			return nil, false
		}
	}
	return info.Shape, true
}

// DType returns the element type of the named tensor.
// It reports ok=false when the tensor is unknown or its type is unset.
func (g *Graph) DType(name string) (DataType, bool) {
	info, ok := g.Values[name]
	if !ok || info.DType == Undefined {
		return Undefined, false
	}
	return info.DType, true
}
