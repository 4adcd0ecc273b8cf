// Package ir defines the portable computational-graph IR consumed by the
// WebNN lowering pass.
//
// The IR mirrors the ONNX node model: a node carries an operator type, ordered
// input and output tensor names, and a set of typed attributes. Tensor shape
// and element-type metadata live on the enclosing Graph, keyed by tensor name.
package ir

// Node represents one operation node in the IR graph.
//
// Inputs are ordered; an empty string marks an optional input that was not
// supplied. Outputs are ordered the same way. Name is a human-readable label
// carried through to emitted target-graph operations for diagnostics.
type Node struct {
	Name       string
	OpType     string      // operator type, e.g. "BatchNormalization"
	Inputs     []string    // input tensor names, "" = absent optional input
	Outputs    []string    // output tensor names
	Attributes []Attribute // operator attributes
}

// Attribute is a typed node attribute.
type Attribute struct {
	Name   string
	F      float32 // FLOAT value
	I      int64   // INT value
	S      []byte  // STRING value
	Floats []float32
	Ints   []int64
}

// GetAttrInt returns an integer attribute or the default value.
func GetAttrInt(node *Node, name string, defaultVal int64) int64 {
	for i := range node.Attributes {
		if node.Attributes[i].Name == name {
			return node.Attributes[i].I
		}
	}
	return defaultVal
}

// GetAttrFloat returns a float attribute or the default value.
func GetAttrFloat(node *Node, name string, defaultVal float32) float32 {
	for i := range node.Attributes {
		if node.Attributes[i].Name == name {
			return node.Attributes[i].F
		}
	}
	return defaultVal
}

// GetAttrInts returns an integer array attribute, or nil if absent.
func GetAttrInts(node *Node, name string) []int64 {
	for i := range node.Attributes {
		if node.Attributes[i].Name == name {
			return node.Attributes[i].Ints
		}
	}
	return nil
}

// GetAttrString returns a string attribute or the default value.
func GetAttrString(node *Node, name, defaultVal string) string {
	for i := range node.Attributes {
		if node.Attributes[i].Name == name {
			return string(node.Attributes[i].S)
		}
	}
	return defaultVal
}

// HasInput reports whether the node's input at index i is present.
func (n *Node) HasInput(i int) bool {
	return i < len(n.Inputs) && n.Inputs[i] != ""
}
