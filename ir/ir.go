// Package ir exposes the portable computational-graph IR that the lowering
// pass consumes.
//
// A Graph pairs an ordered node list with per-tensor static shape and element
// type metadata. Nodes reference tensors by name; an empty input name marks an
// optional input that was not supplied.
//
// Example:
//
//	g := &ir.Graph{
//	    Inputs: []string{"x", "scale"},
//	    Nodes: []ir.Node{{
//	        Name:    "ln0",
//	        OpType:  "LayerNormalization",
//	        Inputs:  []string{"x", "scale"},
//	        Outputs: []string{"y"},
//	    }},
//	    Values: map[string]ir.TensorInfo{
//	        "x":     {Shape: []int64{1, 8, 16}, DType: ir.Float},
//	        "scale": {Shape: []int64{16}, DType: ir.Float},
//	        "y":     {Shape: []int64{1, 8, 16}, DType: ir.Float},
//	    },
//	}
package ir

import (
	internalir "github.com/webnn-go/webnn/internal/ir"
)

// Node represents one operation node in the IR graph.
type Node = internalir.Node

// Attribute is a typed node attribute.
type Attribute = internalir.Attribute

// Graph is an IR graph: an ordered node list plus per-tensor metadata.
type Graph = internalir.Graph

// TensorInfo holds the static shape and element type of one tensor.
type TensorInfo = internalir.TensorInfo

// DataType identifies a tensor element type.
type DataType = internalir.DataType

// Element type tags, using the ONNX TensorProto.DataType numbering.
const (
	Undefined = internalir.Undefined
	Float     = internalir.Float
	Uint8     = internalir.Uint8
	Int8      = internalir.Int8
	Uint16    = internalir.Uint16
	Int16     = internalir.Int16
	Int32     = internalir.Int32
	Int64     = internalir.Int64
	String    = internalir.String
	Bool      = internalir.Bool
	Float16   = internalir.Float16
	Double    = internalir.Double
	Uint32    = internalir.Uint32
	Uint64    = internalir.Uint64
)

// GetAttrInt returns an integer attribute or the default value.
func GetAttrInt(node *Node, name string, defaultVal int64) int64 {
	return internalir.GetAttrInt(node, name, defaultVal)
}

// GetAttrFloat returns a float attribute or the default value.
func GetAttrFloat(node *Node, name string, defaultVal float32) float32 {
	return internalir.GetAttrFloat(node, name, defaultVal)
}

// GetAttrInts returns an integer array attribute, or nil if absent.
func GetAttrInts(node *Node, name string) []int64 {
	return internalir.GetAttrInts(node, name)
}

// GetAttrString returns a string attribute or the default value.
func GetAttrString(node *Node, name, defaultVal string) string {
	return internalir.GetAttrString(node, name, defaultVal)
}
