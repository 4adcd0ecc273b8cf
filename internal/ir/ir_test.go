package ir

import "testing"

func TestAttributeAccessors(t *testing.T) {
	node := &Node{
		Name:   "bn0",
		OpType: "BatchNormalization",
		Attributes: []Attribute{
			{Name: "epsilon", F: 1e-3},
			{Name: "training_mode", I: 1},
			{Name: "axes", Ints: []int64{2, 3}},
			{Name: "mode", S: []byte("nearest")},
		},
	}

	if got := GetAttrFloat(node, "epsilon", 1e-5); got != 1e-3 {
		t.Errorf("GetAttrFloat(epsilon) = %v, want 1e-3", got)
	}
	if got := GetAttrFloat(node, "momentum", 0.9); got != 0.9 {
		t.Errorf("GetAttrFloat default = %v, want 0.9", got)
	}
	if got := GetAttrInt(node, "training_mode", 0); got != 1 {
		t.Errorf("GetAttrInt(training_mode) = %v, want 1", got)
	}
	if got := GetAttrInt(node, "axis", -1); got != -1 {
		t.Errorf("GetAttrInt default = %v, want -1", got)
	}
	if got := GetAttrInts(node, "axes"); len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Errorf("GetAttrInts(axes) = %v, want [2 3]", got)
	}
	if got := GetAttrInts(node, "perm"); got != nil {
		t.Errorf("GetAttrInts(perm) = %v, want nil", got)
	}
	if got := GetAttrString(node, "mode", "linear"); got != "nearest" {
		t.Errorf("GetAttrString(mode) = %q, want nearest", got)
	}
	if got := GetAttrString(node, "pads", "zeros"); got != "zeros" {
		t.Errorf("GetAttrString default = %q, want zeros", got)
	}
}

func TestHasInput(t *testing.T) {
	node := &Node{Inputs: []string{"x", "scale", "", "mean"}}

	tests := []struct {
		index int
		want  bool
	}{
		{0, true},
		{1, true},
		{2, false}, // absent optional input
		{3, true},
		{4, false}, // beyond arity
	}
	for _, tt := range tests {
		if got := node.HasInput(tt.index); got != tt.want {
			t.Errorf("HasInput(%d) = %v, want %v", tt.index, got, tt.want)
		}
	}
}

func TestGraphShape(t *testing.T) {
	g := &Graph{
		Values: map[string]TensorInfo{
			"x":   {Shape: []int64{2, 8, 4, 4}, DType: Float},
			"dyn": {Shape: []int64{-1, 8}, DType: Float},
		},
	}

	shape, ok := g.Shape("x")
	if !ok || len(shape) != 4 {
		t.Errorf("Shape(x) = %v, %v", shape, ok)
	}
	if _, ok := g.Shape("dyn"); ok {
		t.Error("dynamic shape should not resolve")
	}
	if _, ok := g.Shape("missing"); ok {
		t.Error("unknown tensor should not resolve")
	}
}

func TestGraphDType(t *testing.T) {
	g := &Graph{
		Values: map[string]TensorInfo{
			"x":       {Shape: []int64{2}, DType: Float16},
			"untyped": {Shape: []int64{2}},
		},
	}

	dt, ok := g.DType("x")
	if !ok || dt != Float16 {
		t.Errorf("DType(x) = %v, %v", dt, ok)
	}
	if _, ok := g.DType("untyped"); ok {
		t.Error("untyped tensor should not resolve")
	}
	if _, ok := g.DType("missing"); ok {
		t.Error("unknown tensor should not resolve")
	}
}

func TestDataTypeString(t *testing.T) {
	tests := []struct {
		dt   DataType
		want string
	}{
		{Float, "float32"},
		{Float16, "float16"},
		{Double, "float64"},
		{Int64, "int64"},
		{Undefined, "undefined"},
	}
	for _, tt := range tests {
		if got := tt.dt.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.dt, got, tt.want)
		}
	}
}
