package lowering

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/webnn-go/webnn/internal/ir"
)

// HandleNegativeAxis maps a possibly-negative axis attribute to a
// non-negative dimension index: axis in [-rank, rank-1] maps to axis+rank
// when negative.
func HandleNegativeAxis(axis int64, rank int) int64 {
	if axis < 0 {
		return axis + int64(rank)
	}
	return axis
}

// toUint32Shape converts an IR shape to the target's unsigned dimensions.
// A dimension that does not fit in uint32 is a hard failure, never a silent
// truncation.
func toUint32Shape(shape []int64) ([]uint32, error) {
	out := make([]uint32, len(shape))
	for i, dim := range shape {
		d, err := safecast.Conv[uint32](dim)
		if err != nil {
			return nil, fmt.Errorf("dimension %d (%d) does not fit in uint32: %w", i, dim, ErrInvalidArgument)
		}
		out[i] = d
	}
	return out, nil
}

// isSupportedFloatType reports whether dt is one of the element types the
// WebNN normalization operations accept.
func isSupportedFloatType(dt ir.DataType) bool {
	return dt == ir.Float || dt == ir.Float16
}

// shapesEqual compares two shapes dimension by dimension.
func shapesEqual(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
