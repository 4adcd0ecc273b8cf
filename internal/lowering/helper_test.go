package lowering

import (
	"errors"
	"math"
	"testing"
)

func TestHandleNegativeAxis(t *testing.T) {
	tests := []struct {
		axis int64
		rank int
		want int64
	}{
		{-1, 4, 3},
		{-2, 4, 2},
		{-4, 4, 0},
		{0, 4, 0},
		{3, 4, 3},
		{1, 3, 1},
	}

	for _, tt := range tests {
		if got := HandleNegativeAxis(tt.axis, tt.rank); got != tt.want {
			t.Errorf("HandleNegativeAxis(%d, %d) = %d, want %d", tt.axis, tt.rank, got, tt.want)
		}
	}
}

func TestToUint32Shape(t *testing.T) {
	got, err := toUint32Shape([]int64{2, 8, 4, 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []uint32{2, 8, 4, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("dim %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestToUint32ShapeOverflow(t *testing.T) {
	for _, shape := range [][]int64{
		{2, -3},
		{2, math.MaxUint32 + 1},
	} {
		_, err := toUint32Shape(shape)
		if err == nil {
			t.Errorf("toUint32Shape(%v): expected error", shape)
		}
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("toUint32Shape(%v): error should wrap ErrInvalidArgument, got %v", shape, err)
		}
	}
}

func TestPadTo4D(t *testing.T) {
	tests := []struct {
		in   []uint32
		want []uint32
	}{
		{[]uint32{2, 4, 10}, []uint32{2, 4, 1, 10}},
		{[]uint32{4, 10}, []uint32{4, 10, 1, 1}},
		{[]uint32{10}, []uint32{10, 1, 1, 1}},
	}

	for _, tt := range tests {
		got := padTo4D(tt.in)
		if len(got) != 4 {
			t.Fatalf("padTo4D(%v) = %v, want rank 4", tt.in, got)
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("padTo4D(%v) = %v, want %v", tt.in, got, tt.want)
				break
			}
		}
	}
}

func TestFoldTo4D(t *testing.T) {
	tests := []struct {
		in   []uint32
		want []uint32
	}{
		{[]uint32{2, 4, 3, 5, 7}, []uint32{2, 4, 3, 35}},
		{[]uint32{2, 4, 3, 5, 7, 2}, []uint32{2, 4, 3, 70}},
	}

	for _, tt := range tests {
		got, err := foldTo4D(tt.in)
		if err != nil {
			t.Fatalf("foldTo4D(%v): %v", tt.in, err)
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("foldTo4D(%v) = %v, want %v", tt.in, got, tt.want)
				break
			}
		}
	}
}

func TestFoldTo4DOverflow(t *testing.T) {
	_, err := foldTo4D([]uint32{1, 1, 1, 1 << 20, 1 << 20})
	if err == nil {
		t.Fatal("expected overflow error")
	}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("error should wrap ErrInvalidArgument, got %v", err)
	}
}

// TestRankAdaptationRoundTrip checks that element count is invariant under the
// pad/fold transform for a range of ranks.
func TestRankAdaptationRoundTrip(t *testing.T) {
	shapes := [][]uint32{
		{7},
		{3, 7},
		{2, 4, 10},
		{2, 4, 3, 5, 7},
		{2, 3, 4, 5, 6, 7},
	}

	for _, shape := range shapes {
		var adapted []uint32
		if len(shape) < 4 {
			adapted = padTo4D(shape)
		} else {
			var err error
			adapted, err = foldTo4D(shape)
			if err != nil {
				t.Fatalf("foldTo4D(%v): %v", shape, err)
			}
		}
		if len(adapted) != 4 {
			t.Fatalf("adapting %v produced rank %d", shape, len(adapted))
		}
		if elementCount(adapted) != elementCount(shape) {
			t.Errorf("adapting %v to %v changed the element count", shape, adapted)
		}
	}
}

func elementCount(shape []uint32) uint64 {
	n := uint64(1)
	for _, dim := range shape {
		n *= uint64(dim)
	}
	return n
}
