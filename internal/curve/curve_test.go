package curve

import (
	"errors"
	"testing"
)

func TestNewDispatchesOnKind(t *testing.T) {
	tests := []struct {
		kind Kind
		want Kind
	}{
		{KindHilbert, KindHilbert},
		{KindMorton, KindMorton},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			ix, err := New(tt.kind, 3)
			if err != nil {
				t.Fatalf("New(%q, 3) failed: %v", tt.kind, err)
			}
			if ix.Kind() != tt.want {
				t.Errorf("Kind() = %q, want %q", ix.Kind(), tt.want)
			}
			if ix.Order() != 3 {
				t.Errorf("Order() = %d, want 3", ix.Order())
			}
			if ix.Side() != 8 {
				t.Errorf("Side() = %d, want 8", ix.Side())
			}
			if ix.Cells() != 64 {
				t.Errorf("Cells() = %d, want 64", ix.Cells())
			}
		})
	}
}

func TestNewUnknownKind(t *testing.T) {
	_, err := New("peano", 3)
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("New(\"peano\", 3) error = %v, want ErrUnknownKind", err)
	}
}

func TestNewInvalidOrder(t *testing.T) {
	tests := []int{0, -1, -31, 32, 100}
	for _, order := range tests {
		for _, kind := range Kinds() {
			_, err := New(kind, order)
			if !errors.Is(err, ErrInvalidOrder) {
				t.Errorf("New(%q, %d) error = %v, want ErrInvalidOrder", kind, order, err)
			}
		}
	}
}

func TestGridDimensions(t *testing.T) {
	tests := []struct {
		order int
		side  int64
		cells int64
	}{
		{1, 2, 4},
		{2, 4, 16},
		{3, 8, 64},
		{10, 1024, 1048576},
		{31, 1 << 31, 1 << 62},
	}

	for _, tt := range tests {
		g, err := newGrid(tt.order)
		if err != nil {
			t.Fatalf("newGrid(%d) failed: %v", tt.order, err)
		}
		if g.Side() != tt.side {
			t.Errorf("newGrid(%d).Side() = %d, want %d", tt.order, g.Side(), tt.side)
		}
		if g.Cells() != tt.cells {
			t.Errorf("newGrid(%d).Cells() = %d, want %d", tt.order, g.Cells(), tt.cells)
		}
	}
}

func TestFitOrder(t *testing.T) {
	tests := []struct {
		cells int64
		want  int
	}{
		{1, 1},
		{4, 1},
		{5, 2},
		{16, 2},
		{17, 3},
		{64, 3},
		{65, 4},
		{256, 4},
		{257, 5},
	}

	for _, tt := range tests {
		got := FitOrder(tt.cells)
		if got != tt.want {
			t.Errorf("FitOrder(%d) = %d, want %d", tt.cells, got, tt.want)
		}
	}
}
