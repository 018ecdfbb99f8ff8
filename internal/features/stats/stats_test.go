package stats

import (
	"context"
	"testing"

	"github.com/spacefill/spacefill/internal/curve"
)

func TestHilbertStatsAllAdjacent(t *testing.T) {
	for order := 1; order <= 4; order++ {
		stats, err := GetCurveStats(context.Background(), curve.KindHilbert, order)
		if err != nil {
			t.Fatalf("GetCurveStats(hilbert, %d) failed: %v", order, err)
		}

		wantSteps := stats.Cells - 1
		if stats.Steps != wantSteps {
			t.Errorf("order %d: steps = %d, want %d", order, stats.Steps, wantSteps)
		}
		if stats.Adjacent != wantSteps {
			t.Errorf("order %d: adjacent = %d, want %d", order, stats.Adjacent, wantSteps)
		}
		if stats.MaxStep != 1 {
			t.Errorf("order %d: maxStep = %d, want 1", order, stats.MaxStep)
		}
		if stats.MeanStep != 1.0 {
			t.Errorf("order %d: meanStep = %v, want 1.0", order, stats.MeanStep)
		}
	}
}

func TestMortonStatsOrder2(t *testing.T) {
	stats, err := GetCurveStats(context.Background(), curve.KindMorton, 2)
	if err != nil {
		t.Fatalf("GetCurveStats(morton, 2) failed: %v", err)
	}

	if stats.Steps != 15 {
		t.Errorf("steps = %d, want 15", stats.Steps)
	}
	if stats.Adjacent != 8 {
		t.Errorf("adjacent = %d, want 8", stats.Adjacent)
	}
	if stats.MaxStep != 4 {
		t.Errorf("maxStep = %d, want 4", stats.MaxStep)
	}
	if stats.MeanStep != 1.6 {
		t.Errorf("meanStep = %v, want 1.6", stats.MeanStep)
	}
}

func TestStatsErrors(t *testing.T) {
	if _, err := GetCurveStats(context.Background(), "peano", 2); err == nil {
		t.Error("expected error for unknown kind")
	}
	if _, err := GetCurveStats(context.Background(), curve.KindHilbert, 0); err == nil {
		t.Error("expected error for invalid order")
	}
}
