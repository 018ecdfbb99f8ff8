// Package stats summarizes the locality of a curve traversal: how far
// consecutive indices land from each other on the grid. Hilbert always
// steps by one; Morton's jumps show why it orders worse for range scans.
package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/spacefill/spacefill/internal/constants"
	"github.com/spacefill/spacefill/internal/core"
	"github.com/spacefill/spacefill/internal/curve"
	"github.com/spacefill/spacefill/internal/schemas"
)

// Stats describes the step lengths of one traversal. A step is the
// Manhattan distance between the points at consecutive indices.
type Stats struct {
	Kind     string  `json:"kind"`
	Order    int     `json:"order"`
	Cells    int64   `json:"cells"`
	Steps    int64   `json:"steps"`
	Adjacent int64   `json:"adjacent"`
	MaxStep  int64   `json:"maxStep"`
	MeanStep float64 `json:"meanStep"`
}

var GetCurveStats = core.RegisterCurveComputation("stats", func(ctx context.Context, kind curve.Kind, order int) (Stats, error) {
	ix, err := curve.New(kind, order)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		Kind:  string(kind),
		Order: order,
		Cells: ix.Cells(),
	}

	var prev curve.Point
	var total int64
	for i, p := range curve.Points(ix) {
		if i > 0 {
			step := abs(p.X-prev.X) + abs(p.Y-prev.Y)
			stats.Steps++
			total += step
			if step == 1 {
				stats.Adjacent++
			}
			if step > stats.MaxStep {
				stats.MaxStep = step
			}
		}
		prev = p
	}

	if stats.Steps > 0 {
		stats.MeanStep = float64(total) / float64(stats.Steps)
	}

	return stats, nil
})

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func StatsHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	kind := curve.Kind(ps.ByName("kind"))

	rawOrder := ps.ByName("order")
	if rawOrder == "" {
		http.Error(w, "order must be set", http.StatusBadRequest)
		return
	}
	order, err := strconv.Atoi(rawOrder)
	if err != nil {
		http.Error(w, "order must be number", http.StatusBadRequest)
		return
	}

	if order > constants.MaxPathOrder {
		http.Error(w, fmt.Sprintf("order %d too large for stats (max %d)", order, constants.MaxPathOrder), http.StatusBadRequest)
		return
	}

	stats, err := GetCurveStats(r.Context(), kind, order)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, curve.ErrInvalidOrder) || errors.Is(err, curve.ErrUnknownKind) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func init() {
	core.RegisterRoute(core.Route{
		Id:      "stats.curve",
		Method:  http.MethodGet,
		Path:    "/api/stats/:kind/:order",
		Handler: StatsHandler,
	})

	schemas.Register("stats.Stats", Stats{})
}
