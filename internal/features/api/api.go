// Package api exposes the curve mappings over HTTP: full paths, single
// index-to-cell lookups and the inverse cell-to-index lookups.
package api

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

// PathResponse carries a full traversal. Points holds interleaved x,y
// pairs: points[2i] is x and points[2i+1] is y of the cell at index i.
type PathResponse struct {
	Kind   string  `json:"kind"`
	Order  int     `json:"order"`
	Side   int64   `json:"side"`
	Cells  int64   `json:"cells"`
	Points []int32 `json:"points"`
}

// PointResponse carries one index/cell mapping.
type PointResponse struct {
	Kind  string `json:"kind"`
	Order int    `json:"order"`
	Index int64  `json:"index"`
	X     int64  `json:"x"`
	Y     int64  `json:"y"`
}

// HomeResponse describes the service.
type HomeResponse struct {
	Service string   `json:"service"`
	Version string   `json:"version"`
	Curves  []string `json:"curves"`
}

var GetPath = core.RegisterPathComputation("path", func(ctx context.Context, kind curve.Kind, order int) ([]int32, error) {
	ix, err := curve.New(kind, order)
	if err != nil {
		return nil, err
	}
	points, err := curve.Path(ix)
	if err != nil {
		return nil, err
	}
	return core.PackPath(points), nil
})

func parseKind(raw string) (curve.Kind, error) {
	kind := curve.Kind(raw)
	for _, known := range curve.Kinds() {
		if kind == known {
			return kind, nil
		}
	}
	return "", fmt.Errorf("%w: %q", curve.ErrUnknownKind, raw)
}

func parseCurveParams(ps httprouter.Params) (curve.Kind, int, error) {
	kind, err := parseKind(ps.ByName("kind"))
	if err != nil {
		return "", 0, err
	}

	rawOrder := ps.ByName("order")
	if rawOrder == "" {
		return "", 0, fmt.Errorf("order must be set")
	}
	order, err := strconv.Atoi(rawOrder)
	if err != nil {
		return "", 0, fmt.Errorf("order must be number")
	}

	return kind, order, nil
}

// isUsageError reports whether err is the caller's fault.
func isUsageError(err error) bool {
	return errors.Is(err, curve.ErrInvalidOrder) ||
		errors.Is(err, curve.ErrUnknownKind) ||
		errors.Is(err, curve.ErrIndexOutOfRange) ||
		errors.Is(err, curve.ErrPointOutOfRange)
}

func PathHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	kind, order, err := parseCurveParams(ps)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if order > constants.MaxPathOrder {
		http.Error(w, fmt.Sprintf("order %d too large for a full path (max %d)", order, constants.MaxPathOrder), http.StatusBadRequest)
		return
	}

	ix, err := curve.New(kind, order)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	packed, err := GetPath(r.Context(), kind, order)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	response := PathResponse{
		Kind:   string(kind),
		Order:  order,
		Side:   ix.Side(),
		Cells:  ix.Cells(),
		Points: packed,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func PointHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	kind, order, err := parseCurveParams(ps)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rawIndex := ps.ByName("index")
	if rawIndex == "" {
		http.Error(w, "index must be set", http.StatusBadRequest)
		return
	}
	index, err := strconv.ParseInt(rawIndex, 10, 64)
	if err != nil {
		http.Error(w, "index must be number", http.StatusBadRequest)
		return
	}

	ix, err := curve.New(kind, order)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := ix.IndexToPoint(index)
	if err != nil {
		status := http.StatusInternalServerError
		if isUsageError(err) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}

	response := PointResponse{
		Kind:  string(kind),
		Order: order,
		Index: index,
		X:     p.X,
		Y:     p.Y,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func CellHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	kind, order, err := parseCurveParams(ps)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rawX := ps.ByName("x")
	if rawX == "" {
		http.Error(w, "x must be set", http.StatusBadRequest)
		return
	}
	x, err := strconv.ParseInt(rawX, 10, 64)
	if err != nil {
		http.Error(w, "x must be number", http.StatusBadRequest)
		return
	}

	rawY := ps.ByName("y")
	if rawY == "" {
		http.Error(w, "y must be set", http.StatusBadRequest)
		return
	}
	y, err := strconv.ParseInt(rawY, 10, 64)
	if err != nil {
		http.Error(w, "y must be number", http.StatusBadRequest)
		return
	}

	ix, err := curve.New(kind, order)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	index, err := ix.PointToIndex(curve.Point{X: x, Y: y})
	if err != nil {
		status := http.StatusInternalServerError
		if isUsageError(err) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}

	response := PointResponse{
		Kind:  string(kind),
		Order: order,
		Index: index,
		X:     x,
		Y:     y,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func HomeHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	curves := make([]string, 0, len(curve.Kinds()))
	for _, kind := range curve.Kinds() {
		curves = append(curves, string(kind))
	}

	response := HomeResponse{
		Service: "spacefill",
		Version: core.GetVersion(),
		Curves:  curves,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func init() {
	core.RegisterRoute(core.Route{
		Id:      "api.path",
		Method:  http.MethodGet,
		Path:    "/api/path/:kind/:order",
		Handler: PathHandler,
	})

	core.RegisterRoute(core.Route{
		Id:      "api.point",
		Method:  http.MethodGet,
		Path:    "/api/point/:kind/:order/:index",
		Handler: PointHandler,
	})

	core.RegisterRoute(core.Route{
		Id:      "api.cell",
		Method:  http.MethodGet,
		Path:    "/api/cell/:kind/:order/:x/:y",
		Handler: CellHandler,
	})

	core.RegisterRoute(core.Route{
		Id:      "home.index",
		Method:  http.MethodGet,
		Path:    "/",
		Handler: HomeHandler,
	})

	schemas.Register("api.PathResponse", PathResponse{})
	schemas.Register("api.PointResponse", PointResponse{})
	schemas.Register("api.HomeResponse", HomeResponse{})
}
