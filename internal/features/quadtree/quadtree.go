// Package quadtree encodes curve index ranges as compact quadtrees.
//
// Both supported curves visit each grid quadrant as one contiguous index
// range, so a range [start, end) covers a set of quadtree nodes that can be
// found by splitting index ranges in four. Consumers use the encoding to
// cull grid regions that a path segment never touches.
package quadtree

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/spacefill/spacefill/internal/core"
	"github.com/spacefill/spacefill/internal/curve"
	"github.com/spacefill/spacefill/internal/schemas"
)

// ErrInvalidRange is returned for a range outside [0, cells] or with
// start > end.
var ErrInvalidRange = errors.New("quadtree: invalid range")

// rangeToQuadtree builds a pre-order binary encoded quadtree for the given
// index range using 4-bit child masks. A zero mask marks a node fully
// inside the range; otherwise each set bit names a child that intersects
// the range and is encoded next. The nibble stream is base64 encoded.
func rangeToQuadtree(start, end, cells int64) string {
	if start >= end {
		return ""
	}

	var buffer []byte
	currentByte := byte(0)
	bitsUsed := 0

	addMask := func(mask byte) {
		if bitsUsed == 0 {
			currentByte = mask << 4
			bitsUsed = 4
		} else {
			currentByte |= mask
			buffer = append(buffer, currentByte)
			currentByte = 0
			bitsUsed = 0
		}
	}

	var processNode func(nodeStart, nodeEnd int64)
	processNode = func(nodeStart, nodeEnd int64) {
		if nodeEnd <= start || nodeStart >= end {
			return
		}

		if nodeStart >= start && nodeEnd <= end {
			addMask(0)
			return
		}

		quarter := (nodeEnd - nodeStart) / 4
		childMask := byte(0)

		for i := int64(0); i < 4; i++ {
			childStart := nodeStart + i*quarter
			childEnd := childStart + quarter

			if childEnd > start && childStart < end {
				childMask |= 1 << i
			}
		}

		addMask(childMask)

		for i := int64(0); i < 4; i++ {
			if childMask&(1<<i) != 0 {
				childStart := nodeStart + i*quarter
				processNode(childStart, childStart+quarter)
			}
		}
	}

	processNode(0, cells)

	if bitsUsed > 0 {
		buffer = append(buffer, currentByte)
	}

	return base64.StdEncoding.EncodeToString(buffer)
}

var GetRangeQuadtree = core.RegisterRangeComputation("quadtree", func(ctx context.Context, order int, start, end int64) (string, error) {
	_, cells, err := curve.Dims(order)
	if err != nil {
		return "", err
	}

	if start < 0 || end > cells || start > end {
		return "", fmt.Errorf("%w: [%d,%d) on %d cells", ErrInvalidRange, start, end, cells)
	}

	return rangeToQuadtree(start, end, cells), nil
})

// QuadtreeResponse carries the encoded tree for one range.
type QuadtreeResponse struct {
	Order int    `json:"order"`
	Start int64  `json:"start"`
	End   int64  `json:"end"`
	Tree  string `json:"tree"`
}

func QuadtreeHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
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

	rawStart := ps.ByName("start")
	if rawStart == "" {
		http.Error(w, "start must be set", http.StatusBadRequest)
		return
	}
	start, err := strconv.ParseInt(rawStart, 10, 64)
	if err != nil {
		http.Error(w, "start must be number", http.StatusBadRequest)
		return
	}

	rawEnd := ps.ByName("end")
	if rawEnd == "" {
		http.Error(w, "end must be set", http.StatusBadRequest)
		return
	}
	end, err := strconv.ParseInt(rawEnd, 10, 64)
	if err != nil {
		http.Error(w, "end must be number", http.StatusBadRequest)
		return
	}

	tree, err := GetRangeQuadtree(r.Context(), order, start, end)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrInvalidRange) || errors.Is(err, curve.ErrInvalidOrder) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}

	response := QuadtreeResponse{
		Order: order,
		Start: start,
		End:   end,
		Tree:  tree,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func init() {
	core.RegisterRoute(core.Route{
		Id:      "quadtree.range",
		Method:  http.MethodGet,
		Path:    "/api/quadtree/:order/:start/:end",
		Handler: QuadtreeHandler,
	})

	schemas.Register("quadtree.QuadtreeResponse", QuadtreeResponse{})
}
