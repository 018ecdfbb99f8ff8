package varz

import (
	"encoding/json"
	"net/http"
	"runtime"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/spacefill/spacefill/internal/core"
	"github.com/spacefill/spacefill/internal/curve"
	"github.com/spacefill/spacefill/internal/schemas"
)

type VarzResponse struct {
	Version   string    `json:"version"`
	BuildTime string    `json:"build_time"`
	GoVersion string    `json:"go_version"`
	StartTime time.Time `json:"start_time"`
	Uptime    string    `json:"uptime"`
	Curves    []string  `json:"curves"`
}

var (
	buildTime = "unknown"
	startTime = time.Now()
)

func VarzHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	uptime := time.Since(startTime)

	curves := make([]string, 0, len(curve.Kinds()))
	for _, kind := range curve.Kinds() {
		curves = append(curves, string(kind))
	}

	response := VarzResponse{
		Version:   core.GetVersion(),
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
		StartTime: startTime,
		Uptime:    uptime.String(),
		Curves:    curves,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func init() {
	core.RegisterRoute(core.Route{
		Id:      "varz",
		Method:  http.MethodGet,
		Path:    "/api/varz",
		Handler: VarzHandler,
	})

	schemas.Register("varz.VarzResponse", VarzResponse{})
}
