// Package features pulls in every feature package so their init-time route
// and schema registrations run.
package features

import (
	_ "github.com/spacefill/spacefill/internal/features/api"
	_ "github.com/spacefill/spacefill/internal/features/quadtree"
	_ "github.com/spacefill/spacefill/internal/features/stats"
	_ "github.com/spacefill/spacefill/internal/features/varz"
)
