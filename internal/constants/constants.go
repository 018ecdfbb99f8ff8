package constants

import "time"

// MaxOrder is the largest curve order an indexer will accept. At order 31
// the grid has 2^62 cells, the largest square count that fits an int64
// index.
const MaxOrder = 31

// MaxPathOrder caps the orders for which the HTTP API will materialize a
// full path. Order 12 is a 4096x4096 grid, ~16M points.
const MaxPathOrder = 12

// PathCacheTTL bounds how long packed paths stay in the cache.
const PathCacheTTL = 30 * time.Minute
