package core

import (
	"context"
	"fmt"
	"unsafe"

	"github.com/spacefill/spacefill/internal/constants"
	"github.com/spacefill/spacefill/internal/curve"
)

// int32SliceToBytes converts []int32 to []byte using unsafe for zero-copy
func int32SliceToBytes(slice []int32) []byte {
	if len(slice) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&slice[0])), len(slice)*4)
}

// bytesToInt32Slice converts []byte to []int32 using unsafe for zero-copy
func bytesToInt32Slice(data []byte) []int32 {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*int32)(unsafe.Pointer(&data[0])), len(data)/4)
}

// PackPath flattens a path into interleaved x,y pairs. Coordinates fit
// int32 for every order the HTTP API materializes.
func PackPath(points []curve.Point) []int32 {
	packed := make([]int32, 0, len(points)*2)
	for _, p := range points {
		packed = append(packed, int32(p.X), int32(p.Y))
	}
	return packed
}

// PathFunc produces a packed path for one curve kind at one order.
type PathFunc func(ctx context.Context, kind curve.Kind, order int) ([]int32, error)

type PathComputation struct {
	Id      string
	Execute PathFunc
}

var pathComputations map[string]PathComputation = make(map[string]PathComputation)

func wrapPathFuncWithCaching(id string, execute PathFunc) PathFunc {
	return func(ctx context.Context, kind curve.Kind, order int) ([]int32, error) {
		cacheKey := GenerateCacheKey(id, string(kind), fmt.Sprintf("%d", order))

		if cached, err := theCache.Get(cacheKey); err == nil {
			return bytesToInt32Slice(cached), nil
		}

		result, err := execute(ctx, kind, order)
		if err != nil {
			return nil, err
		}

		theCache.Add(cacheKey, int32SliceToBytes(result), constants.PathCacheTTL)

		return result, nil
	}
}

func RegisterPathComputation(id string, execute PathFunc) PathFunc {
	mu.Lock()
	defer mu.Unlock()

	if _, found := pathComputations[id]; found {
		panic(fmt.Sprintf("path computation already registered %s", id))
	}

	wrapped := wrapPathFuncWithCaching(id, execute)

	pathComputations[id] = PathComputation{
		Id:      id,
		Execute: wrapped,
	}

	return wrapped
}

func GetPathComputation(id string) (PathComputation, bool) {
	mu.RLock()
	defer mu.RUnlock()

	c, found := pathComputations[id]
	return c, found
}

func ListPathComputations() []string {
	mu.RLock()
	defer mu.RUnlock()

	ids := make([]string, 0, len(pathComputations))
	for id := range pathComputations {
		ids = append(ids, id)
	}
	return ids
}

func ResetPathComputationsForTesting() {
	mu.Lock()
	defer mu.Unlock()
	pathComputations = make(map[string]PathComputation)
}
