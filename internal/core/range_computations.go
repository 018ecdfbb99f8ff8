package core

import (
	"context"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// RangeFunc computes a derived value for a half-open index range
// [start, end) on a grid of the given order.
type RangeFunc[T any] func(ctx context.Context, order int, start, end int64) (T, error)

func wrapRangeFuncWithCaching[T any](id string, execute RangeFunc[T]) RangeFunc[T] {
	return func(ctx context.Context, order int, start, end int64) (T, error) {
		c := GetCache()
		key := GenerateCacheKey(id, fmt.Sprintf("%d", order), fmt.Sprintf("%d", start), fmt.Sprintf("%d", end))

		if cached, err := c.Get(key); err == nil {
			var result T
			err := msgpack.Unmarshal(cached, &result)

			if err != nil {
				var zero T
				return zero, err
			}

			return result, nil
		}

		result, err := execute(ctx, order, start, end)
		if err != nil {
			var zero T
			return zero, err
		}

		serialized, err := msgpack.Marshal(result)
		if err != nil {
			var zero T
			return zero, err
		}

		c.Add(key, serialized, 0)

		return result, nil
	}
}

type RangeComputation struct {
	Id      string
	Execute RangeFunc[interface{}]
}

var rangeComputations map[string]RangeComputation = make(map[string]RangeComputation)

func RegisterRangeComputation[T any](id string, execute RangeFunc[T]) RangeFunc[T] {
	mu.Lock()
	defer mu.Unlock()

	if _, found := rangeComputations[id]; found {
		panic(fmt.Sprintf("range computation already registered %s", id))
	}

	wrapped := wrapRangeFuncWithCaching(id, execute)

	interfaceWrapped := func(ctx context.Context, order int, start, end int64) (interface{}, error) {
		return wrapped(ctx, order, start, end)
	}

	rangeComputations[id] = RangeComputation{
		Id:      id,
		Execute: interfaceWrapped,
	}

	return wrapped
}

func GetRangeComputation(id string) (RangeComputation, bool) {
	mu.RLock()
	defer mu.RUnlock()

	c, found := rangeComputations[id]
	return c, found
}

func ListRangeComputations() []string {
	mu.RLock()
	defer mu.RUnlock()

	ids := make([]string, 0, len(rangeComputations))
	for id := range rangeComputations {
		ids = append(ids, id)
	}
	return ids
}

func ResetRangeComputationsForTesting() {
	mu.Lock()
	defer mu.Unlock()
	rangeComputations = make(map[string]RangeComputation)
}
