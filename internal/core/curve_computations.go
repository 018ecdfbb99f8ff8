package core

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/spacefill/spacefill/internal/curve"
	"github.com/vmihailenco/msgpack/v5"
)

// CurveFunc computes a derived value for one curve kind at one order.
type CurveFunc[T any] func(ctx context.Context, kind curve.Kind, order int) (T, error)

func wrapCurveFuncWithCaching[T any](id string, execute CurveFunc[T]) CurveFunc[T] {
	return func(ctx context.Context, kind curve.Kind, order int) (T, error) {
		c := GetCache()
		key := GenerateCacheKey(id, string(kind), fmt.Sprintf("%d", order))

		if cached, err := c.Get(key); err == nil {
			var result T
			err := msgpack.Unmarshal(cached, &result)

			if err != nil {
				var zero T
				return zero, err
			}

			return result, nil
		}

		result, err := execute(ctx, kind, order)
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

// CurveComputation is a registered, cached curve computation.
type CurveComputation struct {
	Id      string
	Execute CurveFunc[interface{}]
}

var curveComputations map[string]CurveComputation = make(map[string]CurveComputation)

func RegisterCurveComputation[T any](id string, execute CurveFunc[T]) CurveFunc[T] {
	mu.Lock()
	defer mu.Unlock()

	if _, found := curveComputations[id]; found {
		panic(fmt.Sprintf("curve computation already registered %s", id))
	}

	wrapped := wrapCurveFuncWithCaching(id, execute)

	// Store as interface{} so heterogeneous result types share one registry
	interfaceWrapped := func(ctx context.Context, kind curve.Kind, order int) (interface{}, error) {
		return wrapped(ctx, kind, order)
	}

	curveComputations[id] = CurveComputation{
		Id:      id,
		Execute: interfaceWrapped,
	}

	return wrapped
}

func GetCurveComputation(id string) (CurveComputation, bool) {
	mu.RLock()
	defer mu.RUnlock()

	c, found := curveComputations[id]
	return c, found
}

func ListCurveComputations() []string {
	mu.RLock()
	defer mu.RUnlock()

	ids := make([]string, 0, len(curveComputations))
	for id := range curveComputations {
		ids = append(ids, id)
	}
	return ids
}

func ResetCurveComputationsForTesting() {
	mu.Lock()
	defer mu.Unlock()
	curveComputations = make(map[string]CurveComputation)
}

func GenerateCacheKey(parts ...string) string {
	versionedParts := append([]string{GetVersion()}, parts...)
	combined := strings.Join(versionedParts, ":")
	h := sha256.Sum256([]byte(combined))
	return fmt.Sprintf("%x", h)
}
