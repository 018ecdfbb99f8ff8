package curve

import "iter"

// Path materializes the full traversal of ix: element i is the point for
// index i. The result has exactly ix.Cells() elements.
func Path(ix Indexer) ([]Point, error) {
	cells := ix.Cells()
	points := make([]Point, 0, cells)
	for i := int64(0); i < cells; i++ {
		p, err := ix.IndexToPoint(i)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

// Points returns the traversal as a lazy sequence of (index, point) pairs.
// The sequence is finite and restartable: each range starts over at index
// zero. Every point depends only on its own index, so callers that need
// arbitrary access order should use the indexer directly.
func Points(ix Indexer) iter.Seq2[int64, Point] {
	return func(yield func(int64, Point) bool) {
		cells := ix.Cells()
		for i := int64(0); i < cells; i++ {
			p, err := ix.IndexToPoint(i)
			if err != nil {
				return
			}
			if !yield(i, p) {
				return
			}
		}
	}
}
