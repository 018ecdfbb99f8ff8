package curve

// Morton maps indices along the Morton (Z-order) curve: even index bits
// form x, odd bits form y. Cheaper than Hilbert but consecutive indices are
// not always adjacent.
type Morton struct {
	grid
}

// NewMorton constructs a Morton indexer for a 2^order x 2^order grid.
func NewMorton(order int) (*Morton, error) {
	g, err := newGrid(order)
	if err != nil {
		return nil, err
	}
	return &Morton{grid: g}, nil
}

func (m *Morton) Kind() Kind { return KindMorton }

// IndexToPoint de-interleaves index: bit 2i becomes bit i of x, bit 2i+1
// becomes bit i of y.
func (m *Morton) IndexToPoint(index int64) (Point, error) {
	if err := m.checkIndex(index); err != nil {
		return Point{}, err
	}
	var x, y int64
	for i := 0; i < m.order; i++ {
		x |= ((index >> (2 * i)) & 1) << i
		y |= ((index >> (2*i + 1)) & 1) << i
	}
	return Point{X: x, Y: y}, nil
}

// PointToIndex interleaves the bits of x and y, the exact inverse of
// IndexToPoint.
func (m *Morton) PointToIndex(p Point) (int64, error) {
	if err := m.checkPoint(p); err != nil {
		return 0, err
	}
	var index int64
	for i := 0; i < m.order; i++ {
		index |= ((p.X >> i) & 1) << (2 * i)
		index |= ((p.Y >> i) & 1) << (2*i + 1)
	}
	return index, nil
}
