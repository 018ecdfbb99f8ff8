package curve

// Hilbert maps indices along the Hilbert curve. Consecutive indices always
// land on grid-adjacent cells.
type Hilbert struct {
	grid
}

// NewHilbert constructs a Hilbert indexer for a 2^order x 2^order grid.
func NewHilbert(order int) (*Hilbert, error) {
	g, err := newGrid(order)
	if err != nil {
		return nil, err
	}
	return &Hilbert{grid: g}, nil
}

func (h *Hilbert) Kind() Kind { return KindHilbert }

// rotate maps (x, y) into the frame of the quadrant selected by (rx, ry).
// For the two lower quadrants (ry == 0) the sub-curve runs transposed, and
// for the lower-right one (rx == 1) additionally reflected through the
// center of a w x w square.
func rotate(w, x, y, rx, ry int64) (int64, int64) {
	if ry == 0 {
		if rx == 1 {
			x = w - 1 - x
			y = w - 1 - y
		}
		x, y = y, x
	}
	return x, y
}

// IndexToPoint decodes index two bits per level, least significant pair
// first. Each level rotates the partial point into the quadrant frame
// before offsetting it by the current scale.
func (h *Hilbert) IndexToPoint(index int64) (Point, error) {
	if err := h.checkIndex(index); err != nil {
		return Point{}, err
	}
	var x, y int64
	t := index
	for s := int64(1); s < h.side; s <<= 1 {
		rx := (t >> 1) & 1
		ry := (t ^ rx) & 1
		x, y = rotate(s, x, y, rx, ry)
		x += s * rx
		y += s * ry
		t >>= 2
	}
	return Point{X: x, Y: y}, nil
}

// PointToIndex is the exact inverse of IndexToPoint.
func (h *Hilbert) PointToIndex(p Point) (int64, error) {
	if err := h.checkPoint(p); err != nil {
		return 0, err
	}
	var index int64
	x, y := p.X, p.Y
	for s := h.side / 2; s > 0; s >>= 1 {
		var rx, ry int64
		if x&s > 0 {
			rx = 1
		}
		if y&s > 0 {
			ry = 1
		}
		index += s * s * ((3 * rx) ^ ry)
		x, y = rotate(h.side, x, y, rx, ry)
	}
	return index, nil
}
