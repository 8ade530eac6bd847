package contracts

// Point is a single (label, value) pair in a series.
type Point struct {
	X string  `json:"x"`
	Y float64 `json:"y"`
}

// Series is an ordered sequence of points. Insertion order is display order
// (chronological or rank order, depending on the producing query). A series
// of length zero is a valid outcome, distinct from a failed query.
type Series []Point

// Labels returns the x labels in series order.
func (s Series) Labels() []string {
	labels := make([]string, len(s))
	for i, p := range s {
		labels[i] = p.X
	}
	return labels
}

// Values returns the y values in series order.
func (s Series) Values() []float64 {
	values := make([]float64, len(s))
	for i, p := range s {
		values[i] = p.Y
	}
	return values
}

// Sum returns the total of all y values.
func (s Series) Sum() float64 {
	var total float64
	for _, p := range s {
		total += p.Y
	}
	return total
}

// MaxIndex returns the index of the largest y value. Ties resolve to the
// first occurrence in series order. Returns -1 for an empty series.
func (s Series) MaxIndex() int {
	if len(s) == 0 {
		return -1
	}
	max := 0
	for i := 1; i < len(s); i++ {
		if s[i].Y > s[max].Y {
			max = i
		}
	}
	return max
}
