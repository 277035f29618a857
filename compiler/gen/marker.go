package gen

import "strconv"

// Marker is the position marker identity for one global index. A single
// marker serves every arity that has that position.
type Marker struct {
	Index int
}

// Name returns the Go type name of the marker.
func (m Marker) Name() string {
	return "Index" + strconv.Itoa(m.Index)
}

// Markers returns the n markers Index0 through Index(n-1).
func Markers(n int) []Marker {
	if n <= 0 {
		return nil
	}
	ms := make([]Marker, n)
	for i := range ms {
		ms[i] = Marker{Index: i}
	}
	return ms
}
