package math

// PrefixDistances holds cumulative path length along an ordered sequence of
// points. Entry i is the distance walked from point 0 to point i.
type PrefixDistances []float64

func NewPrefixDistances(points []Point) PrefixDistances {
	prefix := make(PrefixDistances, len(points))
	for i := 1; i < len(points); i++ {
		prefix[i] = prefix[i-1] + points[i-1].DistanceTo(points[i])
	}
	return prefix
}

// Between returns the path length from point i to point j. Walking backwards
// has no meaning here so j < i yields 0.
func (p PrefixDistances) Between(i, j int) float64 {
	if j <= i {
		return 0
	}
	return p[j] - p[i]
}
