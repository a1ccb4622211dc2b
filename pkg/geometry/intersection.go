package geometry

import "sort"

// Intersection is one crossing of a ray with a shape. Object indexes the
// shape in the slice the ray was intersected against.
type Intersection struct {
	T      float64
	Object int
}

// Intersections is a list of crossings kept in ascending order of T
type Intersections []Intersection

// NewIntersections returns the given crossings sorted by T
func NewIntersections(xs ...Intersection) Intersections {
	sorted := make(Intersections, len(xs))
	copy(sorted, xs)
	sorted.sort()
	return sorted
}

// Merge returns the union of both lists, sorted by T
func (xs Intersections) Merge(other Intersections) Intersections {
	merged := make(Intersections, 0, len(xs)+len(other))
	merged = append(merged, xs...)
	merged = append(merged, other...)
	merged.sort()
	return merged
}

func (xs Intersections) sort() {
	sort.SliceStable(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
}

// Hit returns the closest crossing in front of the ray origin. A crossing at
// exactly t = 0 is the surface the ray started on and is not a hit.
func (xs Intersections) Hit() (Intersection, bool) {
	for _, x := range xs {
		if x.T > 0 {
			return x, true
		}
	}
	return Intersection{}, false
}
