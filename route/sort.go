package route

import (
	"sort"

	"github.com/a-bouts/route-planner/latlon"
)

// Sort returns a copy of points ordered for the given starting direction:
// northernmost first for North, southernmost first for South, easternmost
// first for East and westernmost first for West. Points sharing the same key
// keep their input order.
func Sort(points []latlon.LatLon, d Direction) []latlon.LatLon {
	sorted := make([]latlon.LatLon, len(points))
	copy(sorted, points)

	var less func(a, b latlon.LatLon) bool
	switch d {
	case North:
		less = func(a, b latlon.LatLon) bool { return a.Lat > b.Lat }
	case South:
		less = func(a, b latlon.LatLon) bool { return a.Lat < b.Lat }
	case East:
		less = func(a, b latlon.LatLon) bool { return a.Lon > b.Lon }
	case West:
		less = func(a, b latlon.LatLon) bool { return a.Lon < b.Lon }
	default:
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	return sorted
}
