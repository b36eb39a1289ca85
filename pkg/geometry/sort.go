package geometry

import "slices"

// SortEdges sorts edges by length in place. The sort is stable, so edges
// whose lengths differ by less than 1 keep their relative order.
func SortEdges(edges []Edge) {
	slices.SortStableFunc(edges, Edge.Compare)
}

// SortSurfaces stably sorts surfaces by area in place.
func SortSurfaces[S Surface](surfaces []S) {
	slices.SortStableFunc(surfaces, func(a, b S) int {
		return CompareSurfaces(a, b)
	})
}

// SortSolids stably sorts solids by volume in place.
func SortSolids[S Solid](solids []S) {
	slices.SortStableFunc(solids, func(a, b S) int {
		return CompareSolids(a, b)
	})
}
