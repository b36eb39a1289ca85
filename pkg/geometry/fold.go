package geometry

import (
	"iter"
	"math"
	"slices"
)

// Fold applies f successively over seq in iteration order, starting from st0,
// and returns the final state.
func Fold[T, S any](seq iter.Seq[T], st0 S, f func(S, T) S) S {
	st := st0
	for e := range seq {
		st = f(st, e)
	}
	return st
}

// SumBy returns the sum of f over seq, accumulated in sequence order from 0.
func SumBy[T any](seq iter.Seq[T], f func(T) float64) float64 {
	return Fold(seq, 0.0, func(acc float64, e T) float64 {
		return acc + f(e)
	})
}

// CompareBy orders a and b by the projection f. The difference f(a)-f(b)
// is truncated toward zero, so values less than 1.0 apart compare equal.
// Differences beyond the 32-bit range saturate and NaN compares equal.
func CompareBy[T any](a, b T, f func(T) float64) int {
	return narrow(f(a) - f(b))
}

// narrow truncates d toward zero into the int32 range.
func narrow(d float64) int {
	switch {
	case math.IsNaN(d):
		return 0
	case d >= math.MaxInt32:
		return math.MaxInt32
	case d <= math.MinInt32:
		return math.MinInt32
	}
	return int(d)
}

// TotalArea sums the areas of surfaces.
func TotalArea[S Surface](surfaces []S) float64 {
	return SumBy(slices.Values(surfaces), func(s S) float64 { return s.Area() })
}

// TotalVolume sums the volumes of solids.
func TotalVolume[S Solid](solids []S) float64 {
	return SumBy(slices.Values(solids), func(s S) float64 { return s.Volume() })
}
