package hydraulic

// interpolate performs piecewise-linear interpolation of ys against the
// ordered breakpoints xs at x. Out-of-range inputs clamp to the nearest
// endpoint value; this is total over the real line by construction.
//
// xs must be non-decreasing and the same length as ys; both must have at
// least two points. Breakpoint tables in this package are fixed array
// literals checked once at construction, so the loop below is a plain
// linear scan rather than a binary search - the tables are nine points
// long at most.
func interpolate(xs, ys []float64, x float64) float64 {
	n := len(xs)
	if x <= xs[0] {
		return ys[0]
	}
	if x >= xs[n-1] {
		return ys[n-1]
	}

	idx := 1
	for idx < n-1 && x >= xs[idx] {
		idx++
	}

	x0, x1 := xs[idx-1], xs[idx]
	y0, y1 := ys[idx-1], ys[idx]
	return y0 + (x-x0)/(x1-x0)*(y1-y0)
}

// validateTable reports whether xs/ys form a usable interpolation table:
// equal length, at least two points, and a non-decreasing x-axis.
func validateTable(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return errTableLengthMismatch
	}
	if len(xs) < 2 {
		return errTableTooShort
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] < xs[i-1] {
			return errTableNotMonotonic
		}
	}
	return nil
}
