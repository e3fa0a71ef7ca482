package hydraulic

import "math"

// Debug enables runtime assertions that catch non-finite arithmetic.
// Every clamp and every division in this package has a static
// non-zero denominator, so a NaN/Inf appearing in practice is a
// programmer error, not a modeled failure mode. Off by default since
// the checks run on every sub-step.
var Debug = false

// assertFinite panics if Debug is enabled and v is not finite. It exists
// to catch regressions during development; production builds leave
// Debug false and pay nothing for it beyond the branch.
func assertFinite(name string, v float64) {
	if !Debug {
		return
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic("hydraulic: non-finite value for " + name)
	}
}
