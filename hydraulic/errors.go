package hydraulic

import "errors"

// Construction-time validation errors. These are the only failable
// operations in this package - every runtime step is total.
var (
	errTableLengthMismatch = errors.New("hydraulic: displacement table breakpoints/values length mismatch")
	errTableTooShort       = errors.New("hydraulic: displacement table needs at least two points")
	errTableNotMonotonic   = errors.New("hydraulic: displacement table breakpoints must be non-decreasing")
	errNonPositiveBulk     = errors.New("hydraulic: fluid bulk modulus must be > 0")
	errNonPositiveVolume   = errors.New("hydraulic: volume must be > 0")
)
