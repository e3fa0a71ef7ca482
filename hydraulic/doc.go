// Package hydraulic implements the lumped-parameter hydraulic simulation
// core for a twin-engine commercial transport: three loops (Green, Yellow,
// Blue), engine-driven and electric pressure sources, and a Power Transfer
// Unit coupling Green and Yellow.
//
// Units are plain float64 throughout; the comment on every field and
// constant states its unit. The two conversion factors that matter
// (231 cubic inches per gallon, 60 seconds per minute) are centralized as
// named constants in pump.go rather than scattered as magic numbers.
package hydraulic
