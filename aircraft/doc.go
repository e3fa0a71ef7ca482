// Package aircraft wires the hydraulic package's loops, pumps, and PTU
// into a single A320-class controller: the fixed-step driver that
// decouples the physics from the host's variable frame rate, and the
// cockpit-facing logic that turns overhead panel switches and flight
// logic inputs into pump start/stop and PTU enable commands.
package aircraft
