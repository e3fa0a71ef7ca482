package hydraulic

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoopConfig is the YAML-serializable geometry for one loop. Loading
// loop geometry from data rather than Go constants is the natural "swap
// the airframe" extension point: a different airframe's loop geometry is
// a different YAML document, not a source change. Pump displacement
// curves are not part of the config; they are fixed tables in pump.go.
type LoopConfig struct {
	Color               string  `yaml:"color"`
	ConnectedToPtuLeft  bool    `yaml:"connected_to_ptu_left"`
	ConnectedToPtuRight bool    `yaml:"connected_to_ptu_right"`
	LoopVolumeGal       float64 `yaml:"loop_volume_gal"`
	MaxLoopVolumeGal    float64 `yaml:"max_loop_volume_gal"`
	HighPressureVolGal  float64 `yaml:"high_pressure_volume_gal"`
	ReservoirVolumeGal  float64 `yaml:"reservoir_volume_gal"`
}

// AircraftConfig is the full set of geometry needed to build an
// airframe's hydraulic rig.
type AircraftConfig struct {
	BulkModulusPsi float64      `yaml:"bulk_modulus_psi"`
	Loops          []LoopConfig `yaml:"loops"`
}

// color parses the config's color name into a LoopColor.
func (c LoopConfig) color() (LoopColor, error) {
	switch c.Color {
	case "Green":
		return Green, nil
	case "Yellow":
		return Yellow, nil
	case "Blue":
		return Blue, nil
	default:
		return 0, fmt.Errorf("hydraulic: unknown loop color %q", c.Color)
	}
}

// BuildLoop constructs a HydLoop from this config entry and a shared fluid.
func (c LoopConfig) BuildLoop(fluid Fluid) (*HydLoop, error) {
	color, err := c.color()
	if err != nil {
		return nil, err
	}
	return NewHydLoop(
		color,
		c.ConnectedToPtuLeft,
		c.ConnectedToPtuRight,
		c.LoopVolumeGal,
		c.MaxLoopVolumeGal,
		c.HighPressureVolGal,
		c.ReservoirVolumeGal,
		fluid,
	)
}

// LoadAircraftConfig parses a YAML document into an AircraftConfig.
func LoadAircraftConfig(data []byte) (AircraftConfig, error) {
	var cfg AircraftConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AircraftConfig{}, fmt.Errorf("hydraulic: parsing aircraft config: %w", err)
	}
	return cfg, nil
}

//go:embed a320_default.yaml
var a320DefaultConfigYAML []byte

// DefaultA320Config returns the embedded A320 loop geometry: Green
// (connected to the PTU's low-displacement side), Yellow (connected to
// the PTU's variable-displacement side), Blue (standalone).
func DefaultA320Config() (AircraftConfig, error) {
	return LoadAircraftConfig(a320DefaultConfigYAML)
}
