// Package config externalizes the tunable constants the simulation
// otherwise fixes inline, following the same defaults-then-JSON-overlay
// pattern the rest of the generator uses for its settings.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// ErosionSettings tunes the two-pass hydraulic erosion step.
type ErosionSettings struct {
	RiverCarveFactor float64 `json:"riverCarveFactor"`
	NoiseBand        float64 `json:"noiseBand"`
	NoiseBaseline    float64 `json:"noiseBaseline"`
	LowerBound       float32 `json:"lowerBound"`
}

// GrowthSettings tunes rectangle reframe/growth.
type GrowthSettings struct {
	PaddingQuantum uint32 `json:"paddingQuantum"`
}

// MovementSettings tunes a plate's initial velocity and idle drift.
type MovementSettings struct {
	InitialSpeedMin     float64 `json:"initialSpeedMin"`
	InitialSpeedMax     float64 `json:"initialSpeedMax"`
	PerturbProbability  float64 `json:"perturbProbability"`
	PerturbAngle        float64 `json:"perturbAngle"`
}

// PlateConfig bundles every tunable a Plate consults.
type PlateConfig struct {
	Erosion  ErosionSettings  `json:"erosion"`
	Growth   GrowthSettings   `json:"growth"`
	Movement MovementSettings `json:"movement"`
}

// Default returns the spec's built-in constants.
func Default() PlateConfig {
	return PlateConfig{
		Erosion: ErosionSettings{
			RiverCarveFactor: 0.2,
			NoiseBand:        0.2,
			NoiseBaseline:    0.1,
			LowerBound:       0,
		},
		Growth: GrowthSettings{
			PaddingQuantum: 8,
		},
		Movement: MovementSettings{
			InitialSpeedMin:    1.0,
			InitialSpeedMax:    3.0,
			PerturbProbability: 0.01,
			PerturbAngle:       0.05,
		},
	}
}

// Load reads path and overlays it onto Default(), falling back to
// defaults entirely when the file does not exist — the same control
// flow the generator's own config/settings.go uses.
func Load(path string) (PlateConfig, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("No plate config file found, using defaults")
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("error parsing plate config: %v", err)
	}

	fmt.Printf("Loaded plate config: padding quantum %d, river carve factor %.2f\n",
		cfg.Growth.PaddingQuantum, cfg.Erosion.RiverCarveFactor)
	return cfg, nil
}
