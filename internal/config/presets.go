package config

import "math"

var Presets = map[string]map[string]*Config{
	"swimmer": {
		"demo": {
			Model: "swimmer", Gait: "square", Integrator: "rk4",
			Steps: 10, Timestep: 1, TInterval: 0.5,
			LinkLength: 2, Viscosity: 1, Samples: 10,
			JointLimit: math.Pi / 2, Limits: true,
			InitState:  InitStateConfig{A1: -math.Pi / 4, A2: math.Pi / 4},
			GaitParams: GaitConfig{Amplitude: math.Pi / 2},
		},
		"wave": {
			Model: "swimmer", Gait: "phase", Integrator: "rk4",
			Steps: 40, Timestep: 1, TInterval: 0.25,
			LinkLength: 2, Viscosity: 1, Samples: 10,
			JointLimit: math.Pi / 2, Limits: true,
			InitState:  InitStateConfig{A1: -math.Pi / 4, A2: math.Pi / 4},
			GaitParams: GaitConfig{Amplitude: math.Pi / 2, Frequency: 0.5, Offset: math.Pi / 2},
		},
		"free": {
			Model: "swimmer", Gait: "phase", Integrator: "rk4",
			Steps: 40, Timestep: 1, TInterval: 0.25,
			LinkLength: 2, Viscosity: 1, Samples: 10,
			JointLimit: math.Pi / 2, Limits: false,
			GaitParams: GaitConfig{Amplitude: math.Pi, Frequency: 0.3, Offset: math.Pi / 2},
		},
	},
	"wheeled": {
		"fine": {
			Model: "wheeled", Gait: "square", Integrator: "rk4",
			Steps: 100, Timestep: 1, TInterval: 0.001,
			LinkLength: 2, Viscosity: 1, Samples: 10,
			JointLimit: math.Pi / 2, AngleStep: math.Pi / 64,
			InitState:  InitStateConfig{A1: -math.Pi / 4, A2: math.Pi / 4},
			GaitParams: GaitConfig{Amplitude: math.Pi / 8},
		},
		"coarse": {
			Model: "wheeled", Gait: "square", Integrator: "rk4",
			Steps: 50, Timestep: 1, TInterval: 0.01,
			LinkLength: 2, Viscosity: 1, Samples: 10,
			JointLimit: math.Pi / 2, AngleStep: math.Pi / 16,
			InitState:  InitStateConfig{A1: -math.Pi / 4, A2: math.Pi / 4},
			GaitParams: GaitConfig{Amplitude: math.Pi / 8},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil when unknown.
func GetPreset(model, name string) *Config {
	group, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := group[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

// ListPresets returns the preset names for a model, or nil when unknown.
func ListPresets(model string) []string {
	group, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	return names
}
