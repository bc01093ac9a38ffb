// Package config defines the yaml-backed session configuration and presets.
package config

import (
	"math"
	"os"

	"gonum.org/v1/gonum/spatial/r1"
	"gopkg.in/yaml.v3"

	"github.com/junyaoshi/snakesim/internal/robot"
)

const (
	DefaultTInterval  = 0.25
	DefaultTimestep   = 1
	DefaultSteps      = 10
	DefaultLinkLength = 2.0
	DefaultViscosity  = 1.0
	DefaultSamples    = 10
	DefaultAmplitude  = math.Pi / 2
)

type Config struct {
	Model      string  `yaml:"model"`
	Gait       string  `yaml:"gait"`
	Integrator string  `yaml:"integrator"`
	Steps      int     `yaml:"steps"`
	Timestep   int     `yaml:"timestep"`
	TInterval  float64 `yaml:"t_interval"`
	LinkLength float64 `yaml:"link_length"`
	Viscosity  float64 `yaml:"viscosity"`
	Samples    int     `yaml:"samples"`
	JointLimit float64 `yaml:"joint_limit"` // symmetric bound on each joint
	AngleStep  float64 `yaml:"angle_step"`  // wheeled-model grid interval
	Limits     bool    `yaml:"enforce_limits"`
	Randomize  bool    `yaml:"randomize"`
	Opposite   bool    `yaml:"opposite_signs"`
	Seed       int64   `yaml:"seed"`

	InitState  InitStateConfig `yaml:"init_state"`
	GaitParams GaitConfig      `yaml:"gait_params"`
}

type InitStateConfig struct {
	BodyX float64 `yaml:"body_x"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Theta float64 `yaml:"theta"`
	A1    float64 `yaml:"a1"`
	A2    float64 `yaml:"a2"`
}

type GaitConfig struct {
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
	Offset    float64 `yaml:"offset"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:      "swimmer",
		Gait:       "square",
		Integrator: "rk4",
		Steps:      DefaultSteps,
		Timestep:   DefaultTimestep,
		TInterval:  DefaultTInterval,
		LinkLength: DefaultLinkLength,
		Viscosity:  DefaultViscosity,
		Samples:    DefaultSamples,
		JointLimit: math.Pi / 2,
		AngleStep:  math.Pi / 32,
		Limits:     true,
		InitState: InitStateConfig{
			A1: -math.Pi / 4,
			A2: math.Pi / 4,
		},
		GaitParams: GaitConfig{
			Amplitude: DefaultAmplitude,
			Frequency: 0.5,
			Offset:    math.Pi / 2,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// RobotParams maps the configuration onto the per-session robot constants.
func (c *Config) RobotParams() robot.Params {
	p := robot.DefaultParams()
	p.LinkLength = c.LinkLength
	p.Viscosity = c.Viscosity
	p.TInterval = c.TInterval
	p.Timestep = c.Timestep
	p.Limits = r1.Interval{Min: -c.JointLimit, Max: c.JointLimit}
	p.Samples = c.Samples
	p.AngleStep = c.AngleStep
	return p
}

// RobotInit maps the configured initial state onto the session initializer.
func (c *Config) RobotInit() robot.Init {
	return robot.Init{
		BodyX: c.InitState.BodyX,
		X:     c.InitState.X,
		Y:     c.InitState.Y,
		Theta: c.InitState.Theta,
		A1:    c.InitState.A1,
		A2:    c.InitState.A2,
	}
}
