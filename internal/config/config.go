package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Gamma struct {
		Shape float64 `yaml:"shape"` // α
		Rate  float64 `yaml:"rate"`  // β
	} `yaml:"gamma"`

	Simulation struct {
		TimeSeconds float64 `yaml:"time_seconds"` // horizon of the service simulation
		StepSeconds float64 `yaml:"step_seconds"` // bucket width for arrival counts
		ArrivalRPS  float64 `yaml:"arrival_rps"`  // Poisson arrival rate
		Seed        int64   `yaml:"seed"`
	} `yaml:"simulation"`

	Plot struct {
		Samples int     `yaml:"samples"` // direct draws for the histogram
		Bins    int     `yaml:"bins"`
		XMax    float64 `yaml:"x_max"` // right edge of the density plots; 0 = auto
	} `yaml:"plot"`
}

func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("error when parsing config: %w", err)
	}

	fillDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("error when validating config: %w", err)
	}
	return &cfg, nil
}

func fillDefaults(c *Config) {
	if c.Gamma.Shape == 0 {
		c.Gamma.Shape = 3
	}
	if c.Gamma.Rate == 0 {
		c.Gamma.Rate = 1
	}
	if c.Simulation.TimeSeconds == 0 {
		c.Simulation.TimeSeconds = 600
	}
	if c.Simulation.StepSeconds == 0 {
		c.Simulation.StepSeconds = 1
	}
	if c.Simulation.ArrivalRPS == 0 {
		c.Simulation.ArrivalRPS = 50
	}
	if c.Simulation.Seed == 0 {
		c.Simulation.Seed = time.Now().UnixNano()
	}
	if c.Plot.Samples == 0 {
		c.Plot.Samples = 100_000
	}
	if c.Plot.Bins == 0 {
		c.Plot.Bins = 80
	}
}

func validate(c *Config) error {
	if !(c.Gamma.Shape > 0) || !(c.Gamma.Rate > 0) { // also rejects NaN
		return fmt.Errorf("gamma shape and rate must be positive, got %v, %v",
			c.Gamma.Shape, c.Gamma.Rate)
	}
	if c.Simulation.ArrivalRPS <= 0 {
		return fmt.Errorf("arrival_rps must be positive, got %v", c.Simulation.ArrivalRPS)
	}
	return nil
}
