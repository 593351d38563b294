package batch

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SweepSpec is the YAML description of a crossover sweep run.
//
// Example:
//
//	name: nifty-daily
//	short: {min: 5, max: 50}
//	long: {min: 20, max: 200}
//	invert: false
//	top: 25
type SweepSpec struct {
	Name   string `yaml:"name"`
	Short  Range  `yaml:"short"`
	Long   Range  `yaml:"long"`
	Invert bool   `yaml:"invert"`
	Top    int    `yaml:"top"`
}

// Range is an inclusive period range.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// DefaultSweepSpec mirrors the classic "every moving average from 5 to 200"
// scan.
func DefaultSweepSpec() SweepSpec {
	return SweepSpec{
		Name:  "default",
		Short: Range{Min: 5, Max: 50},
		Long:  Range{Min: 20, Max: 200},
		Top:   25,
	}
}

// LoadSpec reads and validates a sweep spec from a YAML file.
func LoadSpec(path string) (SweepSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SweepSpec{}, fmt.Errorf("batch: read sweep spec: %w", err)
	}
	var spec SweepSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return SweepSpec{}, fmt.Errorf("batch: parse sweep spec: %w", err)
	}
	if spec.Name == "" {
		spec.Name = "sweep"
	}
	if spec.Short.Min < 1 || spec.Long.Min < 1 {
		return SweepSpec{}, fmt.Errorf("batch: sweep spec: periods must be positive")
	}
	if spec.Short.Max < spec.Short.Min || spec.Long.Max < spec.Long.Min {
		return SweepSpec{}, fmt.Errorf("batch: sweep spec: empty period range")
	}
	if spec.Top < 0 {
		return SweepSpec{}, fmt.Errorf("batch: sweep spec: top must be >= 0")
	}
	return spec, nil
}

// Sweep builds the CrossoverSweep described by the spec.
func (s SweepSpec) Sweep() (*CrossoverSweep, error) {
	sweep, err := NewCrossoverSweep(s.Short.Min, s.Short.Max, s.Long.Min, s.Long.Max)
	if err != nil {
		return nil, err
	}
	sweep.Invert = s.Invert
	return sweep, nil
}
