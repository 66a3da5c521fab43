package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// InstrumentDef mirrors one entry of the instruments YAML file.
type InstrumentDef struct {
	Kind        string   `yaml:"kind"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	MetricKey   string   `yaml:"metric_key"`
	Unit        string   `yaml:"unit,omitempty"`
	Min         *float64 `yaml:"min,omitempty"`
	Max         *float64 `yaml:"max,omitempty"`
}

// InstrumentSet holds all instrument definitions.
type InstrumentSet struct {
	Instruments []InstrumentDef `yaml:"instruments"`
}

// DefaultInstruments returns the built-in definitions of the five
// instruments, used when a workspace carries no instruments file.
func DefaultInstruments() *InstrumentSet {
	f := func(v float64) *float64 { return &v }
	return &InstrumentSet{Instruments: []InstrumentDef{
		{Kind: string(KindTaskSuccessRate), Name: "Task Success Rate", MetricKey: "successRate", Unit: "percent", Min: f(0), Max: f(100)},
		{Kind: string(KindTimeOnTask), Name: "Time on Task", MetricKey: "durationSeconds", Unit: "seconds", Min: f(0)},
		{Kind: string(KindTaskEfficiency), Name: "Task Efficiency", MetricKey: "efficiency", Unit: "percent", Min: f(0)},
		{Kind: string(KindErrorRate), Name: "Error Rate", MetricKey: "errorRate", Unit: "percent", Min: f(0)},
		{Kind: string(KindSEQ), Name: "Single Ease Question", MetricKey: "seqRating", Unit: "rating", Min: f(1), Max: f(7)},
	}}
}

// LoadInstruments reads and parses the instruments definition file.
func LoadInstruments(path string) (*InstrumentSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read instruments file: %w", err)
	}

	var set InstrumentSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to unmarshal instruments YAML: %w", err)
	}

	for _, def := range set.Instruments {
		if !AssessmentKind(def.Kind).Valid() {
			return nil, fmt.Errorf("unknown instrument kind %q", def.Kind)
		}
		if def.MetricKey == "" {
			return nil, fmt.Errorf("instrument %q has no metric_key", def.Kind)
		}
	}

	return &set, nil
}
