package pipeline

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config represents the top-level pipeline file.
type Config struct {
	Name        string       `yaml:"name,omitempty"`
	Description string       `yaml:"description,omitempty"`
	Capacity    int          `yaml:"capacity,omitempty"`
	Values      []string     `yaml:"values"`
	Steps       []StepConfig `yaml:"steps"`
}

// StepConfig names exactly one list operation.
type StepConfig struct {
	Name      string           `yaml:"name,omitempty"`
	Filter    *string          `yaml:"filter,omitempty"`
	FilterOut *string          `yaml:"filterOut,omitempty"`
	Map       *TransformConfig `yaml:"map,omitempty"`
	ForEach   *ActionConfig    `yaml:"forEach,omitempty"`
}

func (sc StepConfig) Validate() error {
	count := 0
	if sc.Filter != nil {
		count++
	}
	if sc.FilterOut != nil {
		count++
	}
	if sc.Map != nil {
		count++
	}
	if sc.ForEach != nil {
		count++
	}
	if count == 0 {
		return fmt.Errorf("no operation specified in StepConfig: %+v", sc)
	}
	if count > 1 {
		return fmt.Errorf("multiple operations specified in StepConfig; only one allowed: %+v", sc)
	}
	return nil
}

// ToStep converts a StepConfig to a concrete Step.
func (sc StepConfig) ToStep(logger log.FieldLogger) (Step, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	switch {
	case sc.Filter != nil:
		return &FilterStep{Match: *sc.Filter}, nil
	case sc.FilterOut != nil:
		return &FilterOutStep{Weed: *sc.FilterOut}, nil
	case sc.Map != nil:
		transform, err := sc.Map.ToTransform()
		if err != nil {
			return nil, err
		}
		return &MapStep{Transform: transform, Description: sc.Map.Describe()}, nil
	default:
		action, err := sc.ForEach.ToAction(logger)
		if err != nil {
			return nil, err
		}
		return &ForEachStep{Action: action, Description: sc.ForEach.Describe()}, nil
	}
}

// Compile validates every step and builds a runnable Pipeline that logs
// through the standard logrus logger.
func (c *Config) Compile() (*Pipeline, error) {
	return c.CompileWithLogger(log.StandardLogger())
}

func (c *Config) CompileWithLogger(logger log.FieldLogger) (*Pipeline, error) {
	if c.Capacity < 0 {
		return nil, fmt.Errorf("invalid Config: capacity must not be negative, got %d", c.Capacity)
	}
	p := &Pipeline{
		Name:     c.Name,
		Capacity: c.Capacity,
		Values:   append([]string(nil), c.Values...),
		logger:   logger,
	}
	for i, sc := range c.Steps {
		step, err := sc.ToStep(logger)
		if err != nil {
			return nil, fmt.Errorf("error in step %d: %w", i, err)
		}
		name := sc.Name
		if name == "" {
			name = step.Op()
		}
		p.Steps = append(p.Steps, NamedStep{Name: name, Step: step})
	}
	return p, nil
}

// Load reads a pipeline definition from a YAML file.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return LoadFromBytes(data)
}

// LoadFromString loads a Config from a YAML string.
func LoadFromString(yamlContent string) (*Config, error) {
	return LoadFromBytes([]byte(yamlContent))
}

func LoadFromBytes(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	return &config, nil
}
