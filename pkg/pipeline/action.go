package pipeline

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/spicery/clist/pkg/typedlist"
)

// ActionConfig is the YAML form of a forEach step. Exactly one field is set.
type ActionConfig struct {
	Log    *string `yaml:"log,omitempty"`
	Count  bool    `yaml:"count,omitempty"`
	FailOn *string `yaml:"failOn,omitempty"`
}

func (ac ActionConfig) Validate() error {
	count := 0
	if ac.Log != nil {
		count++
	}
	if ac.Count {
		count++
	}
	if ac.FailOn != nil {
		count++
	}
	if count == 0 {
		return fmt.Errorf("no action specified in ActionConfig: %+v", ac)
	}
	if count > 1 {
		return fmt.Errorf("multiple actions specified in ActionConfig; only one allowed: %+v", ac)
	}
	return nil
}

// ToAction converts an ActionConfig to a list action. Log actions write
// through logger.
func (ac ActionConfig) ToAction(logger log.FieldLogger) (typedlist.Action[string], error) {
	if err := ac.Validate(); err != nil {
		return nil, err
	}
	switch {
	case ac.Log != nil:
		level, err := log.ParseLevel(*ac.Log)
		if err != nil {
			return nil, fmt.Errorf("invalid ActionConfig: %w", err)
		}
		return logAction(logger, level), nil
	case ac.FailOn != nil:
		target := *ac.FailOn
		return func(item string) error {
			if item == target {
				return fmt.Errorf("failOn: rejected item %q", item)
			}
			return nil
		}, nil
	default:
		// Visits are counted by ForEachStep itself.
		return func(string) error { return nil }, nil
	}
}

func (ac ActionConfig) Describe() string {
	switch {
	case ac.Log != nil:
		return "log " + *ac.Log
	case ac.FailOn != nil:
		return fmt.Sprintf("failOn %q", *ac.FailOn)
	}
	return "count"
}

func logAction(logger log.FieldLogger, level log.Level) typedlist.Action[string] {
	return func(item string) error {
		entry := logger.WithField("item", item)
		switch level {
		case log.TraceLevel, log.DebugLevel:
			entry.Debug("visit")
		case log.InfoLevel:
			entry.Info("visit")
		case log.WarnLevel:
			entry.Warn("visit")
		default:
			entry.Error("visit")
		}
		return nil
	}
}
