// Package pipeline runs YAML-configured sequences of typedlist operations
// over string values and records what every step produced.
package pipeline

import (
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/spicery/clist/pkg/typedlist"
)

type Step interface {
	Op() string
	Argument() string
	Apply(list *typedlist.List[string]) (*typedlist.List[string], error)
}

type FilterStep struct {
	Match string
}

func (s *FilterStep) Op() string       { return "filter" }
func (s *FilterStep) Argument() string { return fmt.Sprintf("%q", s.Match) }

func (s *FilterStep) Apply(list *typedlist.List[string]) (*typedlist.List[string], error) {
	return list.Filter(s.Match), nil
}

type FilterOutStep struct {
	Weed string
}

func (s *FilterOutStep) Op() string       { return "filterOut" }
func (s *FilterOutStep) Argument() string { return fmt.Sprintf("%q", s.Weed) }

func (s *FilterOutStep) Apply(list *typedlist.List[string]) (*typedlist.List[string], error) {
	return list.FilterOut(s.Weed), nil
}

type MapStep struct {
	Transform   typedlist.Transform[string]
	Description string
}

func (s *MapStep) Op() string       { return "map" }
func (s *MapStep) Argument() string { return s.Description }

func (s *MapStep) Apply(list *typedlist.List[string]) (*typedlist.List[string], error) {
	return list.Map(s.Transform)
}

// ForEachStep passes its input through unchanged and remembers how many
// items the last Apply visited.
type ForEachStep struct {
	Action      typedlist.Action[string]
	Description string
	Visited     int
}

func (s *ForEachStep) Op() string       { return "forEach" }
func (s *ForEachStep) Argument() string { return s.Description }

func (s *ForEachStep) Apply(list *typedlist.List[string]) (*typedlist.List[string], error) {
	s.Visited = 0
	err := list.ForEach(func(item string) error {
		s.Visited++
		if s.Action == nil {
			return nil
		}
		return s.Action(item)
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

type NamedStep struct {
	Name string
	Step Step
}

// StepError reports the step that failed. Err is the error returned by the
// transform or action, unchanged.
type StepError struct {
	Position int
	Name     string
	Err      error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Position, e.Name, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

type StepResult struct {
	Position int      `json:"position" yaml:"position"`
	Name     string   `json:"name" yaml:"name"`
	Op       string   `json:"op" yaml:"op"`
	Argument string   `json:"argument,omitempty" yaml:"argument,omitempty"`
	Items    []string `json:"items" yaml:"items"`
	Visited  int      `json:"visited,omitempty" yaml:"visited,omitempty"`
}

type Report struct {
	RunID  string       `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Name   string       `json:"name" yaml:"name"`
	Input  []string     `json:"input" yaml:"input"`
	Steps  []StepResult `json:"steps" yaml:"steps"`
	Output []string     `json:"output" yaml:"output"`
}

type Pipeline struct {
	Name     string
	Capacity int
	Values   []string
	Steps    []NamedStep
	logger   log.FieldLogger
}

// Source builds the starting list from the pipeline's values and capacity.
func (p *Pipeline) Source() *typedlist.List[string] {
	list := typedlist.NewWithCapacity[string](p.Capacity)
	list.AddAll(p.Values...)
	return list
}

// Run applies every step in order, each to the previous step's output.
// The first failing step stops the run.
func (p *Pipeline) Run() (*Report, error) {
	logger := p.logger
	if logger == nil {
		logger = log.StandardLogger()
	}
	report := &Report{
		RunID: uuid.NewString(),
		Name:  p.Name,
		Input: append([]string{}, p.Values...),
		Steps: []StepResult{},
	}
	logger = logger.WithField("run", report.RunID)

	current := p.Source()
	for i, ns := range p.Steps {
		logger.Debugf("step %d (%s): %s %s on %d items", i, ns.Name, ns.Step.Op(), ns.Step.Argument(), current.Len())
		next, err := ns.Step.Apply(current)
		if err != nil {
			logger.Debugf("step %d (%s) failed: %v", i, ns.Name, err)
			return nil, &StepError{Position: i, Name: ns.Name, Err: err}
		}
		result := StepResult{
			Position: i,
			Name:     ns.Name,
			Op:       ns.Step.Op(),
			Argument: ns.Step.Argument(),
			Items:    itemsOf(next),
		}
		if fe, ok := ns.Step.(*ForEachStep); ok {
			result.Visited = fe.Visited
		}
		report.Steps = append(report.Steps, result)
		current = next
	}
	report.Output = itemsOf(current)
	return report, nil
}

// itemsOf never returns nil so empty lists print as [] rather than null.
func itemsOf(list *typedlist.List[string]) []string {
	if list.Len() == 0 {
		return []string{}
	}
	return list.Items()
}
