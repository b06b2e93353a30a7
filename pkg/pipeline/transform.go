package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spicery/clist/pkg/typedlist"
)

// TransformConfig is the YAML form of a map step. Exactly one field is set.
type TransformConfig struct {
	Add      *int              `yaml:"add,omitempty"`
	Multiply *int              `yaml:"multiply,omitempty"`
	Negate   bool              `yaml:"negate,omitempty"`
	Upper    bool              `yaml:"upper,omitempty"`
	Lower    bool              `yaml:"lower,omitempty"`
	Trim     bool              `yaml:"trim,omitempty"`
	Prefix   *string           `yaml:"prefix,omitempty"`
	Suffix   *string           `yaml:"suffix,omitempty"`
	Replace  *ReplaceConfig    `yaml:"replace,omitempty"`
	FailOn   *string           `yaml:"failOn,omitempty"`
	Sequence []TransformConfig `yaml:"sequence,omitempty"`
}

type ReplaceConfig struct {
	Old string `yaml:"old"`
	New string `yaml:"new"`
}

func (tc TransformConfig) Validate() error {
	count := 0
	for _, set := range []bool{
		tc.Add != nil,
		tc.Multiply != nil,
		tc.Negate,
		tc.Upper,
		tc.Lower,
		tc.Trim,
		tc.Prefix != nil,
		tc.Suffix != nil,
		tc.Replace != nil,
		tc.FailOn != nil,
		len(tc.Sequence) > 0,
	} {
		if set {
			count++
		}
	}
	if count == 0 {
		return fmt.Errorf("no transform specified in TransformConfig: %+v", tc)
	}
	if count > 1 {
		return fmt.Errorf("multiple transforms specified in TransformConfig; only one allowed: %+v", tc)
	}
	if tc.Replace != nil && tc.Replace.Old == "" {
		return fmt.Errorf("invalid ReplaceConfig: 'old' must be set")
	}
	return nil
}

// ToTransform converts a TransformConfig to a list transform over strings.
func (tc TransformConfig) ToTransform() (typedlist.Transform[string], error) {
	if err := tc.Validate(); err != nil {
		return nil, err
	}
	switch {
	case tc.Add != nil:
		n := *tc.Add
		return integerTransform("add", func(v int) int { return v + n }), nil
	case tc.Multiply != nil:
		n := *tc.Multiply
		return integerTransform("multiply", func(v int) int { return v * n }), nil
	case tc.Negate:
		return integerTransform("negate", func(v int) int { return -v }), nil
	case tc.Upper:
		return stringTransform(strings.ToUpper), nil
	case tc.Lower:
		return stringTransform(strings.ToLower), nil
	case tc.Trim:
		return stringTransform(strings.TrimSpace), nil
	case tc.Prefix != nil:
		prefix := *tc.Prefix
		return stringTransform(func(s string) string { return prefix + s }), nil
	case tc.Suffix != nil:
		suffix := *tc.Suffix
		return stringTransform(func(s string) string { return s + suffix }), nil
	case tc.Replace != nil:
		replacer := strings.NewReplacer(tc.Replace.Old, tc.Replace.New)
		return stringTransform(replacer.Replace), nil
	case tc.FailOn != nil:
		target := *tc.FailOn
		return func(item string) (string, error) {
			if item == target {
				return "", fmt.Errorf("failOn: rejected item %q", item)
			}
			return item, nil
		}, nil
	default:
		transforms := make([]typedlist.Transform[string], 0, len(tc.Sequence))
		for i, sub := range tc.Sequence {
			t, err := sub.ToTransform()
			if err != nil {
				return nil, fmt.Errorf("error in nested sequence transform, position %d: %w", i, err)
			}
			transforms = append(transforms, t)
		}
		return func(item string) (string, error) {
			var err error
			for _, t := range transforms {
				if item, err = t(item); err != nil {
					return "", err
				}
			}
			return item, nil
		}, nil
	}
}

// Describe renders the transform for reports, e.g. "multiply 10".
func (tc TransformConfig) Describe() string {
	switch {
	case tc.Add != nil:
		return fmt.Sprintf("add %d", *tc.Add)
	case tc.Multiply != nil:
		return fmt.Sprintf("multiply %d", *tc.Multiply)
	case tc.Negate:
		return "negate"
	case tc.Upper:
		return "upper"
	case tc.Lower:
		return "lower"
	case tc.Trim:
		return "trim"
	case tc.Prefix != nil:
		return fmt.Sprintf("prefix %q", *tc.Prefix)
	case tc.Suffix != nil:
		return fmt.Sprintf("suffix %q", *tc.Suffix)
	case tc.Replace != nil:
		return fmt.Sprintf("replace %q %q", tc.Replace.Old, tc.Replace.New)
	case tc.FailOn != nil:
		return fmt.Sprintf("failOn %q", *tc.FailOn)
	}
	parts := make([]string, 0, len(tc.Sequence))
	for _, sub := range tc.Sequence {
		parts = append(parts, sub.Describe())
	}
	return "sequence(" + strings.Join(parts, ", ") + ")"
}

func stringTransform(f func(string) string) typedlist.Transform[string] {
	return func(item string) (string, error) {
		return f(item), nil
	}
}

func integerTransform(name string, f func(int) int) typedlist.Transform[string] {
	return func(item string) (string, error) {
		v, err := strconv.Atoi(item)
		if err != nil {
			return "", fmt.Errorf("%s: %q is not an integer: %w", name, item, err)
		}
		return strconv.Itoa(f(v)), nil
	}
}
