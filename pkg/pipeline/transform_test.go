package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestTransforms(t *testing.T) {
	tests := []struct {
		name     string
		config   TransformConfig
		input    string
		want     string
		describe string
	}{
		{"add", TransformConfig{Add: intPtr(5)}, "10", "15", "add 5"},
		{"multiply", TransformConfig{Multiply: intPtr(-3)}, "4", "-12", "multiply -3"},
		{"negate", TransformConfig{Negate: true}, "7", "-7", "negate"},
		{"upper", TransformConfig{Upper: true}, "abc", "ABC", "upper"},
		{"lower", TransformConfig{Lower: true}, "AbC", "abc", "lower"},
		{"trim", TransformConfig{Trim: true}, "  x ", "x", "trim"},
		{"prefix", TransformConfig{Prefix: strPtr("pre-")}, "x", "pre-x", `prefix "pre-"`},
		{"suffix", TransformConfig{Suffix: strPtr("-post")}, "x", "x-post", `suffix "-post"`},
		{"replace", TransformConfig{Replace: &ReplaceConfig{Old: "a", New: "o"}}, "banana", "bonono", `replace "a" "o"`},
		{"failOn passes others", TransformConfig{FailOn: strPtr("bad")}, "good", "good", `failOn "bad"`},
		{
			"sequence",
			TransformConfig{Sequence: []TransformConfig{{Trim: true}, {Multiply: intPtr(2)}, {Prefix: strPtr("#")}}},
			" 21 ", "#42", `sequence(trim, multiply 2, prefix "#")`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transform, err := tt.config.ToTransform()
			require.NoError(t, err)
			got, err := transform(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.describe, tt.config.Describe())
		})
	}
}

func TestTransformFailures(t *testing.T) {
	tests := []struct {
		name   string
		config TransformConfig
		input  string
	}{
		{"add non integer", TransformConfig{Add: intPtr(1)}, "one"},
		{"negate empty", TransformConfig{Negate: true}, ""},
		{"failOn match", TransformConfig{FailOn: strPtr("bad")}, "bad"},
		{"sequence stops", TransformConfig{Sequence: []TransformConfig{{Upper: true}, {Add: intPtr(1)}}}, "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transform, err := tt.config.ToTransform()
			require.NoError(t, err)
			_, err = transform(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestActionDescribe(t *testing.T) {
	assert.Equal(t, "log info", ActionConfig{Log: strPtr("info")}.Describe())
	assert.Equal(t, "count", ActionConfig{Count: true}.Describe())
	assert.Equal(t, `failOn "z"`, ActionConfig{FailOn: strPtr("z")}.Describe())
}
