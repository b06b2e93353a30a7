package typedlist

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario(t *testing.T) {
	l := Of(1, 2, 2, 3)

	assert.Equal(t, []int{2, 2}, l.Filter(2).Items())
	assert.Equal(t, []int{1, 3}, l.FilterOut(2).Items())

	mapped, err := l.Map(func(x int) (int, error) { return x * 10, nil })
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 20, 30}, mapped.Items())
	assert.Equal(t, []int{1, 2, 2, 3}, l.Items())
}

func TestMapIdentityDoesNotAlias(t *testing.T) {
	l := Of("a", "b", "c")
	out, err := l.Map(identity[string])
	require.NoError(t, err)
	assert.Equal(t, l.Items(), out.Items())
	assert.NotSame(t, l, out)

	require.NoError(t, out.Set(0, "z"))
	v, err := l.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "a", v)
}

func TestMapNilTransformCopies(t *testing.T) {
	l := Of(1, 2)
	out, err := l.Map(nil)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, out.Items())
}

func TestMapFailsFast(t *testing.T) {
	boom := errors.New("boom")
	var seen []int
	l := Of(1, 2, 3, 4)

	out, err := l.Map(func(x int) (int, error) {
		seen = append(seen, x)
		if x == 2 {
			return 0, boom
		}
		return x, nil
	})
	assert.Nil(t, out)
	assert.Same(t, boom, err)
	assert.Equal(t, []int{1, 2}, seen)
}

func TestForEachOrder(t *testing.T) {
	var seen []int
	err := Of(1, 2, 3).ForEach(func(x int) error {
		seen = append(seen, x)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, seen)
}

func TestForEachFailsFast(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	err := Of("a", "b", "c").ForEach(func(s string) error {
		calls++
		if s == "b" {
			return boom
		}
		return nil
	})
	assert.Same(t, boom, err)
	assert.Equal(t, 2, calls)
}

func TestEmptyList(t *testing.T) {
	l := New[int]()

	mapped, err := l.Map(identity[int])
	require.NoError(t, err)
	assert.Equal(t, 0, mapped.Len())
	assert.Equal(t, 0, l.Filter(1).Len())
	assert.Equal(t, 0, l.FilterOut(1).Len())

	calls := 0
	require.NoError(t, l.ForEach(func(int) error { calls++; return nil }))
	assert.Equal(t, 0, calls)
}

func TestFilterPartition(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		x     string
	}{
		{"mixed", []string{"a", "b", "a", "c"}, "a"},
		{"none match", []string{"a", "b"}, "z"},
		{"all match", []string{"q", "q"}, "q"},
		{"empty", nil, "a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Of(tt.items...)
			kept := l.Filter(tt.x)
			dropped := l.FilterOut(tt.x)

			assert.Equal(t, l.Len(), kept.Len()+dropped.Len())
			for v := range kept.Values() {
				assert.Equal(t, tt.x, v)
			}
			for v := range dropped.Values() {
				assert.NotEqual(t, tt.x, v)
			}
			assert.ElementsMatch(t, l.Items(), append(kept.Items(), dropped.Items()...))
			assert.Equal(t, kept.Items(), kept.Filter(tt.x).Items())
		})
	}
}

func TestFilterNilEqualsNil(t *testing.T) {
	one, two := 1, 2
	l := Of[*int](&one, nil, &two, nil)

	assert.Equal(t, 2, l.Filter(nil).Len())
	out := l.FilterOut(nil)
	assert.Equal(t, []*int{&one, &two}, out.Items())
}

func TestFilterKeepsOrder(t *testing.T) {
	l := Of(3, 1, 3, 2, 3)
	assert.Equal(t, []int{1, 2}, l.FilterOut(3).Items())
	assert.Equal(t, []int{3, 3, 3}, l.Filter(3).Items())
}

func TestMapPresizesButFilterDoesNot(t *testing.T) {
	l := NewWithCapacity[int](64)
	l.AddAll(1, 2, 3)

	mapped, err := l.Map(identity[int])
	require.NoError(t, err)
	assert.Equal(t, 64, mapped.Cap())

	assert.Less(t, l.Filter(1).Cap(), 64)
	assert.Less(t, l.FilterOut(1).Cap(), 64)
}

func TestOperationsLeaveSourceUntouched(t *testing.T) {
	l := Of(1, 2, 2, 3)
	_ = l.Filter(2)
	_ = l.FilterOut(2)
	_, err := l.Map(func(x int) (int, error) { return -x, nil })
	require.NoError(t, err)
	require.NoError(t, l.ForEach(func(int) error { return nil }))
	assert.Equal(t, []int{1, 2, 2, 3}, l.Items())
}
