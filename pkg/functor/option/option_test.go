package option

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSomeAndNone(t *testing.T) {
	t.Parallel()

	v, ok := Some(5).Get()
	assert.True(t, ok)
	assert.Equal(t, 5, v)
	assert.True(t, Some(5).IsSome())
	assert.False(t, Some(5).IsNone())

	_, ok = None[int]().Get()
	assert.False(t, ok)
	assert.True(t, None[int]().IsNone())
	assert.Equal(t, 9, None[int]().UnwrapOr(9))
	assert.Equal(t, 5, Some(5).UnwrapOr(9))
}

func TestMap(t *testing.T) {
	t.Parallel()

	called := false
	out := Map(func(x int) int { called = true; return x * 10 }, None[int]())
	assert.True(t, out.IsNone())
	assert.False(t, called, "f must not run on None")

	assert.Equal(t, Some(30), Map(func(x int) int { return x * 10 }, Some(3)))
}

func TestMap_ZeroValueIsKept(t *testing.T) {
	t.Parallel()

	out := Layer[string, int]()(func(s string) int { return len(s) }, Some(""))
	assert.Equal(t, Some(0), out)
}
