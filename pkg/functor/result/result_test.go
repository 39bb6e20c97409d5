package result

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	t.Parallel()

	s := Success(5)
	assert.True(t, s.IsSuccess())
	assert.False(t, s.IsFailure())
	assert.Equal(t, 5, s.Result())
	assert.NotEqual(t, s.Id(), Success(5).Id())

	f := Fail[int](errors.New("boom"))
	assert.True(t, f.IsFailure())
	assert.EqualError(t, f.Err(), "boom")

	c := Cancel[int](nil)
	assert.True(t, c.IsCancel())
	assert.False(t, c.IsFailure())
	assert.ErrorIs(t, c.Err(), ErrCancelled)
}

func TestFromError(t *testing.T) {
	t.Parallel()

	assert.True(t, FromError(1, nil).IsSuccess())
	assert.True(t, FromError(0, errors.New("x")).IsFailure())
	assert.True(t, FromError(0, context.DeadlineExceeded).IsCancel())
	assert.True(t, FromError(0, context.Canceled).IsCancel())
}

func TestMap_KeepsIdentity(t *testing.T) {
	t.Parallel()

	in := Success(7)
	out := Map(strconv.Itoa, in)

	require.True(t, out.IsSuccess())
	assert.Equal(t, "7", out.Result())
	assert.Equal(t, in.Id(), out.Id())
	assert.Equal(t, in.CreatedAt(), out.CreatedAt())
}

func TestMap_PassesFailureAndCancelThrough(t *testing.T) {
	t.Parallel()

	called := false
	f := func(x int) string { called = true; return strconv.Itoa(x) }

	failed := Fail[int](errors.New("bad"))
	out := Layer[int, string]()(f, failed)
	assert.True(t, out.IsFailure())
	assert.EqualError(t, out.Err(), "bad")
	assert.Equal(t, failed.Id(), out.Id())

	cancelled := Cancel[int](context.Canceled)
	out = Map(f, cancelled)
	assert.True(t, out.IsCancel())
	assert.ErrorIs(t, out.Err(), context.Canceled)

	assert.False(t, called)
}

func TestTry(t *testing.T) {
	t.Parallel()

	ok := Try(Success("12"), strconv.Atoi)
	require.True(t, ok.IsSuccess())
	assert.Equal(t, 12, ok.Result())

	bad := Try(Success("x"), strconv.Atoi)
	assert.True(t, bad.IsFailure())

	in := Fail[string](errors.New("earlier"))
	skipped := Try(in, strconv.Atoi)
	assert.EqualError(t, skipped.Err(), "earlier")
	assert.Equal(t, in.Id(), skipped.Id())
}

func TestFinally(t *testing.T) {
	t.Parallel()

	onSuccess := func(v int) string { return "ok:" + strconv.Itoa(v) }
	onError := func(err error) string { return "err" }
	onCancel := func(err error) string { return "cancel" }

	assert.Equal(t, "ok:3", Finally(Success(3), onSuccess, onError, onCancel))
	assert.Equal(t, "err", Finally(Fail[int](errors.New("x")), onSuccess, onError, onCancel))
	assert.Equal(t, "cancel", Finally(Cancel[int](nil), onSuccess, onError, onCancel))
}
