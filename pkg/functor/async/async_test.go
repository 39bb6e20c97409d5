package async

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_KeepsOrderAndLength(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	out := Map(func(x int) int { return x * 2 }, From(ctx, 1, 2, 3, 4))
	assert.Equal(t, []int{2, 4, 6, 8}, Collect(ctx, out))
	require.NoError(t, ctx.Err())
}

func TestMap_NilChannel(t *testing.T) {
	t.Parallel()

	var in <-chan int
	assert.Nil(t, Layer[int, int]()(func(x int) int { return x }, in))
}

func TestMap_EmptyStreamCloses(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out := Map(func(x int) int { return x }, From[int](ctx))
	assert.Empty(t, Collect(ctx, out))
	require.NoError(t, ctx.Err())
}

func TestWithContext_StopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	in := make(chan int)

	out := WithContext[int, int](ctx)(func(x int) int { return x }, in)
	cancel()

	select {
	case _, ok := <-out:
		assert.False(t, ok, "output should be closed after cancel")
	case <-time.After(time.Second):
		t.Fatal("output was not closed after cancel")
	}
}

func TestWithBuffer(t *testing.T) {
	t.Parallel()

	ctx := WithBuffer(context.Background(), 3)
	assert.Equal(t, 3, GetBufferSize(ctx, 0))
	assert.Equal(t, 5, GetBufferSize(context.Background(), 5))

	in := make(chan int, 3)
	in <- 1
	in <- 2
	in <- 3
	close(in)

	out := WithContext[int, int](ctx)(func(x int) int { return -x }, in)
	assert.Equal(t, 3, cap(out))
	assert.Equal(t, []int{-1, -2, -3}, Collect(ctx, out))
}

func TestFirst(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.Equal(t, 7, First(ctx, From(ctx, 7, 8), -1))
	assert.Equal(t, -1, First(ctx, From[int](ctx), -1))

	done, stop := context.WithCancel(context.Background())
	stop()
	var never <-chan int = make(chan int)
	assert.Equal(t, -1, First(done, never, -1))
}
