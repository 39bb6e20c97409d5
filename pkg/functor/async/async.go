package async

import (
	"context"
	"sync"

	"github.com/ib-77/deepmap/pkg/functor"
)

// Map forwards f(v) for every v received from in and closes the output once
// in is closed. A nil input maps to a nil output.
func Map[A, B any](f func(A) B, in <-chan A) <-chan B {
	return WithContext[A, B](context.Background())(f, in)
}

// WithContext returns a layer map whose goroutine also stops when ctx is
// done. Values not yet forwarded at that point are dropped and the output
// is closed.
func WithContext[A, B any](ctx context.Context) functor.Map[<-chan A, <-chan B, A, B] {
	return func(f func(A) B, in <-chan A) <-chan B {
		if in == nil {
			return nil
		}

		out := make(chan B, GetBufferSize(ctx, 0))

		go func() {
			defer close(out)

			for {
				select {
				case v, ok := <-in:
					if !ok {
						return
					}
					select {
					case out <- f(v):
					case <-ctx.Done():
						return
					}
				case <-ctx.Done():
					return
				}
			}
		}()

		return out
	}
}

// From streams values on a new channel, stopping early if ctx is done.
func From[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T, GetBufferSize(ctx, 0))

	go func() {
		defer close(in)

		for _, v := range values {
			if ctx.Err() != nil {
				return
			}

			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// Collect drains out until it is closed or ctx is done.
func Collect[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()
		for {
			select {
			case v, ok := <-out:
				if !ok {
					return
				}
				res = append(res, v)
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	return res
}

// First returns the first value received from out, or defaultV if out is
// closed empty or ctx is done first.
func First[T any](ctx context.Context, out <-chan T, defaultV T) T {
	select {
	case v, ok := <-out:
		if !ok {
			return defaultV
		}
		return v
	case <-ctx.Done():
		return defaultV
	}
}

// Layer returns Map as a functor.Map.
func Layer[A, B any]() functor.Map[<-chan A, <-chan B, A, B] {
	return Map[A, B]
}
