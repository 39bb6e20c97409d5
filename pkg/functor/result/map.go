package result

import "github.com/ib-77/deepmap/pkg/functor"

// Map applies f to a successful value. Failures and cancellations pass
// through with their error. Id and creation time are kept in every case.
func Map[In, Out any](f func(In) Out, input Result[In]) Result[Out] {
	out := carry[In, Out](input)
	if input.isSuccess {
		out.result = f(input.result)
	}
	return out
}

// carry moves everything but the value from one Result type to another.
func carry[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		id:        from.id,
		createdAt: from.createdAt,
		err:       from.err,
		isSuccess: from.isSuccess,
		isCancel:  from.isCancel,
	}
}

// Try calls f on a successful value and converts its error into a failure.
func Try[In, Out any](input Result[In], f func(In) (Out, error)) Result[Out] {
	if !input.IsSuccess() {
		return carry[In, Out](input)
	}

	out, err := f(input.Result())
	return FromError(out, err)
}

// Finally reduces the Result to a plain value.
func Finally[In, Out any](input Result[In],
	onSuccess func(r In) Out,
	onError func(err error) Out,
	onCancel func(err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	} else if input.IsCancel() {
		return onCancel(input.Err())
	} else {
		return onError(input.Err())
	}
}

// Layer returns Map as a functor.Map.
func Layer[In, Out any]() functor.Map[Result[In], Result[Out], In, Out] {
	return Map[In, Out]
}
