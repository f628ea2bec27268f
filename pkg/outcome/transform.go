package outcome

// Transforms that change the element type live here as package-level
// functions, since Go methods cannot introduce new type parameters.

// Map applies transform to the success value and wraps the result as a new
// success. On failure the captured error is carried forward unchanged and
// transform is not invoked. A panic inside transform is not captured.
func Map[In, Out any](o Outcome[In], transform func(v In) Out) Outcome[Out] {
	if o.IsFailure() {
		return failureFrom[In, Out](o)
	}
	return Success(transform(o.value))
}

// MapCatching is Map with transform run behind the Call boundary: a panic
// inside transform becomes a new failure instead of propagating.
func MapCatching[In, Out any](o Outcome[In], transform func(v In) Out) Outcome[Out] {
	if o.IsFailure() {
		return failureFrom[In, Out](o)
	}
	return Call(func() Out {
		return transform(o.value)
	})
}

// Recover applies transform to the captured error and wraps the result as a
// success. A successful outcome is returned unchanged. A panic inside
// transform is not captured.
func Recover[T any](o Outcome[T], transform func(err error) T) Outcome[T] {
	if o.IsSuccess() {
		return o
	}
	return Success(transform(o.failure.err))
}

// RecoverCatching is Recover with transform run behind the Call boundary.
func RecoverCatching[T any](o Outcome[T], transform func(err error) T) Outcome[T] {
	if o.IsSuccess() {
		return o
	}
	return Call(func() T {
		return transform(o.failure.err)
	})
}

// Fold collapses the outcome to a plain value, invoking exactly one of the
// two handlers. Panics inside the handlers are not captured.
func Fold[In, Out any](o Outcome[In],
	onSuccess func(v In) Out,
	onFailure func(err error) Out) Out {

	if o.IsSuccess() {
		return onSuccess(o.value)
	}
	return onFailure(o.failure.err)
}
