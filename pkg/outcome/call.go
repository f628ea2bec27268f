package outcome

import "fmt"

// PanicError wraps a panic value that is not itself an error, so the value
// survives the trip through the failure channel and back out of Must.
type PanicError struct {
	Value any
}

func (e PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Call runs fn exactly once, synchronously, and returns its result as a
// success. A panic raised by fn is recovered and returned as a failure: an
// error panic value is captured as-is, anything else is wrapped in
// PanicError.
func Call[T any](fn func() T) (out Outcome[T]) {
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok {
				out = Failure[T](err)
				return
			}
			out = Failure[T](PanicError{Value: r})
		}
	}()
	return Success(fn())
}

// Func is a zero-argument computation with the Call boundary attached as a
// method, for call sites that pass computations around as values.
type Func[T any] func() T

func (f Func[T]) Call() Outcome[T] {
	return Call[T](f)
}

// Try lifts Go's native (T, error) convention into an Outcome. Unlike Call it
// does not recover panics.
func Try[T any](fn func() (T, error)) Outcome[T] {
	v, err := fn()
	if err != nil {
		return Failure[T](err)
	}
	return Success(v)
}
