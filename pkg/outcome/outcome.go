package outcome

import (
	"time"

	"github.com/google/uuid"
)

// capturedFailure tags the payload slot of an Outcome as a failure. The type
// is unexported and Failure is its only constructor, so a caller can never
// hand in a success value that gets mistaken for the failure tag. Two markers
// are considered equal when they wrap the same error value.
type capturedFailure struct {
	err error
}

// Outcome holds either a success value of type T or a captured failure.
// Exactly one of the two holds: a nil failure marker means success. Outcomes
// are immutable after construction and are created only via Success, Failure
// or the Call/Try boundaries.
type Outcome[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	failure   *capturedFailure
}

func Success[T any](v T) Outcome[T] {
	return Outcome[T]{
		value:     v,
		failure:   nil,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[T any](err error) Outcome[T] {
	return Outcome[T]{
		failure:   &capturedFailure{err: err},
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// failureFrom carries a failed outcome into a new element type, keeping the
// captured error, id and creation time of the original.
func failureFrom[In, Out any](from Outcome[In]) Outcome[Out] {
	return Outcome[Out]{
		failure:   from.failure,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (o Outcome[T]) IsSuccess() bool {
	return o.failure == nil
}

func (o Outcome[T]) IsFailure() bool {
	return o.failure != nil
}

// Value returns the success value, or the zero value of T on failure.
func (o Outcome[T]) Value() T {
	return o.value
}

// Err returns the captured error, or nil on success.
func (o Outcome[T]) Err() error {
	if o.failure != nil {
		return o.failure.err
	}
	return nil
}

// Get returns the success value and a nil error, or the zero value of T and
// the captured error.
func (o Outcome[T]) Get() (T, error) {
	return o.value, o.Err()
}

// Must returns the success value, or panics with the captured error.
func (o Outcome[T]) Must() T {
	o.MustSucceed()
	return o.value
}

// MustSucceed panics with the captured error if the outcome is a failure.
// Together with Must it is the escape hatch back to panic-based flow.
func (o Outcome[T]) MustSucceed() {
	if o.failure != nil {
		panic(o.failure.err)
	}
}

// ValueOr returns the success value, or def on failure.
func (o Outcome[T]) ValueOr(def T) T {
	if o.failure != nil {
		return def
	}
	return o.value
}

// ValueOrElse returns the success value, or the result of onFailure applied
// to the captured error. A panic inside onFailure is not captured.
func (o Outcome[T]) ValueOrElse(onFailure func(err error) T) T {
	if o.failure != nil {
		return onFailure(o.failure.err)
	}
	return o.value
}

// OnSuccess invokes action with the success value, if any, and returns the
// outcome unchanged for chaining.
func (o Outcome[T]) OnSuccess(action func(v T)) Outcome[T] {
	if o.failure == nil {
		action(o.value)
	}
	return o
}

// OnFailure invokes action with the captured error, if any, and returns the
// outcome unchanged for chaining.
func (o Outcome[T]) OnFailure(action func(err error)) Outcome[T] {
	if o.failure != nil {
		action(o.failure.err)
	}
	return o
}

func (o Outcome[T]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[T]) Id() uuid.UUID {
	return o.id
}
