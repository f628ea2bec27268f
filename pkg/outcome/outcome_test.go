package outcome

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSuccessAccessors(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	o := Success(42)
	require.True(o.IsSuccess())
	require.False(o.IsFailure())
	require.Equal(42, o.Value())
	require.NoError(o.Err())

	v, err := o.Get()
	require.Equal(42, v)
	require.NoError(err)
}

func TestFailureAccessors(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	errTest := errors.New("test err")
	o := Failure[int](errTest)
	require.True(o.IsFailure())
	require.False(o.IsSuccess())
	require.Equal(0, o.Value())
	require.Same(errTest, o.Err())

	v, err := o.Get()
	require.Equal(0, v)
	require.Same(errTest, err)
}

func TestAccessorsAreIdempotent(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	errTest := errors.New("idem")
	s := Success("v")
	f := Failure[string](errTest)

	for i := 0; i < 3; i++ {
		require.True(s.IsSuccess())
		require.False(s.IsFailure())
		require.Equal("v", s.Value())
		require.NoError(s.Err())

		require.True(f.IsFailure())
		require.Equal("", f.Value())
		require.Same(errTest, f.Err())
	}
}

func TestMustReturnsValue(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	require.Equal(7, Success(7).Must())
	require.NotPanics(func() { Success(7).MustSucceed() })
}

func TestMustRepanicsCapturedError(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	errTest := errors.New("boom")
	o := Failure[int](errTest)

	defer func() {
		require.Same(errTest, recover())
	}()
	o.Must()
}

func TestValueOr(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	require.Equal(1, Success(1).ValueOr(9))
	require.Equal(9, Failure[int](errors.New("no")).ValueOr(9))
}

func TestValueOrElse(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	errTest := errors.New("subst")
	called := false

	require.Equal(1, Success(1).ValueOrElse(func(err error) int {
		called = true
		return 9
	}))
	require.False(called)

	got := Failure[int](errTest).ValueOrElse(func(err error) int {
		require.Same(errTest, err)
		return 9
	})
	require.Equal(9, got)
}

func TestOnSuccessOnFailureChaining(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	errTest := errors.New("side")
	var seenValue int
	var seenErr error
	successCalls := 0
	failureCalls := 0

	s := Success(5)
	chained := s.
		OnSuccess(func(v int) { successCalls++; seenValue = v }).
		OnFailure(func(err error) { failureCalls++ })

	require.Equal(s.Id(), chained.Id())
	require.Equal(1, successCalls)
	require.Equal(5, seenValue)
	require.Equal(0, failureCalls)

	f := Failure[int](errTest)
	chained = f.
		OnSuccess(func(v int) { successCalls++ }).
		OnFailure(func(err error) { failureCalls++; seenErr = err })

	require.Equal(f.Id(), chained.Id())
	require.Equal(1, successCalls)
	require.Equal(1, failureCalls)
	require.Same(errTest, seenErr)
}

func TestFailureWithNilErrorIsStillFailure(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	o := Failure[int](nil)
	require.True(o.IsFailure())
	require.NoError(o.Err())
}

func TestOutcomeMetadata(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	a := Success(1)
	b := Success(1)
	require.NotEqual(a.Id(), b.Id())
	require.False(a.CreatedAt().IsZero())
}
