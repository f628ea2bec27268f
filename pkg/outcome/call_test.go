package outcome

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCallSuccess(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	o := Call(func() int { return 42 })
	require.True(o.IsSuccess())
	require.Equal(42, o.Value())
}

func TestCallCapturesErrorPanic(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	errTest := errors.New("x")
	o := Call(func() int { panic(errTest) })
	require.True(o.IsFailure())
	require.Same(errTest, o.Err())
	require.Equal("x", o.Err().Error())
}

func TestCallWrapsNonErrorPanic(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	o := Call(func() string { panic("raw value") })
	require.True(o.IsFailure())

	var pe PanicError
	require.ErrorAs(o.Err(), &pe)
	require.Equal("raw value", pe.Value)
	require.Equal("panic: raw value", pe.Error())
}

func TestCallRunsExactlyOnce(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	calls := 0
	Call(func() int { calls++; return 0 })
	require.Equal(1, calls)
}

func TestFuncCallMatchesFreeForm(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	o := Func[int](func() int { return 7 }).Call()
	require.True(o.IsSuccess())
	require.Equal(7, o.Value())

	errTest := errors.New("bound")
	o = Func[int](func() int { panic(errTest) }).Call()
	require.True(o.IsFailure())
	require.Same(errTest, o.Err())
}

func TestTry(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	o := Try(func() (int, error) { return 3, nil })
	require.True(o.IsSuccess())
	require.Equal(3, o.Value())

	errTest := errors.New("native")
	o = Try(func() (int, error) { return 0, errTest })
	require.True(o.IsFailure())
	require.Same(errTest, o.Err())
}
