package rest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResult_Success(t *testing.T) {
	r := Success(42)

	require.True(t, r.IsSuccess())
	require.False(t, r.IsFailure())
	require.NoError(t, r.Err())

	v, ok := r.Value()
	require.True(t, ok)
	require.Equal(t, 42, v)
}

func TestResult_Failure(t *testing.T) {
	boom := errors.New("boom")
	r := Failure[int](boom)

	require.False(t, r.IsSuccess())
	require.True(t, r.IsFailure())
	require.ErrorIs(t, r.Err(), boom)

	v, ok := r.Value()
	require.False(t, ok)
	require.Zero(t, v)
}

func TestResult_ExactlyOneVariant(t *testing.T) {
	// A success never exposes an error, a failure never exposes a value.
	s := Success("ok")
	require.Nil(t, s.Err())

	f := Failure[string](errors.New("no"))
	v, ok := f.Value()
	require.False(t, ok)
	require.Empty(t, v)
}
