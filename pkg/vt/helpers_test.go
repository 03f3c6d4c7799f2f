package vt

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ib-77/vtx/pkg/rop"
)

// parse and format are the string <-> int leaves the tests are built on.
var (
	parse       = Try(strconv.Atoi)
	format      = Map(strconv.Itoa)
	stringToInt = Combine(parse, format)
)

// counting wraps t and counts how often it is invoked.
func counting[In, Out any](t Transformer[In, Out], calls *int) Transformer[In, Out] {
	return New(func(v In) rop.Result[Out] {
		*calls++
		return t.Transform(v)
	})
}

// recording wraps t and appends name to log on every invocation.
func recording[In, Out any](name string, t Transformer[In, Out], log *[]string) Transformer[In, Out] {
	return New(func(v In) rop.Result[Out] {
		*log = append(*log, name)
		return t.Transform(v)
	})
}

func failWith[In, Out any](err error) Transformer[In, Out] {
	return New(func(In) rop.Result[Out] {
		return rop.Fail[Out](err)
	})
}

func requireSuccess[T any](t *testing.T, res rop.Result[T], want T) {
	t.Helper()
	require.Truef(t, res.IsSuccess(), "expected success, got error: %v", res.Err())
	require.Equal(t, want, res.Result())
}

// requireNumFailure asserts res failed while parsing num.
func requireNumFailure[T any](t *testing.T, res rop.Result[T], num string) {
	t.Helper()
	require.Truef(t, res.IsFailure(), "expected failure, got success: %v", res.Result())
	var numErr *strconv.NumError
	require.True(t, errors.As(res.Err(), &numErr), "unexpected error %v", res.Err())
	require.Equal(t, num, numErr.Num)
}
