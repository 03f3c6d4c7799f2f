package vt

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/vtx/pkg/rop"
)

func TestTransformer_Transform(t *testing.T) {
	t.Parallel()

	requireSuccess(t, parse.Transform("1"), 1)
	requireNumFailure(t, parse.Transform("2.5"), "2.5")
}

func TestNew_PassesResultThrough(t *testing.T) {
	t.Parallel()

	reason := errors.New("negative")
	positive := New(func(v int) rop.Result[int] {
		if v < 0 {
			return rop.Fail[int](reason)
		}
		return rop.Success(v)
	})

	requireSuccess(t, positive.Transform(4), 4)
	assert.Same(t, reason, positive.Transform(-1).Err())
}

func TestMap_NeverFails(t *testing.T) {
	t.Parallel()

	requireSuccess(t, format.Transform(-12), "-12")
}

func TestEnsure(t *testing.T) {
	t.Parallel()

	reason := errors.New("negative")
	nonNegative := Ensure(func(n int) error {
		if n < 0 {
			return reason
		}
		return nil
	})

	requireSuccess(t, nonNegative.Transform(0), 0)
	assert.Same(t, reason, nonNegative.Transform(-1).Err())

	// Validation composes like any other step.
	requireNumFailure(t, Compose(parse, nonNegative).Transform("x"), "x")
	assert.Same(t, reason, Compose(parse, nonNegative).Transform("-3").Err())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	short := Validate(func(s string) (bool, string) {
		return len(s) <= 3, "too long"
	})

	requireSuccess(t, short.Transform("abc"), "abc")
	assert.EqualError(t, short.Transform("abcd").Err(), "too long")

	lifted := LiftToCollection(short)
	assert.EqualError(t, lifted.Transform([]string{"a", "abcd", "toolong"}).Err(), "too long")
}

func TestIdentity(t *testing.T) {
	t.Parallel()

	requireSuccess(t, Identity[string]().Transform("same"), "same")
}

func TestFrom_AdaptsValueTransformer(t *testing.T) {
	t.Parallel()

	fromReversible := From[string, int](stringToInt)
	requireSuccess(t, fromReversible.Transform("9"), 9)

	fromTransformer := From[string, int](parse)
	requireNumFailure(t, fromTransformer.Transform("x"), "x")
}

func TestConstructors_PanicOnNil(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { New[int, int](nil) })
	assert.Panics(t, func() { Try[int, int](nil) })
	assert.Panics(t, func() { Map[int, int](nil) })
	assert.Panics(t, func() { From[int, int](nil) })
	assert.Panics(t, func() { Ensure[int](nil) })
	assert.Panics(t, func() { Validate[int](nil) })
	assert.Panics(t, func() { NewReversible[int, int](nil, nil) })
	assert.Panics(t, func() { Combine(parse, Transformer[int, string]{}) })
	assert.Panics(t, func() { Compose(Transformer[string, int]{}, format) })
	assert.Panics(t, func() { Chain(Identity[int](), Transformer[int, int]{}) })
	assert.Panics(t, func() { LiftToCollection(Transformer[int, int]{}) })
	assert.PanicsWithValue(t, "vt.Flip: zero Transformer", func() { Flip(Reversible[int, string]{}) })
	assert.Panics(t, func() { LiftReversibleBothOptional(Reversible[int, string]{}) })
}

func TestTransformer_IsReusable(t *testing.T) {
	t.Parallel()

	for i := range 3 {
		requireSuccess(t, parse.Transform(strconv.Itoa(i)), i)
	}
}
