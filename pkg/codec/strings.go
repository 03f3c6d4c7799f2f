package codec

import (
	"strconv"
	"strings"
	"time"

	"github.com/ib-77/vtx/pkg/rop"
	"github.com/ib-77/vtx/pkg/vt"
)

// Int converts between decimal strings and int. "1.5" and "" are rejected.
func Int() vt.Reversible[string, int] {
	return vt.NewReversible(
		func(s string) rop.Result[int] {
			n, err := strconv.Atoi(s)
			if err != nil {
				return fail[int]("int", s, err)
			}
			return rop.Success(n)
		},
		func(n int) rop.Result[string] {
			return rop.Success(strconv.Itoa(n))
		},
	)
}

// IntBase converts between strings in the given base and int64 values that
// fit in bitSize bits.
func IntBase(base, bitSize int) vt.Reversible[string, int64] {
	return vt.NewReversible(
		func(s string) rop.Result[int64] {
			n, err := strconv.ParseInt(s, base, bitSize)
			if err != nil {
				return fail[int64]("int", s, err)
			}
			return rop.Success(n)
		},
		func(n int64) rop.Result[string] {
			return rop.Success(strconv.FormatInt(n, base))
		},
	)
}

// Float converts between strings and float64. The reverse direction uses the
// shortest representation that parses back to the same value.
func Float(bitSize int) vt.Reversible[string, float64] {
	return vt.NewReversible(
		func(s string) rop.Result[float64] {
			f, err := strconv.ParseFloat(s, bitSize)
			if err != nil {
				return fail[float64]("float", s, err)
			}
			return rop.Success(f)
		},
		func(f float64) rop.Result[string] {
			return rop.Success(strconv.FormatFloat(f, 'g', -1, bitSize))
		},
	)
}

func Bool() vt.Reversible[string, bool] {
	return vt.NewReversible(
		func(s string) rop.Result[bool] {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return fail[bool]("bool", s, err)
			}
			return rop.Success(b)
		},
		func(b bool) rop.Result[string] {
			return rop.Success(strconv.FormatBool(b))
		},
	)
}

// Time converts between strings in layout and time.Time.
func Time(layout string) vt.Reversible[string, time.Time] {
	return vt.NewReversible(
		func(s string) rop.Result[time.Time] {
			ts, err := time.Parse(layout, s)
			if err != nil {
				return fail[time.Time]("time", s, err)
			}
			return rop.Success(ts)
		},
		func(ts time.Time) rop.Result[string] {
			return rop.Success(ts.Format(layout))
		},
	)
}

func TrimSpace() vt.Transformer[string, string] {
	return vt.Map(strings.TrimSpace)
}

// NonEmpty passes non-empty strings through and fails on "" with ErrEmpty.
func NonEmpty() vt.Transformer[string, string] {
	return vt.Ensure(func(s string) error {
		if s == "" {
			return &Error{Codec: "non-empty", Input: s, Err: ErrEmpty}
		}
		return nil
	})
}
