//go:build unit

package format

import (
	"errors"
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

type absentMarker struct{}

func (absentMarker) NullMarker() {}

type celsius float64

type status string

type point struct {
	X, Y int
	tag  string
}

type node struct {
	Name string
	Next *node
}

func TestFormatNull(t *testing.T) {
	t.Parallel()

	f := Invariant()

	var nilPointer *int
	var nilSlice []string
	var nilMap map[string]int
	var nilErr error

	assert.Equal(t, Null, f.Format(nil))
	assert.Equal(t, Null, f.Format(nilPointer))
	assert.Equal(t, Null, f.Format(nilSlice))
	assert.Equal(t, Null, f.Format(nilMap))
	assert.Equal(t, Null, f.Format(nilErr))
	assert.Equal(t, Null, f.Format(absentMarker{}))
}

func TestFormatStrings(t *testing.T) {
	t.Parallel()

	f := Invariant()

	assert.Equal(t, `"test"`, f.Format("test"))
	assert.Equal(t, `""`, f.Format(""))
	assert.Equal(t, `"ok"`, f.Format(status("ok")))
}

func TestFormatNumbersInvariant(t *testing.T) {
	t.Parallel()

	f := Invariant()

	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "negative float", in: -50.0, want: "-50"},
		{name: "zero float", in: 0.0, want: "0"},
		{name: "negative zero", in: math.Copysign(0, -1), want: "0"},
		{name: "two", in: 2.0, want: "2"},
		{name: "fraction", in: 2.5, want: "2.5"},
		{name: "float32", in: float32(0.1), want: "0.1"},
		{name: "large float", in: 1234567.25, want: "1234567.25"},
		{name: "int", in: -50, want: "-50"},
		{name: "int8", in: int8(-8), want: "-8"},
		{name: "uint64 max", in: uint64(math.MaxUint64), want: "18446744073709551615"},
		{name: "named float", in: celsius(21.5), want: "21.5"},
		{name: "decimal", in: decimal.RequireFromString("-12.340"), want: "-12.34"},
		{name: "big int", in: new(big.Int).Lsh(big.NewInt(1), 70), want: "1180591620717411303424"},
		{name: "nan", in: math.NaN(), want: "NaN"},
		{name: "positive infinity", in: math.Inf(1), want: "Infinity"},
		{name: "negative infinity", in: math.Inf(-1), want: "-Infinity"},
		{name: "complex", in: complex(1, 2), want: "(1+2i)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, f.Format(tt.in))
		})
	}
}

// A French host locale leaves the default rendering untouched while an
// injected French locale visibly changes it.
func TestFormatCultureComesOnlyFromConfig(t *testing.T) {
	t.Setenv("LANG", "fr_FR.UTF-8")
	t.Setenv("LC_ALL", "fr_FR.UTF-8")
	t.Setenv("LC_NUMERIC", "fr_FR.UTF-8")

	f := New(Config{})
	french := New(Config{Locale: language.French})

	assert.True(t, f.Config().Invariant())
	assert.Equal(t, "-50", f.Format(-50.0))
	assert.Equal(t, "1234.5", f.Format(1234.5))
	assert.Equal(t, "1234.5", f.Format(decimal.RequireFromString("1234.5")))

	require.NotEqual(t, f.Format(1234.5), french.Format(1234.5))
	assert.Contains(t, french.Format(1234.5), ",5")
}

func TestFormatInjectedLocale(t *testing.T) {
	t.Parallel()

	french := New(Config{Locale: language.French})
	require.False(t, french.Config().Invariant())

	assert.Equal(t, "2,5", french.Format(2.5))
	assert.Equal(t, "NaN", french.Format(math.NaN()))

	grouped := french.Format(1234567)
	assert.NotEqual(t, "1234567", grouped)

	// every numeric kind is grouped the same way
	assert.Equal(t, grouped, french.Format(uint(1234567)))
	assert.Equal(t, grouped, french.Format(decimal.NewFromInt(1234567)))
	assert.Equal(t, grouped, french.Format(big.NewInt(1234567)))
	assert.Equal(t, "-"+grouped, french.Format(int64(-1234567)))
	assert.Equal(t, "-"+grouped, french.Format(decimal.NewFromInt(-1234567)))

	assert.Equal(t, "2,5", french.Format(decimal.RequireFromString("2.5")))
	assert.Equal(t, "-0,05", french.Format(decimal.RequireFromString("-0.05")))
	assert.Equal(t, grouped+",25", french.Format(decimal.RequireFromString("1234567.25")))
}

func TestFormatOtherScalars(t *testing.T) {
	t.Parallel()

	f := Invariant()

	assert.Equal(t, "true", f.Format(true))
	assert.Equal(t, "boom", f.Format(errors.New("boom")))
	assert.Equal(t, "1.5s", f.Format(1500*time.Millisecond))
	assert.Equal(t, "2024-03-01T10:00:00.5Z",
		f.Format(time.Date(2024, 3, 1, 10, 0, 0, 500_000_000, time.UTC)))
	assert.Equal(t, "func()", f.Format(func() {}))
}

func TestFormatContainers(t *testing.T) {
	t.Parallel()

	f := Invariant()

	assert.Equal(t, "{1, 2, 3}", f.Format([]int{1, 2, 3}))
	assert.Equal(t, `{"a", null}`, f.Format([]any{"a", nil}))
	assert.Equal(t, "{}", f.Format([]string{}))
	assert.Equal(t, "{1.5, -2}", f.Format([2]float64{1.5, -2}))
	assert.Equal(t, `{"a": 1, "b": 2, "c": 3}`, f.Format(map[string]int{"c": 3, "a": 1, "b": 2}))
}

func TestFormatStructsAndPointers(t *testing.T) {
	t.Parallel()

	f := Invariant()

	assert.Equal(t, `point{X: 1, Y: -2, tag: "p"}`, f.Format(point{X: 1, Y: -2, tag: "p"}))
	assert.Equal(t, `point{X: 1, Y: 2, tag: ""}`, f.Format(&point{X: 1, Y: 2}))

	n := 7
	assert.Equal(t, "7", f.Format(&n))

	list := &node{Name: "a", Next: &node{Name: "b"}}
	assert.Equal(t, `node{Name: "a", Next: node{Name: "b", Next: null}}`, f.Format(list))
}

func TestFormatCyclesAreBounded(t *testing.T) {
	t.Parallel()

	loop := &node{Name: "loop"}
	loop.Next = loop

	out := Invariant().Format(loop)

	assert.Contains(t, out, "...")
	assert.NotContains(t, out, "0x")
}

func TestDecimal(t *testing.T) {
	t.Parallel()

	d, ok := Decimal(-50.0)
	require.True(t, ok)
	assert.True(t, d.Equal(decimal.NewFromInt(-50)))

	d, ok = Decimal(uint8(3))
	require.True(t, ok)
	assert.Equal(t, "3", d.String())

	dec := decimal.RequireFromString("0.25")
	d, ok = Decimal(&dec)
	require.True(t, ok)
	assert.Equal(t, "0.25", d.String())

	for _, v := range []any{nil, "1", math.NaN(), math.Inf(1), (*big.Int)(nil), true} {
		_, ok := Decimal(v)
		assert.False(t, ok, "%#v", v)
	}
}
