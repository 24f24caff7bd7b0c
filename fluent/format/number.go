package format

import (
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	decimalType    = reflect.TypeOf(decimal.Decimal{})
	bigIntPtrType  = reflect.TypeOf((*big.Int)(nil))
	decimalPtrType = reflect.TypeOf((*decimal.Decimal)(nil))
)

// Decimal converts a finite numeric value into a decimal.Decimal.
//
// Every integer and float kind (named types included), decimal.Decimal and
// *big.Int are accepted. ok is false for anything else, for nil pointers and
// for NaN or infinite floats.
func Decimal(v any) (d decimal.Decimal, ok bool) {
	if v == nil {
		return decimal.Zero, false
	}

	return decimalOf(reflect.ValueOf(v))
}

func decimalOf(rv reflect.Value) (decimal.Decimal, bool) {
	if !rv.IsValid() {
		return decimal.Zero, false
	}

	switch rv.Type() {
	case decimalType:
		if rv.CanInterface() {
			return rv.Interface().(decimal.Decimal), true
		}

		return decimal.Zero, false
	case decimalPtrType:
		if rv.IsNil() || !rv.CanInterface() {
			return decimal.Zero, false
		}

		return *rv.Interface().(*decimal.Decimal), true
	case bigIntPtrType:
		if rv.IsNil() || !rv.CanInterface() {
			return decimal.Zero, false
		}

		return decimal.NewFromBigInt(rv.Interface().(*big.Int), 0), true
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return decimal.NewFromInt(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(rv.Uint()), 0), true
	case reflect.Float32:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.Zero, false
		}

		return decimal.NewFromFloat32(float32(f)), true
	case reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.Zero, false
		}

		return decimal.NewFromFloat(f), true
	default:
		return decimal.Zero, false
	}
}

// isNumericKind reports whether k is an integer or float kind.
func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func (f Formatter) formatNumber(rv reflect.Value) string {
	if rv.Kind() == reflect.Float32 || rv.Kind() == reflect.Float64 {
		v := rv.Float()

		switch {
		case math.IsNaN(v):
			return "NaN"
		case math.IsInf(v, 1):
			return "Infinity"
		case math.IsInf(v, -1):
			return "-Infinity"
		}
	}

	if f.printer != nil {
		switch rv.Kind() {
		case reflect.Float32, reflect.Float64:
			return f.printer.Sprintf("%v", rv.Float())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return f.printer.Sprintf("%d", rv.Int())
		default:
			return f.printer.Sprintf("%d", rv.Uint())
		}
	}

	if rv.Kind() >= reflect.Int && rv.Kind() <= reflect.Int64 {
		return strconv.FormatInt(rv.Int(), 10)
	}

	if rv.Kind() >= reflect.Uint && rv.Kind() <= reflect.Uintptr {
		return strconv.FormatUint(rv.Uint(), 10)
	}

	d, _ := decimalOf(rv)

	return d.String()
}

// formatDecimal renders d exactly. With a locale the integer part is grouped
// by the printer and the fraction follows the locale's separator; integer
// parts beyond int64 keep their digits ungrouped.
func (f Formatter) formatDecimal(d decimal.Decimal) string {
	if f.printer == nil {
		return d.String()
	}

	abs := d.Abs()
	whole := abs.Truncate(0)

	var text string
	if n := whole.BigInt(); n.IsInt64() {
		text = f.printer.Sprintf("%d", n.Int64())
	} else {
		text = whole.String()
	}

	if _, fraction, ok := strings.Cut(abs.String(), "."); ok {
		text += f.decimalSeparator + fraction
	}

	if d.Sign() < 0 {
		text = "-" + text
	}

	return text
}
