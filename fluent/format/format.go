package format

import (
	"fmt"
	"math/big"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/LerianStudio/lib-fluent/fluent/internal/nilcheck"
	"github.com/shopspring/decimal"
	"golang.org/x/text/message"
)

// Null is the marker rendered for nil and absent values.
const Null = "null"

// maxDepth bounds recursion into nested containers and pointer chains.
const maxDepth = 8

// NullMarker is implemented by values that must render as Null even though
// they are not nil, such as the absent marker of a dynamic subject.
type NullMarker interface {
	NullMarker()
}

// Formatter renders values into diagnostic text. The zero value is the
// invariant formatter.
type Formatter struct {
	config  Config
	printer *message.Printer
	// decimalSeparator is the locale's separator, set along with printer.
	decimalSeparator string
}

// New returns a Formatter bound to cfg.
func New(cfg Config) Formatter {
	f := Formatter{config: cfg, printer: cfg.printer()}
	if f.printer != nil {
		f.decimalSeparator = strings.TrimSuffix(strings.TrimPrefix(f.printer.Sprintf("%v", 1.5), "1"), "5")
	}

	return f
}

// Invariant returns the culture-free Formatter.
func Invariant() Formatter {
	return Formatter{}
}

// Config returns the configuration f was built with.
func (f Formatter) Config() Config {
	return f.config
}

// Format renders v.
func (f Formatter) Format(v any) string {
	if v == nil {
		return Null
	}

	return f.format(reflect.ValueOf(v), 0)
}

func (f Formatter) format(rv reflect.Value, depth int) string {
	if nilcheck.Value(rv) {
		return Null
	}

	if depth > maxDepth {
		return "..."
	}

	if rv.CanInterface() {
		if text, ok := f.formatKnown(rv.Interface()); ok {
			return text
		}
	}

	switch rv.Kind() {
	case reflect.String:
		return quote(rv.String())
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Complex64, reflect.Complex128:
		return strconv.FormatComplex(rv.Complex(), 'g', -1, 128)
	case reflect.Interface:
		return f.format(rv.Elem(), depth)
	case reflect.Pointer:
		return f.format(rv.Elem(), depth+1)
	case reflect.Slice, reflect.Array:
		return f.formatSequence(rv, depth)
	case reflect.Map:
		return f.formatMap(rv, depth)
	case reflect.Struct:
		return f.formatStruct(rv, depth)
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.Type().String()
	}

	if isNumericKind(rv.Kind()) {
		return f.formatNumber(rv)
	}

	return rv.Type().String()
}

// formatKnown handles the types with a dedicated canonical rendering.
func (f Formatter) formatKnown(v any) (string, bool) {
	switch value := v.(type) {
	case NullMarker:
		return Null, true
	case string:
		return quote(value), true
	case decimal.Decimal:
		return f.formatDecimal(value), true
	case *big.Int:
		return f.formatDecimal(decimal.NewFromBigInt(value, 0)), true
	case time.Time:
		return value.Format(time.RFC3339Nano), true
	case time.Duration:
		return value.String(), true
	case error:
		return value.Error(), true
	case fmt.Stringer:
		return value.String(), true
	default:
		return "", false
	}
}

func (f Formatter) formatSequence(rv reflect.Value, depth int) string {
	parts := make([]string, rv.Len())
	for i := range parts {
		parts[i] = f.format(rv.Index(i), depth+1)
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

func (f Formatter) formatMap(rv reflect.Value, depth int) string {
	entries := make([]string, 0, rv.Len())

	iter := rv.MapRange()
	for iter.Next() {
		entries = append(entries, f.format(iter.Key(), depth+1)+": "+f.format(iter.Value(), depth+1))
	}

	sort.Strings(entries)

	return "{" + strings.Join(entries, ", ") + "}"
}

func (f Formatter) formatStruct(rv reflect.Value, depth int) string {
	t := rv.Type()

	fields := make([]string, t.NumField())
	for i := range fields {
		fields[i] = t.Field(i).Name + ": " + f.format(rv.Field(i), depth+1)
	}

	name := t.Name()
	if name == "" {
		name = "struct"
	}

	return name + "{" + strings.Join(fields, ", ") + "}"
}

func quote(s string) string {
	return `"` + s + `"`
}
