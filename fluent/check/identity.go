package check

import (
	"reflect"

	"github.com/LerianStudio/lib-fluent/fluent/format"
	"github.com/LerianStudio/lib-fluent/fluent/internal/nilcheck"
	"github.com/LerianStudio/lib-fluent/fluent/message"
	"github.com/google/go-cmp/cmp"
)

var (
	null = message.Template{
		Positive: "The {subject} must be null.",
		Negated:  "The {subject} must not be null.",
	}
	notNull = message.Template{
		Positive: "The {subject} is null whereas it must not.",
		Negated:  "The {subject} is not null whereas it must.",
	}
	equal = message.Template{
		Positive: "The {subject} is not equal to the expected one.",
		Negated:  "The {subject} is equal to the expected one whereas it must not.",
	}
	sameReference = message.Template{
		Positive: "The {subject} is not the expected reference.",
		Negated:  "The {subject} is the expected reference whereas it must not.",
	}
)

// equalOptions let cmp look into unexported fields instead of panicking.
var equalOptions = []cmp.Option{
	cmp.Exporter(func(reflect.Type) bool { return true }),
}

// IsNull passes when the subject is nil, a typed nil or an absent dynamic member.
func (c Check) IsNull() Check {
	return c.run(predicate{name: "IsNull", template: null, test: func(subject any) (bool, error) {
		return isNull(subject), nil
	}})
}

// IsNotNull passes when IsNull would fail.
func (c Check) IsNotNull() Check {
	return c.run(predicate{name: "IsNotNull", template: notNull, test: func(subject any) (bool, error) {
		return !isNull(subject), nil
	}})
}

// IsEqualTo passes when the subject deeply equals expected. Equal methods such
// as decimal.Decimal.Equal and time.Time.Equal are honoured; values of different
// types are never equal.
func (c Check) IsEqualTo(expected any) Check {
	return c.run(predicate{
		name:             "IsEqualTo",
		template:         equal,
		hasExpected:      true,
		expected:         expected,
		negatedQualifier: message.QualifierDifferentFrom,
		test: func(subject any) (bool, error) {
			return areEqual(subject, expected), nil
		},
	})
}

// IsSameReferenceAs passes when the subject and expected share identity:
// the same pointer, map, channel, function or slice backing array. Value kinds
// have no identity of their own and compare by value.
func (c Check) IsSameReferenceAs(expected any) Check {
	return c.run(predicate{
		name:             "IsSameReferenceAs",
		template:         sameReference,
		hasExpected:      true,
		expected:         expected,
		negatedQualifier: message.QualifierDifferentFrom,
		test: func(subject any) (bool, error) {
			return areSame(subject, expected), nil
		},
	})
}

func isAbsent(v any) bool {
	_, ok := v.(format.NullMarker)
	return ok
}

func isNull(v any) bool {
	return isAbsent(v) || nilcheck.Interface(v)
}

// areEqual treats absent values as equal to nothing, nil included.
func areEqual(actual, expected any) bool {
	if isAbsent(actual) || isAbsent(expected) {
		return false
	}

	actualNil, expectedNil := nilcheck.Interface(actual), nilcheck.Interface(expected)
	if actualNil || expectedNil {
		return actualNil && expectedNil
	}

	return cmp.Equal(actual, expected, equalOptions...)
}

func areSame(actual, expected any) bool {
	if isAbsent(actual) || isAbsent(expected) {
		return false
	}

	if actual == nil || expected == nil {
		return actual == nil && expected == nil
	}

	a, e := reflect.ValueOf(actual), reflect.ValueOf(expected)
	if a.Type() != e.Type() {
		return false
	}

	switch a.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return a.Pointer() == e.Pointer()
	case reflect.Slice:
		return a.Pointer() == e.Pointer() && a.Len() == e.Len()
	default:
		if !a.Type().Comparable() {
			return false
		}

		return comparableEqual(actual, expected)
	}
}

// comparableEqual is == that reports false instead of panicking when an
// interface field holds an incomparable value.
func comparableEqual(a, b any) (same bool) {
	defer func() {
		if recover() != nil {
			same = false
		}
	}()

	return a == b
}
