package dynamic

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/LerianStudio/lib-fluent/fluent/internal/nilcheck"
)

// Absent marks a member that could not be resolved.
type Absent struct {
	// Path is the dotted path up to and including the failing member.
	Path  string
	Cause error
}

// NullMarker makes Absent render as null.
func (Absent) NullMarker() {}

// String describes the failed access.
func (a Absent) String() string {
	return fmt.Sprintf("absent %s: %v", a.Path, a.Cause)
}

// Value is either a resolved value or Absent.
type Value struct {
	value  any
	absent *Absent
}

// Of wraps an already resolved value.
func Of(v any) Value {
	if a, ok := v.(Absent); ok {
		return Value{absent: &a}
	}

	return Value{value: v}
}

// IsAbsent reports whether the resolution failed.
func (v Value) IsAbsent() bool {
	return v.absent != nil
}

// Absent returns the absent marker when the resolution failed.
func (v Value) Absent() (Absent, bool) {
	if v.absent == nil {
		return Absent{}, false
	}

	return *v.absent, true
}

// Interface returns the resolved value, or the Absent marker.
func (v Value) Interface() any {
	if v.absent != nil {
		return *v.absent
	}

	return v.value
}

// Member resolves one more path segment from v. An absent v stays absent.
func (v Value) Member(name string) Value {
	if v.absent != nil {
		return v
	}

	return Resolve(v.value, name)
}

// Resolve follows path from subject. Segments may themselves be dotted
// ("Owner.Name"). A panic raised by a resolved method is not an access
// failure and propagates to the caller.
func Resolve(subject any, path ...string) Value {
	segments := split(path)
	if len(segments) == 0 {
		return Value{value: subject}
	}

	current := reflect.ValueOf(subject)

	for i, name := range segments {
		next, err := member(current, name)
		if err != nil {
			return Value{absent: &Absent{
				Path:  strings.Join(segments[:i+1], "."),
				Cause: fmt.Errorf("%w: %q", err, name),
			}}
		}

		current = next
	}

	return Value{value: interfaceOf(current)}
}

func split(path []string) []string {
	segments := make([]string, 0, len(path))

	for _, p := range path {
		for _, s := range strings.Split(p, ".") {
			if s = strings.TrimSpace(s); s != "" {
				segments = append(segments, s)
			}
		}
	}

	return segments
}

func member(current reflect.Value, name string) (reflect.Value, error) {
	if nilcheck.Value(current) {
		return reflect.Value{}, ErrNilIntermediate
	}

	if result, ok, err := callMethod(current, name); ok || err != nil {
		return result, err
	}

	target, dereferenced := current, false
	for target.Kind() == reflect.Pointer || target.Kind() == reflect.Interface {
		if target.IsNil() {
			return reflect.Value{}, ErrNilIntermediate
		}

		target, dereferenced = target.Elem(), true
	}

	if dereferenced {
		if result, ok, err := callMethod(target, name); ok || err != nil {
			return result, err
		}
	}

	switch target.Kind() {
	case reflect.Struct:
		return field(target, name)
	case reflect.Map:
		return mapEntry(target, name)
	case reflect.Slice, reflect.Array, reflect.String:
		return element(target, name)
	default:
		return reflect.Value{}, ErrMemberNotFound
	}
}

func callMethod(v reflect.Value, name string) (reflect.Value, bool, error) {
	m, ok := v.Type().MethodByName(name)
	if !ok || v.Kind() == reflect.Interface {
		return reflect.Value{}, false, nil
	}

	// the receiver counts as the first input of a method expression
	if m.Type.NumIn() != 1 || m.Type.NumOut() != 1 {
		return reflect.Value{}, false, ErrUnsupportedShape
	}

	return v.Method(m.Index).Call(nil)[0], true, nil
}

func field(v reflect.Value, name string) (reflect.Value, error) {
	sf, ok := v.Type().FieldByName(name)
	if !ok {
		return reflect.Value{}, ErrMemberNotFound
	}

	if !sf.IsExported() {
		return reflect.Value{}, ErrUnexported
	}

	f, err := v.FieldByIndexErr(sf.Index)
	if err != nil {
		return reflect.Value{}, errors.Join(ErrNilIntermediate, err)
	}

	return f, nil
}

func mapEntry(v reflect.Value, name string) (reflect.Value, error) {
	keyType := v.Type().Key()

	var key reflect.Value

	switch {
	case keyType.Kind() == reflect.String:
		key = reflect.ValueOf(name).Convert(keyType)
	case keyType.Kind() >= reflect.Int && keyType.Kind() <= reflect.Int64:
		// parsing at the key's width rejects names the key type cannot hold
		n, err := strconv.ParseInt(name, 10, keyType.Bits())
		if err != nil {
			return reflect.Value{}, ErrMemberNotFound
		}

		key = reflect.ValueOf(n).Convert(keyType)
	case keyType.Kind() >= reflect.Uint && keyType.Kind() <= reflect.Uintptr:
		n, err := strconv.ParseUint(name, 10, keyType.Bits())
		if err != nil {
			return reflect.Value{}, ErrMemberNotFound
		}

		key = reflect.ValueOf(n).Convert(keyType)
	default:
		return reflect.Value{}, ErrMemberNotFound
	}

	entry := v.MapIndex(key)
	if !entry.IsValid() {
		return reflect.Value{}, ErrMemberNotFound
	}

	return entry, nil
}

func element(v reflect.Value, name string) (reflect.Value, error) {
	i, err := strconv.Atoi(name)
	if err != nil {
		return reflect.Value{}, ErrMemberNotFound
	}

	if i < 0 || i >= v.Len() {
		return reflect.Value{}, ErrIndexOutOfRange
	}

	return v.Index(i), nil
}

func interfaceOf(v reflect.Value) any {
	if !v.IsValid() {
		return nil
	}

	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}

		v = v.Elem()
	}

	if !v.CanInterface() {
		return nil
	}

	return v.Interface()
}
