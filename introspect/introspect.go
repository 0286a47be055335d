// Package introspect reads fields, properties, and methods off opaque host
// objects whose shapes are unknown at build time. Every probe tries several
// conventional name spellings and reports absence instead of failing:
// nothing in this package panics past its boundary, and a missing member is
// an expected outcome, not an error.
package introspect

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
	"unsafe"
)

// MemberProvider lets host adapters expose dynamic members directly,
// bypassing reflection.
type MemberProvider interface {
	Member(name string) (any, bool)
}

// Read locates the first member matching any of the candidate names and
// returns its value. Fields (exported or not), map entries, and zero-arg
// value-returning methods are all considered.
func Read(obj any, names ...string) (value any, ok bool) {
	defer func() {
		if recover() != nil {
			value, ok = nil, false
		}
	}()
	if obj == nil {
		return nil, false
	}
	for _, name := range names {
		for _, variant := range variants(name) {
			if v, found := readMember(obj, variant); found {
				return v, true
			}
		}
		// Case-insensitive sweep catches spellings the variant list missed.
		if v, found := readMemberFold(obj, name); found {
			return v, true
		}
	}
	return nil, false
}

// Invoke calls the first matching method with the given arguments and
// returns its first result. Only exported methods are reachable through Go
// reflection; candidate lists should lead with an exported-style spelling.
func Invoke(obj any, names []string, args ...any) (value any, ok bool) {
	defer func() {
		if recover() != nil {
			value, ok = nil, false
		}
	}()
	if obj == nil {
		return nil, false
	}
	for _, name := range names {
		for _, variant := range variants(name) {
			if v, found := invokeMethod(obj, variant, args); found {
				return v, true
			}
		}
	}
	return nil, false
}

// ReadString reads a member and coerces it to a string. Strings, byte
// slices, and fmt.Stringer values qualify.
func ReadString(obj any, names ...string) (string, bool) {
	v, ok := Read(obj, names...)
	if !ok {
		return "", false
	}
	return AsString(v)
}

// ReadInt reads a member and coerces it to an int. Integer and float kinds
// qualify; floats are truncated.
func ReadInt(obj any, names ...string) (int, bool) {
	v, ok := Read(obj, names...)
	if !ok {
		return 0, false
	}
	return AsInt(v)
}

// ReadFloat reads a member and coerces it to a float64.
func ReadFloat(obj any, names ...string) (float64, bool) {
	v, ok := Read(obj, names...)
	if !ok {
		return 0, false
	}
	return AsFloat(v)
}

// ReadBool reads a boolean member.
func ReadBool(obj any, names ...string) (bool, bool) {
	v, ok := Read(obj, names...)
	if !ok {
		return false, false
	}
	b, isBool := v.(bool)
	return b, isBool
}

// ReadSlice reads a member holding a slice or array and returns its
// elements.
func ReadSlice(obj any, names ...string) ([]any, bool) {
	v, ok := Read(obj, names...)
	if !ok || v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// AsString coerces a probed value to a string.
func AsString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case []byte:
		return string(s), true
	case fmt.Stringer:
		if s == nil {
			return "", false
		}
		return s.String(), true
	default:
		return "", false
	}
}

// AsInt coerces a probed value to an int.
func AsInt(v any) (int, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return int(rv.Float()), true
	default:
		return 0, false
	}
}

// AsFloat coerces a probed value to a float64.
func AsFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	default:
		return 0, false
	}
}

// variants expands a candidate name into the conventional spellings host
// code tends to use: as given, exported, camelCase, accessor-prefixed, and
// the underscore-prefixed private forms.
func variants(name string) []string {
	if name == "" {
		return nil
	}
	upper := upperFirst(name)
	lower := lowerFirst(name)
	return []string{
		name,
		upper,
		lower,
		"Get" + upper,
		"_" + lower,
		"m_" + upper,
	}
}

func upperFirst(s string) string {
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func lowerFirst(s string) string {
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

func readMember(obj any, name string) (any, bool) {
	if mp, ok := obj.(MemberProvider); ok {
		if v, found := mp.Member(name); found {
			return v, true
		}
	}
	if m, ok := obj.(map[string]any); ok {
		if v, found := m[name]; found {
			return v, true
		}
	}
	if v, ok := readField(obj, name, false); ok {
		return v, true
	}
	if v, ok := invokeMethod(obj, name, nil); ok {
		return v, true
	}
	return nil, false
}

func readMemberFold(obj any, name string) (any, bool) {
	if m, ok := obj.(map[string]any); ok {
		for k, v := range m {
			if strings.EqualFold(k, name) {
				return v, true
			}
		}
	}
	return readField(obj, name, true)
}

// readField resolves a struct field by name, reading unexported fields
// through an addressable copy.
func readField(obj any, name string, fold bool) (any, bool) {
	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, false
	}
	t := v.Type()
	idx := -1
	for i := 0; i < t.NumField(); i++ {
		fname := t.Field(i).Name
		if fname == name || (fold && strings.EqualFold(fname, name)) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, false
	}
	f := v.Field(idx)
	if f.CanInterface() {
		return f.Interface(), true
	}
	if !f.CanAddr() {
		// Copy into fresh addressable storage so the unexported field
		// can be exposed through unsafe.
		tmp := reflect.New(t).Elem()
		tmp.Set(v)
		f = tmp.Field(idx)
	}
	f = reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr())).Elem()
	return f.Interface(), true
}

func invokeMethod(obj any, name string, args []any) (any, bool) {
	v := reflect.ValueOf(obj)
	m := v.MethodByName(name)
	if !m.IsValid() && v.Kind() != reflect.Pointer && v.CanAddr() {
		m = v.Addr().MethodByName(name)
	}
	if !m.IsValid() && v.Kind() != reflect.Pointer {
		// Pointer-receiver methods on a value: call through a copy.
		p := reflect.New(v.Type())
		p.Elem().Set(v)
		m = p.MethodByName(name)
	}
	if !m.IsValid() {
		return nil, false
	}
	mt := m.Type()
	if mt.NumIn() != len(args) || mt.NumOut() == 0 {
		return nil, false
	}
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		av := reflect.ValueOf(a)
		if !av.IsValid() || !av.Type().AssignableTo(mt.In(i)) {
			return nil, false
		}
		in[i] = av
	}
	out := m.Call(in)
	return out[0].Interface(), true
}
