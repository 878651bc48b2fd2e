package reactive

import "reflect"

// strictEqual compares two state values with identity semantics: primitives
// by value, reference types (slices, maps, funcs, channels, pointers) by
// reference identity. It is deliberately not a deep comparison: replacing a
// slice with an equal but distinct slice counts as a change.
func strictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va := reflect.ValueOf(a)
	vb := reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Slice, reflect.Map, reflect.Func, reflect.Chan,
		reflect.Pointer, reflect.UnsafePointer:
		if va.IsNil() || vb.IsNil() {
			return va.IsNil() && vb.IsNil()
		}
		return va.Pointer() == vb.Pointer()
	default:
		if va.Comparable() {
			return a == b
		}
		return false
	}
}

// deepCopy returns an independent copy of a state value. Maps, slices and
// arrays are copied recursively; pointers are followed and their targets
// copied; funcs and channels are shared as-is. Structs with unexported
// fields (time.Time and the like) are copied by plain assignment, which
// preserves every field but shares any pointers they hold.
func deepCopy(v any) any {
	if v == nil {
		return nil
	}
	return deepCopyValue(reflect.ValueOf(v)).Interface()
}

func deepCopyValue(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Map:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), deepCopyValue(iter.Value()))
		}
		return out
	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(deepCopyValue(v.Index(i)))
		}
		return out
	case reflect.Array:
		out := reflect.New(v.Type()).Elem()
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(deepCopyValue(v.Index(i)))
		}
		return out
	case reflect.Pointer:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type().Elem())
		out.Elem().Set(deepCopyValue(v.Elem()))
		return out
	case reflect.Struct:
		// Unexported fields cannot be set through reflection; zeroing
		// them would silently corrupt values like time.Time, so such
		// structs are copied wholesale instead of field by field.
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			if t.Field(i).PkgPath != "" {
				return v
			}
		}
		out := reflect.New(t).Elem()
		for i := 0; i < v.NumField(); i++ {
			out.Field(i).Set(deepCopyValue(v.Field(i)))
		}
		return out
	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		elem := deepCopyValue(v.Elem())
		out := reflect.New(v.Type()).Elem()
		out.Set(elem)
		return out
	default:
		return v
	}
}

// copyStateMap deep-copies a string-keyed state mapping.
func copyStateMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = deepCopy(v)
	}
	return out
}
