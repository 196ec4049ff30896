package node

import "reflect"

// Clone returns a deep copy of n. The copy shares no pointers with n, so
// either may be changed without affecting the other.
func Clone[T Node](n T) T {
	if IsNil(n) {
		return n
	}

	out, _ := cloneValue(reflect.ValueOf(n)).Interface().(T)

	return out
}

// Clone returns a deep copy of the file and every node in it.
func (f *SourceFile) Clone() *SourceFile {
	if f == nil {
		return nil
	}

	out, _ := cloneValue(reflect.ValueOf(f)).Interface().(*SourceFile)

	return out
}

func cloneValue(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return v
		}

		out := reflect.New(v.Type().Elem())
		out.Elem().Set(cloneValue(v.Elem()))

		return out
	case reflect.Interface:
		if v.IsNil() {
			return v
		}

		out := reflect.New(v.Type()).Elem()
		out.Set(cloneValue(v.Elem()))

		return out
	case reflect.Struct:
		out := reflect.New(v.Type()).Elem()
		out.Set(v)

		for i := range v.NumField() {
			if v.Type().Field(i).IsExported() {
				out.Field(i).Set(cloneValue(v.Field(i)))
			}
		}

		return out
	case reflect.Slice:
		if v.IsNil() {
			return v
		}

		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := range v.Len() {
			out.Index(i).Set(cloneValue(v.Index(i)))
		}

		return out
	default:
		return v
	}
}
