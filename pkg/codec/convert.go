package codec

import (
	"fmt"
	"reflect"
)

// toUint64 coerces any Go integer value into a uint64.
// Negative values and non-integer kinds are unrepresentable.
func toUint64(v any) (uint64, error) {
	switch n := v.(type) {
	case uint64:
		return n, nil
	case uint:
		return uint64(n), nil
	case uint8:
		return uint64(n), nil
	case uint16:
		return uint64(n), nil
	case uint32:
		return uint64(n), nil
	case int:
		if n < 0 {
			return 0, fmt.Errorf("%w: negative value %d for unsigned type", ErrUnrepresentable, n)
		}
		return uint64(n), nil
	case int8, int16, int32, int64:
		i := reflect.ValueOf(n).Int()
		if i < 0 {
			return 0, fmt.Errorf("%w: negative value %d for unsigned type", ErrUnrepresentable, i)
		}
		return uint64(i), nil
	case float64:
		if n < 0 || n != float64(uint64(n)) {
			return 0, fmt.Errorf("%w: %v for unsigned type", ErrUnrepresentable, n)
		}
		return uint64(n), nil
	default:
		return 0, fmt.Errorf("%w: %T for unsigned type", ErrUnrepresentable, v)
	}
}

// toInt64 coerces any Go integer value into an int64.
func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint, uint64:
		u := reflect.ValueOf(n).Uint()
		if u > 1<<63-1 {
			return 0, fmt.Errorf("%w: %d overflows signed type", ErrUnrepresentable, u)
		}
		return int64(u), nil
	case float64:
		if n != float64(int64(n)) {
			return 0, fmt.Errorf("%w: %v for signed type", ErrUnrepresentable, n)
		}
		return int64(n), nil
	default:
		return 0, fmt.Errorf("%w: %T for signed type", ErrUnrepresentable, v)
	}
}

// toFloat64 coerces any Go numeric value into a float64.
func toFloat64(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int, int8, int16, int32, int64:
		return float64(reflect.ValueOf(n).Int()), nil
	case uint, uint8, uint16, uint32, uint64:
		return float64(reflect.ValueOf(n).Uint()), nil
	default:
		return 0, fmt.Errorf("%w: %T for float type", ErrUnrepresentable, v)
	}
}

// toBytes coerces a string or byte slice into raw bytes.
func toBytes(v any) ([]byte, error) {
	switch b := v.(type) {
	case []byte:
		return b, nil
	case string:
		return []byte(b), nil
	default:
		return nil, fmt.Errorf("%w: %T for byte type", ErrUnrepresentable, v)
	}
}

// toString coerces a string or byte slice into a string.
func toString(v any) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	default:
		return "", fmt.Errorf("%w: %T for string type", ErrUnrepresentable, v)
	}
}

// toSlice normalizes any slice or array value into []any so that array
// forms can encode both []any and typed slices like []int.
func toSlice(v any) ([]any, error) {
	if s, ok := v.([]any); ok {
		return s, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: %T for array type", ErrUnrepresentable, v)
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}
