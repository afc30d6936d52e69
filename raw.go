package sqlconv

import (
	"fmt"
	"math"
	"reflect"
	"time"
)

// assignRaw bridges the restricted value set that database drivers deliver
// (int64, float64, bool, []byte, string, time.Time) to the raw type DB
// declared by a Converter. Exact matches and the driver base types are
// handled directly; other numeric widths and named raw types go through a
// reflective assignment with overflow checks. SQL NULL and raw types outside
// the supported set are decoding failures, never silent zero values.
func assignRaw[DB any](src interface{}, target *DB) error {
	if src == nil {
		return New("cannot decode SQL NULL", ErrDecodingFailure)
	}

	switch t := interface{}(target).(type) {
	case *int64:
		i, ok := srcInt64(src)
		if !ok {
			return New(fmt.Sprintf("not an integer value: %v", src), ErrDecodingFailure)
		}
		*t = i
	case *float64:
		f, ok := srcFloat64(src)
		if !ok {
			return New(fmt.Sprintf("not a float value: %v", src), ErrDecodingFailure)
		}
		*t = f
	case *bool:
		switch bVal := src.(type) {
		case bool:
			*t = bVal
		case int64:
			// some drivers store booleans as 0/1 columns
			if bVal != 0 && bVal != 1 {
				return New(fmt.Sprintf("not a boolean value: %v", src), ErrDecodingFailure)
			}
			*t = bVal == 1
		default:
			return New(fmt.Sprintf("not a boolean value: %v", src), ErrDecodingFailure)
		}
	case *string:
		switch sVal := src.(type) {
		case string:
			*t = sVal
		case []byte:
			*t = string(sVal)
		default:
			return New(fmt.Sprintf("not a string value: %v", src), ErrDecodingFailure)
		}
	case *[]byte:
		switch bVal := src.(type) {
		case []byte:
			// copy; the driver may reuse the buffer on the next row
			cp := make([]byte, len(bVal))
			copy(cp, bVal)
			*t = cp
		case string:
			*t = []byte(bVal)
		default:
			return New(fmt.Sprintf("not a bytes value: %v", src), ErrDecodingFailure)
		}
	case *time.Time:
		tVal, ok := src.(time.Time)
		if !ok {
			return New(fmt.Sprintf("not a time value: %v", src), ErrDecodingFailure)
		}
		*t = tVal
	default:
		return assignRawReflect(src, target)
	}

	return nil
}

// assignRawReflect handles raw types that are not driver base types: the
// narrower integer and float widths, unsigned integers, and named types
// whose underlying type is in the supported set.
func assignRawReflect(src interface{}, target interface{}) error {
	rv := reflect.ValueOf(target).Elem()

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, ok := srcInt64(src)
		if !ok {
			return New(fmt.Sprintf("not an integer value: %v", src), ErrDecodingFailure)
		}
		if rv.OverflowInt(i) {
			return New(fmt.Sprintf("value %d overflows raw type %s", i, rv.Type()), ErrDecodingFailure)
		}
		rv.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		i, ok := srcInt64(src)
		if !ok {
			return New(fmt.Sprintf("not an integer value: %v", src), ErrDecodingFailure)
		}
		if i < 0 || rv.OverflowUint(uint64(i)) {
			return New(fmt.Sprintf("value %d overflows raw type %s", i, rv.Type()), ErrDecodingFailure)
		}
		rv.SetUint(uint64(i))
	case reflect.Float32, reflect.Float64:
		f, ok := srcFloat64(src)
		if !ok {
			return New(fmt.Sprintf("not a float value: %v", src), ErrDecodingFailure)
		}
		if rv.OverflowFloat(f) {
			return New(fmt.Sprintf("value %v overflows raw type %s", f, rv.Type()), ErrDecodingFailure)
		}
		rv.SetFloat(f)
	case reflect.Bool:
		bVal, ok := src.(bool)
		if !ok {
			return New(fmt.Sprintf("not a boolean value: %v", src), ErrDecodingFailure)
		}
		rv.SetBool(bVal)
	case reflect.String:
		switch sVal := src.(type) {
		case string:
			rv.SetString(sVal)
		case []byte:
			rv.SetString(string(sVal))
		default:
			return New(fmt.Sprintf("not a string value: %v", src), ErrDecodingFailure)
		}
	default:
		return New(fmt.Sprintf("cannot scan into raw type %s", rv.Type()), ErrUnsupportedRawType)
	}

	return nil
}

// srcInt64 widens any integer value a driver might deliver to int64.
func srcInt64(src interface{}) (int64, bool) {
	switch iVal := src.(type) {
	case int:
		return int64(iVal), true
	case int8:
		return int64(iVal), true
	case int16:
		return int64(iVal), true
	case int32:
		return int64(iVal), true
	case int64:
		return iVal, true
	case uint:
		if uint64(iVal) > math.MaxInt64 {
			return 0, false
		}
		return int64(iVal), true
	case uint8:
		return int64(iVal), true
	case uint16:
		return int64(iVal), true
	case uint32:
		return int64(iVal), true
	case uint64:
		if iVal > math.MaxInt64 {
			return 0, false
		}
		return int64(iVal), true
	default:
		return 0, false
	}
}

// srcFloat64 widens a driver-delivered numeric value to float64.
func srcFloat64(src interface{}) (float64, bool) {
	switch fVal := src.(type) {
	case float32:
		return float64(fVal), true
	case float64:
		return fVal, true
	default:
		i, ok := srcInt64(src)
		if !ok {
			return 0, false
		}
		return float64(i), true
	}
}
