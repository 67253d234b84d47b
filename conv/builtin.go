package conv

import (
	"database/sql"
	"encoding"
	"errors"
	"reflect"
	"strconv"
	"time"
)

var (
	timeType            = reflect.TypeOf(time.Time{})
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
	scannerType         = reflect.TypeOf((*sql.Scanner)(nil)).Elem()
)

func builtin(text string, rType reflect.Type, options *Options) (reflect.Value, error) {
	target := rType
	for target.Kind() == reflect.Ptr {
		target = target.Elem()
	}
	if text == "" {
		return reflect.Value{}, nil
	}
	value, err := parse(text, target, options)
	if err != nil {
		kind := KindFailed
		if errors.Is(err, errNoParser) {
			kind, err = KindMissing, nil
		}
		return reflect.Value{}, &ConversionError{Type: rType, Text: text, Kind: kind, Err: err}
	}
	return addressed(value, rType), nil
}

func addressed(value reflect.Value, rType reflect.Type) reflect.Value {
	if rType.Kind() != reflect.Ptr {
		return value
	}
	ptr := reflect.New(rType.Elem())
	ptr.Elem().Set(addressed(value, rType.Elem()))
	return ptr
}

func parse(text string, target reflect.Type, options *Options) (reflect.Value, error) {
	if target == timeType {
		layout := options.TimeLayout
		if layout == "" {
			layout = time.RFC3339
		}
		ts, err := time.Parse(layout, text)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(ts), nil
	}
	ptrType := reflect.PointerTo(target)
	if ptrType.Implements(textUnmarshalerType) {
		ptr := reflect.New(target)
		if err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(text)); err != nil {
			return reflect.Value{}, err
		}
		return ptr.Elem(), nil
	}
	if ptrType.Implements(scannerType) {
		ptr := reflect.New(target)
		if err := ptr.Interface().(sql.Scanner).Scan(text); err != nil {
			return reflect.Value{}, err
		}
		return ptr.Elem(), nil
	}

	value := reflect.New(target).Elem()
	switch target.Kind() {
	case reflect.String:
		value.SetString(text)
	case reflect.Bool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return reflect.Value{}, err
		}
		value.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(text, 10, target.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		value.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(text, 10, target.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		value.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(text, target.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		value.SetFloat(f)
	case reflect.Interface:
		if target.NumMethod() > 0 {
			return reflect.Value{}, errNoParser
		}
		value.Set(reflect.ValueOf(text))
	default:
		return reflect.Value{}, errNoParser
	}
	return value, nil
}
