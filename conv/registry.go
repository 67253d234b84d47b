package conv

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// Func converts trimmed column text into a value of rType
type Func func(text string, rType reflect.Type) (interface{}, error)

// Registry maps a target type to its conversion function.
// Lookups fall through to the parent registry when the type is not registered locally.
type Registry struct {
	parent     *Registry
	options    Options
	converters sync.Map // map[reflect.Type]Func
}

// Default is the process-wide registry used when a decoder is not given its own
var Default = NewRegistry(nil)

// NewRegistry creates a registry layered on top of parent, parent can be nil
func NewRegistry(parent *Registry, opts ...Option) *Registry {
	ret := &Registry{parent: parent}
	if parent != nil {
		ret.options = parent.options
	}
	ret.options.apply(opts)
	return ret
}

// Parent returns the parent registry or nil
func (r *Registry) Parent() *Registry {
	return r.parent
}

// Register installs fn as the only converter for rType, replacing any prior one
func (r *Registry) Register(rType reflect.Type, fn Func) error {
	if rType == nil {
		return errors.New("conv: register: type was nil")
	}
	if fn == nil {
		return fmt.Errorf("conv: register %v: converter was nil", rType)
	}
	if isDispatch(fn) {
		return fmt.Errorf("conv: register %v: %w", rType, ErrSelfRegistration)
	}
	r.converters.Store(rType, fn)
	return nil
}

// Unregister removes locally registered converter for rType
func (r *Registry) Unregister(rType reflect.Type) {
	r.converters.Delete(rType)
}

// Lookup returns converter registered for rType in this registry or any of its parents
func (r *Registry) Lookup(rType reflect.Type) (Func, bool) {
	for registry := r; registry != nil; registry = registry.parent {
		if v, ok := registry.converters.Load(rType); ok {
			return v.(Func), true
		}
	}
	return nil, false
}

// Convert converts text into rType, absent values are returned as nil for pointer types, zero value otherwise
func (r *Registry) Convert(text string, rType reflect.Type, opts ...Option) (interface{}, error) {
	value, err := r.Value(text, rType, opts...)
	if err != nil {
		return nil, err
	}
	if !value.IsValid() {
		return absent(rType), nil
	}
	return value.Interface(), nil
}

// Value converts text into a value assignable to rType; an invalid value means absent
func (r *Registry) Value(text string, rType reflect.Type, opts ...Option) (reflect.Value, error) {
	if fn, ok := r.Lookup(rType); ok {
		result, err := fn(text, rType)
		if err != nil {
			return reflect.Value{}, &ConversionError{Type: rType, Text: text, Kind: KindFailed, Err: err}
		}
		return asValue(result, text, rType)
	}
	options := r.options
	options.apply(opts)
	return builtin(text, rType, &options)
}

func asValue(result interface{}, text string, rType reflect.Type) (reflect.Value, error) {
	if result == nil {
		return reflect.Value{}, nil
	}
	value := reflect.ValueOf(result)
	switch {
	case value.Type().AssignableTo(rType):
		return value, nil
	case value.Kind() == rType.Kind() && value.Type().ConvertibleTo(rType):
		return value.Convert(rType), nil
	}
	return reflect.Value{}, &ConversionError{Type: rType, Text: text, Kind: KindFailed,
		Err: fmt.Errorf("converter returned %T", result)}
}

func absent(rType reflect.Type) interface{} {
	switch rType.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map:
		return nil
	}
	return reflect.Zero(rType).Interface()
}

// Convert converts text into rType with Default registry
func Convert(text string, rType reflect.Type) (interface{}, error) {
	return Default.Convert(text, rType)
}

// Builtin converts text into rType bypassing any registered converter
func Builtin(text string, rType reflect.Type) (interface{}, error) {
	value, err := builtin(text, rType, &Default.options)
	if err != nil {
		return nil, err
	}
	if !value.IsValid() {
		return absent(rType), nil
	}
	return value.Interface(), nil
}

var (
	convertPtr = reflect.ValueOf(Convert).Pointer()
	builtinPtr = reflect.ValueOf(Builtin).Pointer()
)

func isDispatch(fn Func) bool {
	ptr := reflect.ValueOf(fn).Pointer()
	return ptr == convertPtr || ptr == builtinPtr
}
