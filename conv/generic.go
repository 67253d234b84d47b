package conv

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// parsePrefix matches every instantiation of Parse, generic code pointers differ per call site
var parsePrefix = reflect.TypeOf((*Registry)(nil)).Elem().PkgPath() + ".Parse["

// Register registers typed converter for T
func Register[T any](r *Registry, fn func(text string) (T, error)) error {
	rType := reflect.TypeOf((*T)(nil)).Elem()
	if fn == nil {
		return fmt.Errorf("conv: register %v: converter was nil", rType)
	}
	if isParse(reflect.ValueOf(fn).Pointer()) {
		return fmt.Errorf("conv: register %v: %w", rType, ErrSelfRegistration)
	}
	return r.Register(rType, func(text string, _ reflect.Type) (interface{}, error) {
		return fn(text)
	})
}

// ConvertTo converts text into T with supplied registry
func ConvertTo[T any](r *Registry, text string, opts ...Option) (T, error) {
	var ret T
	holder := reflect.ValueOf(&ret).Elem()
	value, err := r.Value(text, holder.Type(), opts...)
	if err != nil || !value.IsValid() {
		return ret, err
	}
	holder.Set(value)
	return ret, nil
}

// Parse converts text into T with Default registry
func Parse[T any](text string) (T, error) {
	return ConvertTo[T](Default, text)
}

func isParse(ptr uintptr) bool {
	fn := runtime.FuncForPC(ptr)
	return fn != nil && strings.HasPrefix(fn.Name(), parsePrefix)
}
