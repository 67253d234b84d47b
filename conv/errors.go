package conv

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrSelfRegistration is returned when registry dispatch function is registered as a converter
var ErrSelfRegistration = errors.New("converter refers back to registry dispatch")

var errNoParser = errors.New("no parser")

// Kind classifies conversion failure
type Kind int

const (
	//KindFailed converter or built-in parser rejected the text
	KindFailed Kind = iota
	//KindMissing no converter is available for the type
	KindMissing
)

func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindFailed:
		return "failed"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ConversionError represents a failure to convert column text into a type
type ConversionError struct {
	Type reflect.Type
	Text string
	Kind Kind
	Err  error
}

func (e *ConversionError) Error() string {
	if e.Kind == KindMissing {
		return fmt.Sprintf("no parser available for type %v", e.Type)
	}
	if e.Err == nil {
		return fmt.Sprintf("failed to convert %q into %v", e.Text, e.Type)
	}
	return fmt.Sprintf("failed to convert %q into %v: %v", e.Text, e.Type, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }
