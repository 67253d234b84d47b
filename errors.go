package delimited

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptySource is returned when no header line can be read
var ErrEmptySource = errors.New("delimited: source is empty")

// DecodeError represents a row field that failed to convert
type DecodeError struct {
	Field  string
	Header string
	Row    int
	Column int
	Err    error
}

func (e *DecodeError) Error() string {
	parts := make([]string, 0, 5)
	if e.Field != "" {
		parts = append(parts, "field="+e.Field)
	}
	if e.Header != "" {
		parts = append(parts, "header="+e.Header)
	}
	if e.Row > 0 {
		parts = append(parts, fmt.Sprintf("row=%d", e.Row))
	}
	if e.Column >= 0 {
		parts = append(parts, fmt.Sprintf("col=%d", e.Column))
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	return strings.Join(parts, " ")
}

func (e *DecodeError) Unwrap() error { return e.Err }
