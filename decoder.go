package delimited

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"reflect"
	"slices"
	"strings"
	"unsafe"

	"github.com/viant/delimited/conv"
	"github.com/viant/delimited/internal/plan"
	"github.com/viant/xunsafe"
)

const (
	valueCutset   = " \""
	byteOrderMark = "\uFEFF"
)

type column struct {
	field   *plan.Field
	index   int
	options []conv.Option
}

// Decoder decodes delimited lines into T records, T has to be a struct or a pointer to struct.
// Decoder is not safe for concurrent use.
type Decoder[T any] struct {
	source  LineReader
	options Options
	plan    *plan.Type
	header  []string
	columns []column
	isPtr   bool
	row     int
}

// NewDecoder skips configured rows, reads the header line and returns a decoder
func NewDecoder[T any](source LineReader, opts ...Option) (*Decoder[T], error) {
	if source == nil {
		return nil, errors.New("delimited: source was nil")
	}
	rType := reflect.TypeOf((*T)(nil)).Elem()
	isPtr := rType.Kind() == reflect.Ptr
	if isPtr {
		rType = rType.Elem()
	}
	if rType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("delimited: unsupported record type: %v", rType)
	}
	options := resolveOptions(opts)
	for i := 0; i < options.SkipRows; i++ {
		if _, err := source.ReadLine(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrEmptySource
			}
			return nil, fmt.Errorf("delimited: failed to skip line %d: %w", i+1, err)
		}
	}
	line, err := source.ReadLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptySource
		}
		return nil, fmt.Errorf("delimited: failed to read header: %w", err)
	}
	ret := &Decoder[T]{
		source:  source,
		options: options,
		plan:    plan.For(rType, options.TagName, options.CaseFormat),
		header:  splitHeader(line, options.Delimiter),
		isPtr:   isPtr,
	}
	ret.bind()
	options.Logger.Debug("delimited header captured",
		"type", rType.String(), "columns", len(ret.header), "skipped", options.SkipRows)
	return ret, nil
}

func splitHeader(line, delimiter string) []string {
	line = strings.TrimPrefix(line, byteOrderMark)
	header := strings.Split(line, delimiter)
	for i := range header {
		header[i] = strings.Trim(header[i], valueCutset)
	}
	return header
}

func (d *Decoder[T]) bind() {
	d.columns = make([]column, 0, len(d.plan.Fields))
	for _, field := range d.plan.Fields {
		if d.plan.Lookup(field.HeaderName) != field {
			continue // shadowed by a shallower field
		}
		col := column{field: field, index: slices.Index(d.header, field.HeaderName)}
		layout := field.TimeLayout
		if layout == "" {
			layout = d.options.TimeLayout
		}
		if layout != "" {
			col.options = []conv.Option{conv.WithTimeLayout(layout)}
		}
		d.columns = append(d.columns, col)
	}
}

// Header returns header columns
func (d *Decoder[T]) Header() []string {
	return slices.Clone(d.header)
}

// Row returns number of data lines read so far
func (d *Decoder[T]) Row() int {
	return d.row
}

// Next decodes the next line, it returns io.EOF once the source is exhausted.
// An empty line yields a zero record; columns missing from header or row leave fields at zero value.
func (d *Decoder[T]) Next() (T, error) {
	var record T
	line, err := d.source.ReadLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return record, io.EOF
		}
		return record, fmt.Errorf("delimited: failed to read row %d: %w", d.row+1, err)
	}
	d.row++
	ptr := d.recordPointer(&record)
	if line == "" {
		return record, nil
	}
	values := strings.Split(line, d.options.Delimiter)
	for _, col := range d.columns {
		if col.index < 0 || col.index >= len(values) {
			continue
		}
		text := strings.Trim(values[col.index], valueCutset)
		value, err := d.options.Registry.Value(text, col.field.Type, col.options...)
		if err != nil {
			d.options.Logger.Debug("delimited row conversion failed",
				"row", d.row, "column", col.index, "field", col.field.Path(), "error", err)
			var zero T
			return zero, &DecodeError{Field: col.field.Path(), Header: col.field.HeaderName, Row: d.row, Column: col.index, Err: err}
		}
		if !value.IsValid() {
			continue
		}
		assign(col.field.Pointer(ptr), col.field.Type, value)
	}
	return record, nil
}

func (d *Decoder[T]) recordPointer(record *T) unsafe.Pointer {
	if !d.isPtr {
		return unsafe.Pointer(record)
	}
	holder := reflect.New(d.plan.Type)
	reflect.ValueOf(record).Elem().Set(holder)
	return unsafe.Pointer(holder.Pointer())
}

func assign(fieldPtr unsafe.Pointer, rType reflect.Type, value reflect.Value) {
	if rType.Kind() == reflect.String && value.Kind() == reflect.String {
		*xunsafe.AsStringPtr(fieldPtr) = value.String()
		return
	}
	reflect.NewAt(rType, fieldPtr).Elem().Set(value)
}

// All returns a lazy sequence of decoded records that ends with the source.
// Conversion errors are yielded and iteration continues while the consumer keeps ranging,
// read errors are yielded and end the sequence.
func (d *Decoder[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			record, err := d.Next()
			if err != nil {
				if errors.Is(err, io.EOF) {
					return
				}
				var decodeErr *DecodeError
				if !yield(record, err) || !errors.As(err, &decodeErr) {
					return
				}
				continue
			}
			if d.options.StopOnZeroRecord && isZero(record) {
				return
			}
			if !yield(record, nil) {
				return
			}
		}
	}
}

// ReadAll decodes remaining lines, it stops at the first error
func (d *Decoder[T]) ReadAll() ([]T, error) {
	var result []T
	for record, err := range d.All() {
		if err != nil {
			return result, err
		}
		result = append(result, record)
	}
	return result, nil
}

func isZero[T any](record T) bool {
	value := reflect.ValueOf(&record).Elem()
	if value.Kind() == reflect.Ptr {
		if value.IsNil() {
			return true
		}
		value = value.Elem()
	}
	return value.IsZero()
}
