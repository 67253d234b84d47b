package plan

import (
	"reflect"
	"strings"
	"sync"
	"time"
	"unsafe"

	"github.com/viant/tagly/format"
	"github.com/viant/tagly/format/text"
	ftime "github.com/viant/tagly/format/time"
	"github.com/viant/xunsafe"
)

var timeType = reflect.TypeOf(time.Time{})

// Field represents a writable record field bound to a header column
type Field struct {
	Name       string
	Alias      string
	HeaderName string
	Type       reflect.Type
	TimeLayout string
	path       []*xunsafe.Field
}

// Path returns dotted struct path, embedded holders included
func (f *Field) Path() string {
	names := make([]string, 0, len(f.path))
	for _, xField := range f.path {
		names = append(names, xField.Name)
	}
	return strings.Join(names, ".")
}

// Pointer returns field pointer for supplied struct pointer
func (f *Field) Pointer(structPtr unsafe.Pointer) unsafe.Pointer {
	ptr := structPtr
	for _, xField := range f.path {
		ptr = xField.Pointer(ptr)
	}
	return ptr
}

// Type represents compiled record type
type Type struct {
	Type   reflect.Type
	Fields []*Field
	byName map[string]*Field
}

// Lookup returns field bound to header name or nil
func (t *Type) Lookup(headerName string) *Field {
	return t.byName[headerName]
}

type cacheKey struct {
	rType      reflect.Type
	tagName    string
	caseFormat text.CaseFormat
}

var cache sync.Map // map[cacheKey]*Type

// For returns cached plan for supplied struct type
func For(rType reflect.Type, tagName string, caseFormat text.CaseFormat) *Type {
	for rType.Kind() == reflect.Ptr {
		rType = rType.Elem()
	}
	key := cacheKey{rType: rType, tagName: tagName, caseFormat: caseFormat}
	if v, ok := cache.Load(key); ok {
		return v.(*Type)
	}
	ret := &Type{Type: rType, byName: map[string]*Field{}}
	if rType.Kind() == reflect.Struct {
		ret.compile(rType, tagName, caseFormat, nil)
	}
	actual, _ := cache.LoadOrStore(key, ret)
	return actual.(*Type)
}

func (t *Type) compile(rType reflect.Type, tagName string, caseFormat text.CaseFormat, holders []*xunsafe.Field) {
	for i := 0; i < rType.NumField(); i++ {
		sf := rType.Field(i)
		embedded := sf.Anonymous && sf.Type.Kind() == reflect.Struct && sf.Type != timeType
		if sf.PkgPath != "" && !embedded {
			continue
		}
		alias := sf.Tag.Get(tagName)
		if alias == "-" {
			continue
		}
		formatTag, _ := format.Parse(sf.Tag)
		if formatTag != nil && formatTag.Ignore {
			continue
		}
		path := make([]*xunsafe.Field, len(holders), len(holders)+1)
		copy(path, holders)
		path = append(path, xunsafe.NewField(sf))
		if embedded && alias == "" {
			t.compile(sf.Type, tagName, caseFormat, path)
			continue
		}
		if sf.PkgPath != "" {
			continue
		}
		field := &Field{
			Name:       sf.Name,
			Alias:      alias,
			HeaderName: headerName(sf.Name, alias, caseFormat),
			Type:       sf.Type,
			path:       path,
		}
		if formatTag != nil {
			field.TimeLayout = formatTag.TimeLayout
			if field.TimeLayout == "" && formatTag.DateFormat != "" {
				field.TimeLayout = ftime.DateFormatToTimeLayout(formatTag.DateFormat)
			}
		}
		t.Fields = append(t.Fields, field)
		if prev, ok := t.byName[field.HeaderName]; !ok || len(prev.path) > len(field.path) {
			t.byName[field.HeaderName] = field
		}
	}
}

func headerName(name, alias string, caseFormat text.CaseFormat) string {
	if alias != "" {
		return alias
	}
	if !caseFormat.IsDefined() {
		return name
	}
	src := text.DetectCaseFormat(name)
	if src == text.CaseFormatUndefined {
		src = text.CaseFormatUpperCamel
	}
	return src.Format(name, caseFormat)
}
