package plan

import (
	"reflect"
	"testing"
	"time"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/tagly/format/text"
)

type audit struct {
	CreatedBy string
	UpdatedAt time.Time `format:"timeLayout=2006-01-02"`
}

type order struct {
	audit
	ID        int       `csvName:"id"`
	UserID    int
	Note      string    `csvName:"-"`
	Internal  string    `format:"ignore=true"`
	Shipped   time.Time `format:"dateFormat=yyyy-MM-dd"`
	CreatedBy string
	secret    string
}

func TestFor(t *testing.T) {
	p := For(reflect.TypeOf(&order{}), "csvName", text.CaseFormatUndefined)
	assert.Same(t, p, For(reflect.TypeOf(order{}), "csvName", text.CaseFormatUndefined))
	assert.Equal(t, reflect.TypeOf(order{}), p.Type)

	var headers []string
	for _, field := range p.Fields {
		headers = append(headers, field.HeaderName)
	}
	assert.Equal(t, []string{"CreatedBy", "UpdatedAt", "id", "UserID", "Shipped", "CreatedBy"}, headers)

	id := p.Lookup("id")
	require.NotNil(t, id)
	assert.Equal(t, "ID", id.Name)
	assert.Equal(t, "id", id.Alias)
	assert.Equal(t, "ID", id.Path())

	assert.Nil(t, p.Lookup("Note"))
	assert.Nil(t, p.Lookup("Internal"))
	assert.Nil(t, p.Lookup("secret"))

	createdBy := p.Lookup("CreatedBy")
	require.NotNil(t, createdBy)
	assert.Equal(t, "CreatedBy", createdBy.Path())

	updatedAt := p.Lookup("UpdatedAt")
	require.NotNil(t, updatedAt)
	assert.Equal(t, "audit.UpdatedAt", updatedAt.Path())
	assert.Equal(t, "2006-01-02", updatedAt.TimeLayout)

	shipped := p.Lookup("Shipped")
	require.NotNil(t, shipped)
	assert.Equal(t, "2006-01-02", shipped.TimeLayout)
}

func TestFor_CaseFormat(t *testing.T) {
	p := For(reflect.TypeOf(order{}), "csvName", text.CaseFormatLowerUnderscore)
	assert.NotNil(t, p.Lookup("user_id"))
	assert.NotNil(t, p.Lookup("id"))
	assert.Nil(t, p.Lookup("UserID"))
}

func TestFor_TagName(t *testing.T) {
	type record struct {
		Name string `col:"full_name" csvName:"name"`
	}
	p := For(reflect.TypeOf(record{}), "col", text.CaseFormatUndefined)
	assert.NotNil(t, p.Lookup("full_name"))
	assert.Nil(t, p.Lookup("name"))
}

func TestField_Pointer(t *testing.T) {
	p := For(reflect.TypeOf(order{}), "csvName", text.CaseFormatUndefined)
	value := &order{}
	ptr := unsafe.Pointer(value)

	*(*int)(p.Lookup("id").Pointer(ptr)) = 7
	*(*time.Time)(p.Lookup("UpdatedAt").Pointer(ptr)) = time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 7, value.ID)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), value.audit.UpdatedAt)
}

func TestFor_NonStruct(t *testing.T) {
	p := For(reflect.TypeOf(0), "csvName", text.CaseFormatUndefined)
	assert.Empty(t, p.Fields)
}
