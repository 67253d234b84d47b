package conv

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tags []string

func TestRegister_Typed(t *testing.T) {
	registry := NewRegistry(nil)
	require.NoError(t, Register(registry, func(text string) (tags, error) {
		return strings.Split(text, "|"), nil
	}))

	actual, err := ConvertTo[tags](registry, "a|b")
	require.NoError(t, err)
	assert.Equal(t, tags{"a", "b"}, actual)
}

func TestRegister_TypedError(t *testing.T) {
	registry := NewRegistry(nil)
	require.NoError(t, Register(registry, func(text string) (tags, error) {
		return nil, strconv.ErrSyntax
	}))
	_, err := ConvertTo[tags](registry, "a|b")
	var convErr *ConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, KindFailed, convErr.Kind)
	assert.True(t, errors.Is(err, strconv.ErrSyntax))
}

func TestConvertTo(t *testing.T) {
	registry := NewRegistry(nil)

	i, err := ConvertTo[int](registry, "10")
	require.NoError(t, err)
	assert.Equal(t, 10, i)

	ptr, err := ConvertTo[*float64](registry, "")
	require.NoError(t, err)
	assert.Nil(t, ptr)

	ptr, err = ConvertTo[*float64](registry, "0.5")
	require.NoError(t, err)
	require.NotNil(t, ptr)
	assert.Equal(t, 0.5, *ptr)

	_, err = ConvertTo[map[string]string](registry, "a")
	var convErr *ConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, KindMissing, convErr.Kind)
	assert.Equal(t, "missing", convErr.Kind.String())
}

func TestParse(t *testing.T) {
	b, err := Parse[bool]("false")
	require.NoError(t, err)
	assert.False(t, b)

	s, err := Parse[string]("text")
	require.NoError(t, err)
	assert.Equal(t, "text", s)
}
