package jsonval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_PreservesKeyOrder(t *testing.T) {
	v, err := ParseString(`{"zeta":1,"alpha":"a","mid":{"b":true,"a":null}}`)
	require.NoError(t, err)
	require.True(t, v.IsObject())

	var keys []string
	for _, f := range v.Fields() {
		keys = append(keys, f.Key)
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, keys)

	mid, ok := v.Get("mid")
	require.True(t, ok)
	assert.Equal(t, "b", mid.Fields()[0].Key)
	assert.Equal(t, KindNull, mid.Fields()[1].Value.Kind())
}

func TestParse_Kinds(t *testing.T) {
	tests := []struct {
		input string
		kind  KindEnum
		str   string
	}{
		{`null`, KindNull, ""},
		{`true`, KindBool, "true"},
		{`12.50`, KindNumber, "12.50"},
		{`"x"`, KindString, "x"},
		{`[1,2]`, KindArray, ""},
		{`{}`, KindObject, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := ParseString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, v.Kind())
			assert.Equal(t, tt.str, v.Str())
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	_, err := ParseString(`{"a":`)
	require.ErrorIs(t, err, ErrInvalidJSON)
}

func TestParse_EmptyArrayIsArray(t *testing.T) {
	v, err := ParseString(`{"a":[]}`)
	require.NoError(t, err)

	a, _ := v.Get("a")
	assert.True(t, a.IsArray())
	assert.Equal(t, 0, a.Len())
}

func TestFromAny(t *testing.T) {
	v := FromAny(map[string]any{
		"b":    1,
		"a":    []any{"x", nil},
		"fn":   func() {},
		"ch":   make(chan int),
		"nest": map[string]any{"k": int64(7)},
	})
	require.True(t, v.IsObject())

	var keys []string
	for _, f := range v.Fields() {
		keys = append(keys, f.Key)
	}
	assert.Equal(t, []string{"a", "b", "ch", "fn", "nest"}, keys)

	fn, _ := v.Get("fn")
	assert.False(t, fn.Exists())

	ch, _ := v.Get("ch")
	assert.Equal(t, KindUndefined, ch.Kind())

	b, _ := v.Get("b")
	assert.Equal(t, "1", b.Str())

	nest, _ := v.Get("nest")
	k, _ := nest.Get("k")
	assert.Equal(t, "7", k.Str())
}

func TestObject_DuplicateKeysKeepFirstPosition(t *testing.T) {
	v := Object(F("a", Number(1)), F("b", Number(2)), F("a", Number(3)))
	require.Equal(t, 2, v.Len())
	assert.Equal(t, "a", v.Fields()[0].Key)
	assert.Equal(t, "3", v.Fields()[0].Value.Str())
}

func TestBoolValue(t *testing.T) {
	b, ok := Bool(true).BoolValue()
	assert.True(t, ok)
	assert.True(t, b)

	_, ok = String("true").BoolValue()
	assert.False(t, ok)
}
