package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_SetKeepsPosition(t *testing.T) {
	tbl := NewTable(
		Entry{Key: "b", Value: String("1")},
		Entry{Key: "a", Value: String("2")},
	)
	tbl.Set("b", nil)
	tbl.Set("c", String(""))

	assert.Equal(t, []string{"b", "a", "c"}, tbl.Keys())
	assert.Equal(t, 3, tbl.Len())

	v, ok := tbl.Lookup("b")
	require.True(t, ok)
	assert.Nil(t, v)
}

func TestTable_LookupDistinguishesMissingFromNull(t *testing.T) {
	tbl := NewTable(Entry{Key: "null", Value: nil})

	v, ok := tbl.Lookup("null")
	assert.True(t, ok)
	assert.Nil(t, v)

	v, ok = tbl.Lookup("missing")
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestTable_Merge(t *testing.T) {
	base := NewTable(
		Entry{Key: "x", Value: String("old")},
		Entry{Key: "y", Value: String("keep")},
	)
	base.Merge(NewTable(
		Entry{Key: "z", Value: String("new")},
		Entry{Key: "x", Value: String("replaced")},
	))

	assert.Equal(t, []string{"x", "y", "z"}, base.Keys())
	v, _ := base.Lookup("x")
	assert.Equal(t, "replaced", *v)
}

func TestOrigin_String(t *testing.T) {
	assert.Equal(t, "#r", OriginDirective.String())
	assert.Equal(t, "ex", OriginExternal.String())
}
