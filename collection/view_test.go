package collection

import (
	"testing"

	"github.com/sqldef/annadriver/tyson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDsFiltersByCollection(t *testing.T) {
	a := tyson.Link{Collection: "a", ID: "b2279b93-00b3-4b44-9670-82a76922c0da"}
	b := tyson.Link{Collection: "b", ID: "c2279b93-00b3-4b44-9670-82a76922c0da"}
	v := NewIDs([]tyson.Link{a, b})

	assert.Equal(t, []tyson.Link{a}, v.IDs("a"))
	assert.False(t, v.IsObjects())
}

func TestObjectsFiltersByCollection(t *testing.T) {
	a := tyson.Link{Collection: "a", ID: "b2279b93-00b3-4b44-9670-82a76922c0da"}
	b := tyson.Link{Collection: "b", ID: "c2279b93-00b3-4b44-9670-82a76922c0da"}
	v := NewObjects([]Pair{
		{ID: a, Value: tyson.Int(1)},
		{ID: b, Value: tyson.Int(2)},
	})

	objs := v.Objects("a")
	require.Len(t, objs, 1)
	assert.Equal(t, a, objs[0].ID)
	assert.True(t, v.IsObjects())
}

func TestObjectLookupByUUID(t *testing.T) {
	a := tyson.Link{Collection: "a", ID: "b2279b93-00b3-4b44-9670-82a76922c0da"}
	v := NewObjects([]Pair{{ID: a, Value: tyson.Int(1)}})

	p, ok := v.Object("b2279b93-00b3-4b44-9670-82a76922c0da")
	require.True(t, ok)
	assert.True(t, p.Value.Equal(tyson.Int(1)))

	_, ok = v.Object("00000000-0000-0000-0000-000000000000")
	assert.False(t, ok)
}
