package tyson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeRoundTrip(t *testing.T) {
	link := MustLink("test", "b2279b93-00b3-4b44-9670-82a76922c0da")
	vec := Vector(Int(10), String("fizzbuzz"), Bool(false))
	m := NewMap()
	require.NoError(t, m.MapSet("count", Int(1)))
	require.NoError(t, m.MapSet("name", String("a")))

	cases := []Value{
		Null(),
		Int(10),
		Number("-3.14"),
		String("fizzbuzz"),
		Bool(true),
		Bool(false),
		Timestamp(1234567890),
		link,
		vec,
		m,
		FieldRef("num"),
	}

	for _, v := range cases {
		text := v.String()
		parsed, err := Parse(text)
		require.NoError(t, err, text)
		assert.True(t, v.Equal(parsed), "roundtrip mismatch for %s", text)
	}
}

func TestNumberWireForm(t *testing.T) {
	assert.Equal(t, "n|10|", Int(10).String())
}

func TestLinkWireForm(t *testing.T) {
	v := MustLink("test", "b2279b93-00b3-4b44-9670-82a76922c0da")
	assert.Equal(t, "test|b2279b93-00b3-4b44-9670-82a76922c0da|", v.String())
}

func TestVectorTrailingComma(t *testing.T) {
	v := Vector(Int(10), String("fizzbuzz"), Bool(false))
	assert.Equal(t, "v[n|10|,s|fizzbuzz|,b|false|,]", v.String())
}

func TestMapTrailingCommaAndKeyOrder(t *testing.T) {
	m := NewMap()
	require.NoError(t, m.MapSet("zeta", Int(1)))
	require.NoError(t, m.MapSet("alpha", Int(2)))
	assert.Equal(t, "m{s|alpha|:n|2|,s|zeta|:n|1|,}", m.String())
}

func TestInvalidLinkID(t *testing.T) {
	_, err := NewLink("test", "not-a-uuid")
	assert.Error(t, err)
}

func TestInvalidLinkCollection(t *testing.T) {
	_, err := NewLink("", "b2279b93-00b3-4b44-9670-82a76922c0da")
	assert.Error(t, err)
}

func TestAsInt64(t *testing.T) {
	n, err := Int(42).AsInt64()
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	_, err = String("x").AsInt64()
	assert.Error(t, err)
}

func TestAsFloat64(t *testing.T) {
	f, err := Number("3.25").AsFloat64()
	require.NoError(t, err)
	assert.InDelta(t, 3.25, f, 1e-9)
}

func TestTimestampAcceptsBothPrefixes(t *testing.T) {
	v1, err := Parse("uts|1700000000|")
	require.NoError(t, err)
	v2, err := Parse("utc|1700000000|")
	require.NoError(t, err)
	assert.True(t, v1.Equal(v2))
	assert.Equal(t, "utc|1700000000|", v1.String())
}

func TestParseNull(t *testing.T) {
	v, err := Parse("null")
	require.NoError(t, err)
	assert.True(t, v.IsNull())
}

func TestParseNestedVectorDoesNotCorrupt(t *testing.T) {
	v, err := Parse("v[v[n|1|,n|2|,],n|3|,]")
	require.NoError(t, err)
	elems, err := v.VectorElems()
	require.NoError(t, err)
	require.Len(t, elems, 2)
	inner, err := elems[0].VectorElems()
	require.NoError(t, err)
	assert.Len(t, inner, 2)
}

func TestCompareOrdersByTagThenPayload(t *testing.T) {
	assert.Equal(t, 0, String("a").Compare(String("a")))
	assert.True(t, String("a").Compare(String("b")) < 0)
	assert.NotEqual(t, 0, Null().Compare(Int(1)))
}
