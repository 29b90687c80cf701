package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFindReply(t *testing.T) {
	raw := "result:ok[response{s|data|:ids[test|4339ace2-9ab3-4c79-b557-f9b78d66b7f9|,]," +
		"s|meta|:find_meta{s|count|:n|1|,},},];"

	j, err := Parse(raw)
	require.NoError(t, err)
	assert.True(t, j.OK)
	assert.Equal(t, MetaFind, j.Meta.Kind)
	count, ok := j.Meta.Count()
	assert.True(t, ok)
	assert.Equal(t, uint64(1), count)

	ids := j.Data.IDs("test")
	require.Len(t, ids, 1)
	assert.Equal(t, "4339ace2-9ab3-4c79-b557-f9b78d66b7f9", ids[0].ID)
}

func TestParseErrReply(t *testing.T) {
	raw := "result:err[response{s|data|:ids[]," +
		"s|meta|:get_meta{s|count|:n|0|,},},];"

	j, err := Parse(raw)
	require.NoError(t, err)
	assert.False(t, j.OK)
	assert.Equal(t, MetaGet, j.Meta.Kind)
	assert.False(t, j.Data.IsObjects())
	assert.Empty(t, j.Data.AllIDs())
}

func TestParseObjectsReply(t *testing.T) {
	raw := "result:ok[response{s|data|:objects{test|b2279b93-00b3-4b44-9670-82a76922c0da|:n|10|,}," +
		"s|meta|:get_meta{s|count|:n|1|,},},];"

	j, err := Parse(raw)
	require.NoError(t, err)
	assert.True(t, j.Data.IsObjects())
	pair, ok := j.Data.ObjectIn("test", "b2279b93-00b3-4b44-9670-82a76922c0da")
	require.True(t, ok)
	n, err := pair.Value.AsInt64()
	require.NoError(t, err)
	assert.Equal(t, int64(10), n)
}

func TestParseMalformedMissingResponseWrapper(t *testing.T) {
	_, err := Parse("result:ok[];")
	assert.Error(t, err)
}
