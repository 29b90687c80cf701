package driver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqldef/annadriver/query"
	"github.com/sqldef/annadriver/transport"
	"github.com/sqldef/annadriver/tyson"
)

func TestConnQueryDecodesReply(t *testing.T) {
	reply := "result:ok[response{s|data|:ids[test|4339ace2-9ab3-4c79-b557-f9b78d66b7f9|,]," +
		"s|meta|:find_meta{s|count|:n|1|,},},];"
	mock := transport.NewMock(reply)
	conn := NewConn(mock, NullLogger{})

	q := query.New("test").Find(query.FindGT(tyson.Int(5)))
	j, err := conn.Query(context.Background(), q)
	require.NoError(t, err)
	assert.True(t, j.OK)
	require.Len(t, mock.Queries, 1)
	assert.Equal(t, q.String(), mock.Queries[0])
}

func TestConnQueryRejectsBuilderError(t *testing.T) {
	mock := transport.NewMock()
	conn := NewConn(mock, NullLogger{})

	q := query.New("test").Sort(query.SortASC("a"))
	_, err := conn.Query(context.Background(), q)
	assert.Error(t, err)
	assert.Empty(t, mock.Queries)
}

func TestConnSendReturnsRawText(t *testing.T) {
	mock := transport.NewMock("result:ok[response{s|data|:ids[],s|meta|:insert_meta{s|count|:n|0|,},},];")
	conn := NewConn(mock, NullLogger{})

	q := query.New("test").Insert(tyson.Int(1))
	raw, err := conn.Send(context.Background(), q)
	require.NoError(t, err)
	assert.Contains(t, raw, "result:ok")
}
