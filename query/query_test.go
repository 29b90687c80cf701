package query

import (
	"testing"

	"github.com/sqldef/annadriver/tyson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertScalar(t *testing.T) {
	q := New("test").Insert(tyson.Int(10))
	require.NoError(t, q.Err())
	assert.Equal(t, "collection|test|:insert[n|10|,];", q.String())
}

func TestInsertHeterogeneous(t *testing.T) {
	q := New("test").Insert(tyson.Int(10), tyson.String("fizzbuzz"), tyson.Bool(false))
	require.NoError(t, q.Err())
	assert.Equal(t, "collection|test|:insert[n|10|,s|fizzbuzz|,b|false|,];", q.String())
}

func TestGetByLink(t *testing.T) {
	link := tyson.MustLink("test", "b2279b93-00b3-4b44-9670-82a76922c0da")
	q := New("test").Get(link)
	require.NoError(t, q.Err())
	assert.Equal(t, "collection|test|:get[test|b2279b93-00b3-4b44-9670-82a76922c0da|,];", q.String())
}

func TestGetRejectsNonLink(t *testing.T) {
	q := New("test").Get(tyson.Int(1))
	assert.Error(t, q.Err())
}

func TestFindWithAndOfTwoComparators(t *testing.T) {
	q := New("test").Find(FindAND(
		tyson.Gt("num", tyson.Int(5)),
		tyson.Lte("num", tyson.Int(50)),
	))
	require.NoError(t, q.Err())
	assert.Equal(t, "collection|test|:find[and[gt{value|num|: n|5|},lte{value|num|: n|50|},],];", q.String())
}

func TestFindSortLimitOffset(t *testing.T) {
	q := New("test").
		Find(FindGT(tyson.Int(5))).
		Sort(SortDESC("a", "b")).
		Limit(6).
		Offset(2)
	require.NoError(t, q.Err())
	assert.Equal(t,
		"collection|test|:q[find[gt{root: n|5|},],sort[desc(value|a|),desc(value|b|),],limit(n|6|),offset(n|2|),];",
		q.String())
}

func TestEmptyFind(t *testing.T) {
	q := New("c").Find(NewFind())
	require.NoError(t, q.Err())
	assert.Equal(t, "collection|c|:find[];", q.String())
}

func TestCannotStartWithSort(t *testing.T) {
	q := New("test").Sort(SortASC("a"))
	assert.Error(t, q.Err())
	var terr *TransitionError
	assert.ErrorAs(t, q.Err(), &terr)
}

func TestUpdateCannotFollowInsert(t *testing.T) {
	q := New("test")
	require.NoError(t, q.Append(NewInsert(tyson.Int(1))))
	op, err := NewUpdate(Set("a", tyson.Int(1)))
	require.NoError(t, err)
	err = q.Append(op)
	assert.Error(t, err)
}

func TestProjectFollowsFind(t *testing.T) {
	q := New("test").
		Find(FindGT(tyson.Int(5))).
		Project(ProjectField{Name: "a", Value: tyson.Keep()})
	assert.NoError(t, q.Err())
}

func TestDeleteIsTerminal(t *testing.T) {
	q := New("test").Find(FindGT(tyson.Int(5))).Delete()
	require.NoError(t, q.Err())
	err := q.Append(NewLimit(1))
	assert.Error(t, err)
}

func TestUpdateRejectsNonFieldUpdatePayload(t *testing.T) {
	_, err := NewUpdate(UpdateOp{Kind: UpdateSet, Payload: tyson.Int(1)})
	assert.Error(t, err)
}
