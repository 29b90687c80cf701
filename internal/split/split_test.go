package split

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopLevel(t *testing.T) {
	assert.Equal(t, []string{"n|10|", "s|fizzbuzz|", "b|false|"},
		TopLevel("n|10|,s|fizzbuzz|,b|false|,", ','))

	// nested brackets must not split
	assert.Equal(t, []string{"gt{value|num|: n|5|}", "lte{value|num|: n|50|}"},
		TopLevel("gt{value|num|: n|5|},lte{value|num|: n|50|},", ','))

	assert.Nil(t, TopLevel("", ','))
}

func TestSplitN(t *testing.T) {
	before, after, ok := SplitN("test|b2279b93-00b3-4b44-9670-82a76922c0da|", '|')
	assert.True(t, ok)
	assert.Equal(t, "test", before)
	assert.Equal(t, "b2279b93-00b3-4b44-9670-82a76922c0da|", after)

	_, _, ok = SplitN("noseparator", '|')
	assert.False(t, ok)
}

func TestLastTopLevelIndex(t *testing.T) {
	s := "s|data|:objects{a|1|: n|1|,},s|meta|:find_meta{s|count|:n|1|,},"
	idx := LastTopLevelIndex(s, ',')
	assert.True(t, idx > 0)
	assert.Equal(t, byte(','), s[idx])
}

func TestMatchingClose(t *testing.T) {
	s := "response{s|data|:ids[a|1|,],s|meta|:find_meta{s|count|:n|1|,},},];"
	openIdx := len("response") // index of '{'
	assert.Equal(t, byte('{'), s[openIdx])
	closeIdx := MatchingClose(s, openIdx)
	assert.Equal(t, byte('}'), s[closeIdx])
	// two literal characters, ",]", follow the matched close before ";".
	assert.Equal(t, s[closeIdx+1:len(s)-1], ",]")
}
