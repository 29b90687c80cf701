package query

import (
	"strings"

	"github.com/sqldef/annadriver/tyson"
)

// Insert carries one or more values to insert (spec §4.5).
type Insert struct {
	values []tyson.Value
}

// NewInsert builds an Insert stage over the given values.
func NewInsert(values ...tyson.Value) *Insert {
	return &Insert{values: append([]tyson.Value{}, values...)}
}

func (s *Insert) Name() string { return "insert" }

func (s *Insert) Wire() string {
	var b strings.Builder
	b.WriteString("insert[")
	for _, v := range s.values {
		b.WriteString(v.String())
		b.WriteByte(',')
	}
	b.WriteByte(']')
	return b.String()
}
