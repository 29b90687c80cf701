package query

import (
	"strings"

	"github.com/sqldef/annadriver/tyson"
)

// ProjectField pairs a field name with a projection primitive: keep, a
// field reference, a literal value, or a nested Map/Vector of such (spec
// §4.5, §4.7).
type ProjectField struct {
	Name  string
	Value tyson.Value
}

// Project carries a sequence of field specifications (spec §4.5).
type Project struct {
	fields []ProjectField
}

// NewProject builds a Project stage.
func NewProject(fields ...ProjectField) *Project {
	return &Project{fields: append([]ProjectField{}, fields...)}
}

func (s *Project) Name() string { return "project" }

func (s *Project) Wire() string {
	var b strings.Builder
	b.WriteString("project{")
	for _, f := range s.fields {
		b.WriteString(tyson.String(f.Name).String())
		b.WriteByte(':')
		b.WriteString(f.Value.String())
		b.WriteByte(',')
	}
	b.WriteByte('}')
	return b.String()
}
