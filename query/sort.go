package query

import "strings"

// SortDirection tags a sort primitive as ascending or descending.
type SortDirection int

const (
	Asc SortDirection = iota
	Desc
)

// SortField is one ordered sort primitive: a direction wrapping a field
// path (spec §4.5).
type SortField struct {
	Direction SortDirection
	Path      string
}

func (f SortField) String() string {
	if f.Direction == Desc {
		return "desc(value|" + f.Path + "|)"
	}
	return "asc(value|" + f.Path + "|)"
}

// Sort carries a sequence of ordered sort primitives (spec §4.5).
type Sort struct {
	fields []SortField
}

// NewSort builds a Sort stage over the given fields.
func NewSort(fields ...SortField) *Sort {
	return &Sort{fields: append([]SortField{}, fields...)}
}

func (s *Sort) Name() string { return "sort" }

func (s *Sort) Wire() string {
	var b strings.Builder
	b.WriteString("sort[")
	for _, f := range s.fields {
		b.WriteString(f.String())
		b.WriteByte(',')
	}
	b.WriteByte(']')
	return b.String()
}

// SortASC builds a Sort stage ascending over the given fields, mirroring
// Sort::ASC in original_source/src/query.hpp.
func SortASC(fields ...string) *Sort {
	return NewSort(sortFields(Asc, fields)...)
}

// SortDESC mirrors Sort::DESC.
func SortDESC(fields ...string) *Sort {
	return NewSort(sortFields(Desc, fields)...)
}

func sortFields(dir SortDirection, fields []string) []SortField {
	out := make([]SortField, len(fields))
	for i, f := range fields {
		out[i] = SortField{Direction: dir, Path: f}
	}
	return out
}
