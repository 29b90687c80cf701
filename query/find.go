package query

import (
	"strings"

	"github.com/sqldef/annadriver/tyson"
)

// Find carries a sequence of comparators (spec §4.5). Build one either
// via the instance methods (Eq, Neq, Gt, ...) or the package-level static
// constructors (FindEQ, FindGT, FindAND, ...) mirroring
// original_source/src/query.hpp's Find::EQ/Find::GT static factories
// (spec SPEC_FULL §4.10).
type Find struct {
	comparators []tyson.Comparator
}

// NewFind builds an empty Find stage; comparators are added with Eq, Neq,
// Gt, Gte, Lt, Lte, And, Or or Not.
func NewFind() *Find { return &Find{} }

func (s *Find) Name() string { return "find" }

func (s *Find) Wire() string {
	var b strings.Builder
	b.WriteString("find[")
	for _, c := range s.comparators {
		b.WriteString(c.String())
		b.WriteByte(',')
	}
	b.WriteByte(']')
	return b.String()
}

// Eq appends an `eq` comparator against path ("" for the document root)
// and returns s for chaining.
func (s *Find) Eq(path string, v tyson.Value) *Find {
	s.comparators = append(s.comparators, tyson.Eq(path, v))
	return s
}

// Neq appends a `neq` comparator.
func (s *Find) Neq(path string, v tyson.Value) *Find {
	s.comparators = append(s.comparators, tyson.Neq(path, v))
	return s
}

// Gt appends a `gt` comparator.
func (s *Find) Gt(path string, v tyson.Value) *Find {
	s.comparators = append(s.comparators, tyson.Gt(path, v))
	return s
}

// Gte appends a `gte` comparator.
func (s *Find) Gte(path string, v tyson.Value) *Find {
	s.comparators = append(s.comparators, tyson.Gte(path, v))
	return s
}

// Lt appends a `lt` comparator.
func (s *Find) Lt(path string, v tyson.Value) *Find {
	s.comparators = append(s.comparators, tyson.Lt(path, v))
	return s
}

// Lte appends a `lte` comparator.
func (s *Find) Lte(path string, v tyson.Value) *Find {
	s.comparators = append(s.comparators, tyson.Lte(path, v))
	return s
}

// And appends an `and` comparator over children.
func (s *Find) And(children ...tyson.Comparator) *Find {
	s.comparators = append(s.comparators, tyson.And(children...))
	return s
}

// Or appends an `or` comparator over children.
func (s *Find) Or(children ...tyson.Comparator) *Find {
	s.comparators = append(s.comparators, tyson.Or(children...))
	return s
}

// Not appends a `not` comparator over path.
func (s *Find) Not(path string) *Find {
	s.comparators = append(s.comparators, tyson.Not(path))
	return s
}

// FindEQ builds a Find pre-populated with a single root `eq` comparator,
// mirroring Find::EQ in original_source/src/query.hpp.
func FindEQ(v tyson.Value) *Find { return NewFind().Eq("", v) }

// FindNEQ mirrors Find::NEQ.
func FindNEQ(v tyson.Value) *Find { return NewFind().Neq("", v) }

// FindGT mirrors Find::GT.
func FindGT(v tyson.Value) *Find { return NewFind().Gt("", v) }

// FindGTE mirrors Find::GTE.
func FindGTE(v tyson.Value) *Find { return NewFind().Gte("", v) }

// FindLT mirrors Find::LT.
func FindLT(v tyson.Value) *Find { return NewFind().Lt("", v) }

// FindLTE mirrors Find::LTE.
func FindLTE(v tyson.Value) *Find { return NewFind().Lte("", v) }

// FindAND builds a Find pre-populated with a single `and` comparator over
// children, mirroring Find::AND.
func FindAND(children ...tyson.Comparator) *Find { return NewFind().And(children...) }

// FindOR mirrors Find::OR.
func FindOR(children ...tyson.Comparator) *Find { return NewFind().Or(children...) }
