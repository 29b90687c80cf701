package tyson

import "strings"

// ComparatorKind tags the variant of a Comparator (spec §4.2).
type ComparatorKind int

const (
	CmpEq ComparatorKind = iota
	CmpNeq
	CmpGt
	CmpGte
	CmpLt
	CmpLte
	CmpAnd
	CmpOr
	CmpNot
)

var comparatorNames = map[ComparatorKind]string{
	CmpEq: "eq", CmpNeq: "neq", CmpGt: "gt", CmpGte: "gte",
	CmpLt: "lt", CmpLte: "lte", CmpAnd: "and", CmpOr: "or", CmpNot: "not",
}

// Comparator is the recursive tagged tree of predicates used inside Find
// (spec §4.2). The zero Comparator is not meaningful; build one with Eq,
// Neq, Gt, Gte, Lt, Lte, And, Or or Not.
type Comparator struct {
	kind     ComparatorKind
	path     string // "" means the literal "root" for leaf comparators
	value    Value
	children []Comparator
}

// Eq builds an `eq` comparator against the given field path. Pass "" for
// path to compare against the document root (spec §4.2).
func Eq(path string, v Value) Comparator { return leaf(CmpEq, path, v) }

// Neq builds a `neq` comparator.
func Neq(path string, v Value) Comparator { return leaf(CmpNeq, path, v) }

// Gt builds a `gt` comparator.
func Gt(path string, v Value) Comparator { return leaf(CmpGt, path, v) }

// Gte builds a `gte` comparator.
func Gte(path string, v Value) Comparator { return leaf(CmpGte, path, v) }

// Lt builds a `lt` comparator.
func Lt(path string, v Value) Comparator { return leaf(CmpLt, path, v) }

// Lte builds a `lte` comparator.
func Lte(path string, v Value) Comparator { return leaf(CmpLte, path, v) }

func leaf(kind ComparatorKind, path string, v Value) Comparator {
	return Comparator{kind: kind, path: path, value: v}
}

// And builds an `and` comparator over the given children. An empty
// sequence is syntactically permitted and serializes as `and[]`; the
// server's semantics for an empty conjunction are unspecified (spec §4.2).
func And(children ...Comparator) Comparator {
	return Comparator{kind: CmpAnd, children: append([]Comparator{}, children...)}
}

// Or builds an `or` comparator over the given children.
func Or(children ...Comparator) Comparator {
	return Comparator{kind: CmpOr, children: append([]Comparator{}, children...)}
}

// Not builds a `not` comparator over a single field path. Not carries only
// a path, never a value (spec §4.2).
func Not(path string) Comparator {
	return Comparator{kind: CmpNot, path: path}
}

// Kind reports the comparator's variant tag.
func (c Comparator) Kind() ComparatorKind { return c.kind }

// String renders the comparator in TySON wire form (spec §4.2).
func (c Comparator) String() string {
	switch c.kind {
	case CmpAnd, CmpOr:
		var b strings.Builder
		b.WriteString(comparatorNames[c.kind])
		b.WriteByte('[')
		for _, ch := range c.children {
			b.WriteString(ch.String())
			b.WriteByte(',')
		}
		b.WriteByte(']')
		return b.String()
	case CmpNot:
		return "not(value|" + c.path + "|)"
	default:
		key := "root"
		if c.path != "" {
			key = "value|" + c.path + "|"
		}
		return comparatorNames[c.kind] + "{" + key + ": " + c.value.String() + "}"
	}
}
