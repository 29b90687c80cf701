package response

import (
	"strings"

	"github.com/sqldef/annadriver/tyson"
)

// MetaKind identifies which pipeline operation produced a reply (spec
// §4.6 "Meta section").
type MetaKind int

const (
	MetaNone MetaKind = iota
	MetaInsert
	MetaGet
	MetaFind
	MetaUpdate
)

func (k MetaKind) String() string {
	switch k {
	case MetaInsert:
		return "insert"
	case MetaGet:
		return "get"
	case MetaFind:
		return "find"
	case MetaUpdate:
		return "update"
	default:
		return "none"
	}
}

var metaKindTable = map[string]MetaKind{
	"insert_meta": MetaInsert,
	"get_meta":    MetaGet,
	"find_meta":   MetaFind,
	"update_meta": MetaUpdate,
}

// Meta wraps the kind tag and the parsed map body of a reply's meta
// section, exposing the row count through a typed accessor.
type Meta struct {
	Kind MetaKind
	body tyson.Value
}

// Count returns the meta map's "count" field (spec's meta.rows), or 0 if
// absent.
func (m *Meta) Count() (uint64, bool) {
	v, ok := m.body.MapGet("count")
	if !ok {
		return 0, false
	}
	n, err := v.AsUint64()
	if err != nil {
		return 0, false
	}
	return n, true
}

// decodeMeta parses the meta section body (with the "s|meta|:" tag
// already stripped): "<kind>{<map-body>}". The kind token runs from the
// start of text to its first '{'; the remainder, with an "m" prepended,
// is a Map literal.
func decodeMeta(text string) (*Meta, error) {
	braceIdx := strings.IndexByte(text, '{')
	if braceIdx < 0 {
		return nil, newDecodeError(text, "meta section missing '{'")
	}
	kindTag := text[:braceIdx]
	kind, ok := metaKindTable[kindTag]
	if !ok {
		return nil, newDecodeError(text, "unknown meta kind "+kindTag)
	}

	mapText := "m" + text[braceIdx:]
	body, err := tyson.Parse(mapText)
	if err != nil {
		return nil, err
	}
	return &Meta{Kind: kind, body: body}, nil
}
