package tyson

import (
	"strconv"
	"strings"

	"github.com/sqldef/annadriver/internal/split"
)

// Parse decodes a single TySON token tree into a Value (spec §4.1). It is
// total over syntactically valid inputs (invariant iv); malformed text
// yields a *ParseError.
func Parse(s string) (Value, error) {
	switch {
	case s == "null":
		return Null(), nil
	case s == "keep":
		return Keep(), nil
	case strings.HasPrefix(s, "uts") || strings.HasPrefix(s, "utc"):
		return parseTimestamp(s)
	case strings.HasPrefix(s, "v["):
		return parseVector(s)
	case strings.HasPrefix(s, "m{"):
		return parseMap(s)
	case strings.HasPrefix(s, "value|"):
		return parseFieldToken(s)
	}

	idx := split.FirstTopLevelIndex(s, '|')
	if idx < 0 {
		return Value{}, newParseError(s, "no type tag delimiter '|' found")
	}
	tag := s[:idx]

	if len(tag) == 1 {
		return parsePrimitive(s, tag, idx)
	}
	return parseLink(s, tag, idx)
}

func parsePrimitive(s, tag string, idx int) (Value, error) {
	if len(s) == 0 || s[len(s)-1] != '|' {
		return Value{}, newParseError(s, "primitive body must be terminated by '|'")
	}
	body := s[idx+1 : len(s)-1]
	switch tag {
	case "n":
		return Number(body), nil
	case "s":
		return String(body), nil
	case "b":
		switch body {
		case "true":
			return Bool(true), nil
		case "false":
			return Bool(false), nil
		default:
			return Value{}, newParseError(s, "bool body must be 'true' or 'false'")
		}
	default:
		return Value{}, newParseError(s, "unknown primitive tag "+tag)
	}
}

func parseLink(s, tag string, idx int) (Value, error) {
	if len(s) == 0 || s[len(s)-1] != '|' {
		return Value{}, newParseError(s, "link body must be terminated by '|'")
	}
	id := s[idx+1 : len(s)-1]
	v, err := NewLink(tag, id)
	if err != nil {
		return Value{}, newParseError(s, err.Error())
	}
	return v, nil
}

func parseTimestamp(s string) (Value, error) {
	idx := split.FirstTopLevelIndex(s, '|')
	if idx < 0 || len(s) == 0 || s[len(s)-1] != '|' {
		return Value{}, newParseError(s, "timestamp must be of form uts|<digits>| or utc|<digits>|")
	}
	body := s[idx+1 : len(s)-1]
	n, err := strconv.ParseUint(body, 10, 64)
	if err != nil {
		return Value{}, newParseError(s, "timestamp body is not an unsigned integer")
	}
	return Timestamp(n), nil
}

func parseVector(s string) (Value, error) {
	if !strings.HasSuffix(s, "]") {
		return Value{}, newParseError(s, "vector must be terminated by ']'")
	}
	inner := s[2 : len(s)-1]
	parts := split.TopLevel(inner, ',')
	elems := make([]Value, 0, len(parts))
	for _, p := range parts {
		e, err := Parse(p)
		if err != nil {
			return Value{}, err
		}
		elems = append(elems, e)
	}
	return Vector(elems...), nil
}

func parseMap(s string) (Value, error) {
	if !strings.HasSuffix(s, "}") {
		return Value{}, newParseError(s, "map must be terminated by '}'")
	}
	inner := s[2 : len(s)-1]
	entries := split.TopLevel(inner, ',')
	m := NewMap()
	for _, entry := range entries {
		keyText, valText, ok := split.SplitN(entry, ':')
		if !ok {
			return Value{}, newParseError(s, "map entry missing ':' separator")
		}
		keyVal, err := Parse(keyText)
		if err != nil {
			return Value{}, err
		}
		key, err := keyVal.AsString()
		if err != nil {
			return Value{}, newParseError(s, "map key must be a String value")
		}
		if _, exists := m.MapGet(key); exists {
			// Duplicate keys: first write wins (spec §4.1).
			continue
		}
		val, err := Parse(valText)
		if err != nil {
			return Value{}, err
		}
		_ = m.MapSet(key, val)
	}
	return m, nil
}

// parseFieldToken parses either the bare `value|<path>|` FieldRef or the
// `value|<field>|:<v>` FieldUpdate compound (spec §3.1, §4.5, §4.7).
func parseFieldToken(s string) (Value, error) {
	rest := s[len("value"):]
	if len(rest) == 0 || rest[0] != '|' {
		return Value{}, newParseError(s, "malformed value| token")
	}
	rest = rest[1:]
	end := split.FirstTopLevelIndex(rest, '|')
	if end < 0 {
		return Value{}, newParseError(s, "value| token missing closing '|'")
	}
	path := rest[:end]
	trailer := rest[end+1:]

	if trailer == "" {
		return FieldRef(path), nil
	}
	if trailer[0] != ':' {
		return Value{}, newParseError(s, "value| token trailer must start with ':'")
	}
	nested, err := Parse(trailer[1:])
	if err != nil {
		return Value{}, err
	}
	return NewFieldUpdate(path, nested), nil
}
