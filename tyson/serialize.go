package tyson

import (
	"strconv"
	"strings"
)

// String renders v in TySON wire form, the exact inverse of Parse for
// every variant with a defined wire form (spec §3.1, §4.1).
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindNumber:
		return "n|" + v.str + "|"
	case KindString:
		return "s|" + v.str + "|"
	case KindBool:
		if v.b {
			return "b|true|"
		}
		return "b|false|"
	case KindTimestamp:
		// Always emit "utc|...|" on output; Parse accepts both "utc" and
		// "uts" prefixes on input (spec §9 open question b).
		return "utc|" + strconv.FormatUint(v.ts, 10) + "|"
	case KindLink:
		return v.link.String()
	case KindVector:
		var b strings.Builder
		b.WriteString("v[")
		for _, e := range v.vec {
			b.WriteString(e.String())
			b.WriteByte(',')
		}
		b.WriteByte(']')
		return b.String()
	case KindMap:
		var b strings.Builder
		b.WriteString("m{")
		for k, val := range v.MapIter() {
			b.WriteString(String(k).String())
			b.WriteByte(':')
			b.WriteString(val.String())
			b.WriteByte(',')
		}
		b.WriteByte('}')
		return b.String()
	case KindFieldRef:
		return "value|" + v.str + "|"
	case KindFieldUpdate:
		return "value|" + v.field + "|:" + v.inner.String()
	case KindKeep:
		return "keep"
	default:
		return ""
	}
}
