// Package tyson implements the TySON value model: a closed set of tagged
// value variants together with the textual wire codec described in
// spec §3.1 and §4.1.
package tyson

import (
	"math/big"
	"sort"
	"strconv"

	"github.com/sqldef/annadriver/util"
)

// Value is the TySON tagged union (spec §3.1). The zero Value is Null.
// Values are immutable after construction, except Map which accepts the
// documented MapSet mutator.
type Value struct {
	kind Kind

	str  string // Number digits, String text, FieldRef path
	b    bool
	ts   uint64
	link Link
	vec  []Value
	m    map[string]Value

	field string // KindFieldUpdate field name
	inner *Value // KindFieldUpdate nested value
}

// Null returns the TySON null value.
func Null() Value { return Value{kind: KindNull} }

// Number constructs a Number from its arbitrary-precision decimal text
// (spec §3.1 invariant ii: must be a valid signed/fractional literal).
// The text is held verbatim; Number never forces a Go numeric type.
func Number(text string) Value { return Value{kind: KindNumber, str: text} }

// Int is a convenience constructor for an integer Number.
func Int(n int64) Value { return Number(strconv.FormatInt(n, 10)) }

// Uint is a convenience constructor for a non-negative integer Number.
func Uint(n uint64) Value { return Number(strconv.FormatUint(n, 10)) }

// String constructs a String value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Bool constructs a Bool value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Timestamp constructs a Timestamp value from unsigned seconds since the
// Unix epoch.
func Timestamp(seconds uint64) Value { return Value{kind: KindTimestamp, ts: seconds} }

// NewLink constructs a Link value, validating invariant (i) of spec §3.1.
func NewLink(collection, id string) (Value, error) {
	if err := validateLink(collection, id); err != nil {
		return Value{}, err
	}
	return Value{kind: KindLink, link: Link{Collection: collection, ID: id}}, nil
}

// MustLink is NewLink but panics on an invalid link; intended for tests
// and literal call sites where the link is known-good.
func MustLink(collection, id string) Value {
	v, err := NewLink(collection, id)
	if err != nil {
		panic(err)
	}
	return v
}

// LinkValue wraps an already-validated Link.
func LinkValue(l Link) Value { return Value{kind: KindLink, link: l} }

// Vector constructs an ordered sequence of Values.
func Vector(elems ...Value) Value {
	cp := make([]Value, len(elems))
	copy(cp, elems)
	return Value{kind: KindVector, vec: cp}
}

// NewMap constructs an empty, mutable Map value.
func NewMap() Value { return Value{kind: KindMap, m: map[string]Value{}} }

// FieldRef constructs the bare `value|<path>|` primitive.
func FieldRef(path string) Value { return Value{kind: KindFieldRef, str: path} }

// NewFieldUpdate constructs the `value|<field>|:<v>` compound used by
// Update stage payloads (spec §4.5).
func NewFieldUpdate(field string, v Value) Value {
	inner := v
	return Value{kind: KindFieldUpdate, field: field, inner: &inner}
}

// Keep constructs the `keep` projection primitive (spec §4.7).
func Keep() Value { return Value{kind: KindKeep} }

// Kind reports the variant tag.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the Null variant.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsLink projects v as a Link, failing if v is not a Link.
func (v Value) AsLink() (Link, error) {
	if v.kind != KindLink {
		return Link{}, &ConversionError{From: v.kind, To: "Link"}
	}
	return v.link, nil
}

// AsString projects v as a string. String and FieldRef both carry raw
// text and are accepted.
func (v Value) AsString() (string, error) {
	switch v.kind {
	case KindString, KindFieldRef:
		return v.str, nil
	default:
		return "", &ConversionError{From: v.kind, To: "string"}
	}
}

// AsBool projects v as a bool.
func (v Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, &ConversionError{From: v.kind, To: "bool"}
	}
	return v.b, nil
}

// AsTimestamp projects v as Unix seconds.
func (v Value) AsTimestamp() (uint64, error) {
	if v.kind != KindTimestamp {
		return 0, &ConversionError{From: v.kind, To: "timestamp"}
	}
	return v.ts, nil
}

// AsInt64 converts a Number's decimal text to an int64. It fails if the
// text carries a fractional component or overflows.
func (v Value) AsInt64() (int64, error) {
	if v.kind != KindNumber {
		return 0, &ConversionError{From: v.kind, To: "int64"}
	}
	n, err := strconv.ParseInt(v.str, 10, 64)
	if err != nil {
		return 0, &ConversionError{From: v.kind, To: "int64"}
	}
	return n, nil
}

// AsUint64 converts a Number's decimal text to a uint64.
func (v Value) AsUint64() (uint64, error) {
	if v.kind != KindNumber {
		return 0, &ConversionError{From: v.kind, To: "uint64"}
	}
	n, err := strconv.ParseUint(v.str, 10, 64)
	if err != nil {
		return 0, &ConversionError{From: v.kind, To: "uint64"}
	}
	return n, nil
}

// AsFloat64 converts a Number's decimal text to a float64, going through
// math/big.Rat so that arbitrary-precision decimal text does not silently
// truncate before the final float64 rounding step.
func (v Value) AsFloat64() (float64, error) {
	if v.kind != KindNumber {
		return 0, &ConversionError{From: v.kind, To: "float64"}
	}
	r, ok := new(big.Rat).SetString(v.str)
	if !ok {
		return 0, &ConversionError{From: v.kind, To: "float64"}
	}
	f, _ := r.Float64()
	return f, nil
}

// VectorElems returns the elements of a Vector value.
func (v Value) VectorElems() ([]Value, error) {
	if v.kind != KindVector {
		return nil, &ConversionError{From: v.kind, To: "vector"}
	}
	return v.vec, nil
}

// MapGet looks up key in a Map value.
func (v Value) MapGet(key string) (Value, bool) {
	if v.kind != KindMap {
		return Value{}, false
	}
	val, ok := v.m[key]
	return val, ok
}

// MapLen reports the number of entries in a Map value.
func (v Value) MapLen() int {
	if v.kind != KindMap {
		return 0
	}
	return len(v.m)
}

// MapSet inserts or overwrites key in a Map value; it is the one
// documented mutator allowed on an otherwise-immutable Value (spec §3.1
// Lifecycle). It fails if v is not a Map.
func (v Value) MapSet(key string, val Value) error {
	if v.kind != KindMap {
		return &ConversionError{From: v.kind, To: "map"}
	}
	v.m[key] = val
	return nil
}

// MapIter iterates a Map value's entries in ascending key order, reusing
// the corpus's canonical-order map iteration helper.
func (v Value) MapIter() func(yield func(string, Value) bool) {
	if v.kind != KindMap {
		return func(func(string, Value) bool) {}
	}
	return util.CanonicalMapIter(v.m)
}

// FieldUpdateParts returns the field name and nested value of a
// KindFieldUpdate Value.
func (v Value) FieldUpdateParts() (string, Value, error) {
	if v.kind != KindFieldUpdate {
		return "", Value{}, &ConversionError{From: v.kind, To: "field-update"}
	}
	return v.field, *v.inner, nil
}

// Equal reports structural equality: same variant tag and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull, KindKeep:
		return true
	case KindNumber:
		return v.str == o.str
	case KindString, KindFieldRef:
		return v.str == o.str
	case KindBool:
		return v.b == o.b
	case KindTimestamp:
		return v.ts == o.ts
	case KindLink:
		return v.link == o.link
	case KindVector:
		if len(v.vec) != len(o.vec) {
			return false
		}
		for i := range v.vec {
			if !v.vec[i].Equal(o.vec[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.m) != len(o.m) {
			return false
		}
		for k, val := range v.m {
			ov, ok := o.m[k]
			if !ok || !val.Equal(ov) {
				return false
			}
		}
		return true
	case KindFieldUpdate:
		return v.field == o.field && v.inner.Equal(*o.inner)
	default:
		return false
	}
}

// Compare defines the total order referenced by spec §3.1 and §9
// ("Ordering for map keys"): tag ordinal first, then primitive payload,
// then vector/map payload, recursively.
func (v Value) Compare(o Value) int {
	if v.kind != o.kind {
		return int(v.kind) - int(o.kind)
	}
	switch v.kind {
	case KindNull, KindKeep:
		return 0
	case KindNumber, KindString, KindFieldRef:
		return compareStrings(v.str, o.str)
	case KindBool:
		return compareBool(v.b, o.b)
	case KindTimestamp:
		switch {
		case v.ts < o.ts:
			return -1
		case v.ts > o.ts:
			return 1
		default:
			return 0
		}
	case KindLink:
		if c := compareStrings(v.link.Collection, o.link.Collection); c != 0 {
			return c
		}
		return compareStrings(v.link.ID, o.link.ID)
	case KindVector:
		for i := 0; i < len(v.vec) && i < len(o.vec); i++ {
			if c := v.vec[i].Compare(o.vec[i]); c != 0 {
				return c
			}
		}
		return len(v.vec) - len(o.vec)
	case KindMap:
		return compareMaps(v.m, o.m)
	case KindFieldUpdate:
		if c := compareStrings(v.field, o.field); c != 0 {
			return c
		}
		return v.inner.Compare(*o.inner)
	default:
		return 0
	}
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a && b:
		return -1
	default:
		return 1
	}
}

func compareMaps(a, b map[string]Value) int {
	ak := sortedKeys(a)
	bk := sortedKeys(b)
	for i := 0; i < len(ak) && i < len(bk); i++ {
		if c := compareStrings(ak[i], bk[i]); c != 0 {
			return c
		}
		if c := a[ak[i]].Compare(b[bk[i]]); c != 0 {
			return c
		}
	}
	return len(ak) - len(bk)
}

func sortedKeys(m map[string]Value) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
