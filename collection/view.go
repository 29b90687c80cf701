// Package collection implements CollectionView (spec §3.2, §4.8): a view
// over parsed response results that is either a sequence of document ids
// or a sequence of (id, value) pairs, with linear-scan lookups.
package collection

import (
	"github.com/sqldef/annadriver/tyson"
	"github.com/sqldef/annadriver/util"
)

// Pair is a (Link, Value) entry in the "objects" shape of a View.
type Pair struct {
	ID    tyson.Link
	Value tyson.Value
}

// View holds either ids or objects, never both (spec §3.2 invariant).
type View struct {
	ids     []tyson.Link
	objects []Pair
}

// NewIDs constructs a View in the "ids" shape.
func NewIDs(ids []tyson.Link) *View {
	return &View{ids: append([]tyson.Link{}, ids...)}
}

// NewObjects constructs a View in the "objects" shape.
func NewObjects(objects []Pair) *View {
	return &View{objects: append([]Pair{}, objects...)}
}

// IsObjects reports whether the view holds (id, value) pairs rather than
// bare ids.
func (v *View) IsObjects() bool { return v.objects != nil }

// AllIDs returns every id in the view, in insertion order. For an
// "objects" view this returns each pair's id.
func (v *View) AllIDs() []tyson.Link {
	if v.IsObjects() {
		return util.TransformSlice(v.objects, func(p Pair) tyson.Link { return p.ID })
	}
	return append([]tyson.Link{}, v.ids...)
}

// AllObjects returns every (id, value) pair in the view, in insertion
// order. It is empty for an "ids" view.
func (v *View) AllObjects() []Pair {
	return append([]Pair{}, v.objects...)
}

// IDs returns the subsequence of ids whose collection equals name,
// order-preserving (spec §4.8).
func (v *View) IDs(name string) []tyson.Link {
	var out []tyson.Link
	for _, id := range v.AllIDs() {
		if id.Collection == name {
			out = append(out, id)
		}
	}
	return out
}

// ID returns the first id with the given uuid, regardless of collection.
func (v *View) ID(id string) (tyson.Link, bool) {
	for _, l := range v.AllIDs() {
		if l.ID == id {
			return l, true
		}
	}
	return tyson.Link{}, false
}

// IDIn returns the first id with the given collection and uuid.
func (v *View) IDIn(collection, id string) (tyson.Link, bool) {
	for _, l := range v.AllIDs() {
		if l.Collection == collection && l.ID == id {
			return l, true
		}
	}
	return tyson.Link{}, false
}

// Objects returns the subsequence of (Link, Value) pairs whose Link
// collection equals name, order-preserving (spec §4.8, testable property
// 5).
func (v *View) Objects(name string) []Pair {
	var out []Pair
	for _, p := range v.objects {
		if p.ID.Collection == name {
			out = append(out, p)
		}
	}
	return out
}

// Object returns the first pair with the given uuid, regardless of
// collection.
func (v *View) Object(id string) (Pair, bool) {
	for _, p := range v.objects {
		if p.ID.ID == id {
			return p, true
		}
	}
	return Pair{}, false
}

// ObjectIn returns the first pair with the given collection and uuid.
func (v *View) ObjectIn(collection, id string) (Pair, bool) {
	for _, p := range v.objects {
		if p.ID.Collection == collection && p.ID.ID == id {
			return p, true
		}
	}
	return Pair{}, false
}
