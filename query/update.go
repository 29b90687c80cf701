package query

import (
	"strconv"
	"strings"

	"github.com/sqldef/annadriver/tyson"
)

// UpdateKind tags an update operation as a field set or an increment
// (spec §4.5).
type UpdateKind string

const (
	UpdateSet UpdateKind = "set"
	UpdateInc UpdateKind = "inc"
)

// UpdateOp pairs an UpdateKind with a field-update payload.
type UpdateOp struct {
	Kind    UpdateKind
	Payload tyson.Value
}

// Update carries a sequence of (kind, payload) pairs where each payload
// must be a tyson.Value of KindFieldUpdate (spec §4.5).
type Update struct {
	ops []UpdateOp
}

// NewUpdate builds an Update stage, failing fast if any payload is not a
// field-update value.
func NewUpdate(ops ...UpdateOp) (*Update, error) {
	for i, op := range ops {
		if op.Payload.Kind() != tyson.KindFieldUpdate {
			return nil, &InvalidArgumentError{
				Stage:  "update",
				Reason: "operation " + string(op.Kind) + " at index " + strconv.Itoa(i) + " payload is not a field-update value",
			}
		}
	}
	return &Update{ops: append([]UpdateOp{}, ops...)}, nil
}

func (s *Update) Name() string { return "update" }

func (s *Update) Wire() string {
	var b strings.Builder
	b.WriteString("update[")
	for _, op := range s.ops {
		b.WriteString(string(op.Kind))
		b.WriteByte('{')
		b.WriteString(op.Payload.String())
		b.WriteByte('}')
		b.WriteByte(',')
	}
	b.WriteByte(']')
	return b.String()
}

// Set builds a `set` UpdateOp for the given field and value.
func Set(field string, v tyson.Value) UpdateOp {
	return UpdateOp{Kind: UpdateSet, Payload: tyson.NewFieldUpdate(field, v)}
}

// Inc builds an `inc` UpdateOp for the given field and value.
func Inc(field string, v tyson.Value) UpdateOp {
	return UpdateOp{Kind: UpdateInc, Payload: tyson.NewFieldUpdate(field, v)}
}
