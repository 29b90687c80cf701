package query

import (
	"strings"

	"github.com/sqldef/annadriver/tyson"
)

// Query is an ordered list of stages bound to a collection name (spec
// §3.5). The fluent methods (Insert, Get, Find, Sort, Limit, Offset,
// Update, Delete, Project) validate and append in one call, matching the
// chained call sites of spec §8's concrete scenarios; a failed append
// records a sticky error retrievable with Err instead of panicking, since
// idiomatic Go favors returning errors over the original driver's
// exception-throwing add_to_cmds. Call Err before sending a Query built
// this way.
type Query struct {
	collection string
	stages     []Stage
	err        error
}

// New binds a Query to a collection name.
func New(collection string) *Query {
	return &Query{collection: collection}
}

// Collection returns the bound collection name.
func (q *Query) Collection() string { return q.collection }

// Stages returns the pipeline's stages in order.
func (q *Query) Stages() []Stage { return append([]Stage{}, q.stages...) }

// Err returns the first error recorded by a failed Append or fluent
// builder call, if any.
func (q *Query) Err() error { return q.err }

// Append validates and appends stage per spec §4.3:
//  1. an empty pipeline requires stage.CanStartPipeline;
//  2. a non-empty pipeline requires the transition table to allow
//     (previous stage -> stage) in both directions.
func (q *Query) Append(stage Stage) error {
	if len(q.stages) == 0 {
		if !canStartPipeline(stage.Name()) {
			return &TransitionError{Stage: stage.Name()}
		}
		q.stages = append(q.stages, stage)
		return nil
	}

	prev := q.stages[len(q.stages)-1]
	if !transitionAllowed(prev.Name(), stage.Name()) {
		return &TransitionError{Stage: stage.Name(), Previous: prev.Name()}
	}
	q.stages = append(q.stages, stage)
	return nil
}

func (q *Query) append(stage Stage) *Query {
	if q.err != nil {
		return q
	}
	if err := q.Append(stage); err != nil {
		q.err = err
	}
	return q
}

// Insert appends an Insert stage over the given values.
func (q *Query) Insert(values ...tyson.Value) *Query {
	return q.append(NewInsert(values...))
}

// Get appends a Get stage over the given Link values.
func (q *Query) Get(links ...tyson.Value) *Query {
	if q.err != nil {
		return q
	}
	g, err := NewGet(links...)
	if err != nil {
		q.err = err
		return q
	}
	return q.append(g)
}

// Find appends a pre-built Find stage.
func (q *Query) Find(f *Find) *Query { return q.append(f) }

// Sort appends a pre-built Sort stage.
func (q *Query) Sort(s *Sort) *Query { return q.append(s) }

// Limit appends a Limit stage.
func (q *Query) Limit(n uint64) *Query { return q.append(NewLimit(n)) }

// Offset appends an Offset stage.
func (q *Query) Offset(n uint64) *Query { return q.append(NewOffset(n)) }

// Update appends an Update stage over the given operations.
func (q *Query) Update(ops ...UpdateOp) *Query {
	if q.err != nil {
		return q
	}
	u, err := NewUpdate(ops...)
	if err != nil {
		q.err = err
		return q
	}
	return q.append(u)
}

// Delete appends a Delete stage.
func (q *Query) Delete() *Query { return q.append(NewDelete()) }

// Project appends a Project stage over the given field specifications.
func (q *Query) Project(fields ...ProjectField) *Query {
	return q.append(NewProject(fields...))
}

// String renders the full envelope (spec §4.4): a single stage emits
// `collection|C|:<S-wire>;`; two or more stages emit
// `collection|C|:q[<S1-wire>,<S2-wire>,…,<Sn-wire>,];`. Every query ends
// with `;` (spec §6.1).
func (q *Query) String() string {
	var b strings.Builder
	b.WriteString("collection|")
	b.WriteString(q.collection)
	b.WriteString("|:")

	switch len(q.stages) {
	case 0:
		b.WriteString("q[]")
	case 1:
		b.WriteString(q.stages[0].Wire())
	default:
		b.WriteString("q[")
		for _, s := range q.stages {
			b.WriteString(s.Wire())
			b.WriteByte(',')
		}
		b.WriteByte(']')
	}
	b.WriteByte(';')
	return b.String()
}
