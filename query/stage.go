// Package query implements the fluent pipeline builder: stages, the
// transition table that validates which stage may follow which, and the
// outer envelope serializer (spec §3.5, §4.3, §4.4, §4.5).
package query

// Stage is one operation in a pipeline. Implementations are the pointer
// types *Insert, *Get, *Find, *Sort, *Limit, *Offset, *Update, *Delete
// and *Project.
type Stage interface {
	// Name is the stage's transition-table key ("insert", "get", "find",
	// "sort", "limit", "offset", "update", "delete", "project").
	Name() string
	// Wire renders the stage's own TySON fragment, excluding the
	// envelope the Query wraps it in.
	Wire() string
}

// rule is one row of the transition table in spec §4.3.
type rule struct {
	canStart     bool
	predecessors map[string]bool
	successors   map[string]bool
}

func set(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// chainable is the set of stages that may precede another chainable stage
// or a terminal stage (spec §4.3 table).
var chainable = []string{"find", "get", "sort", "limit", "offset"}

// stageTable is the constant transition table of spec §4.3. No stage's
// methods need to know about any other stage; the appender consults this
// table instead (design note in spec §9: "No inheritance is required").
//
// The "project" row is, per the successors columns as literally printed
// in spec §4.3, never reachable: every predecessor it names (find, get,
// sort, limit, offset) lists only {find, get, sort, limit, offset, update,
// delete} as ITS OWN successors, omitting "project". Cross-referencing
// original_source/src/query.hpp confirms project does not exist in the
// original driver at all (it was added by the specification), so there is
// no reference behavior to defer to. Appending project to a real pipeline
// is squarely within spec §4.5/§4.7's detailed treatment, so the omission
// reads as a transcription gap in the table rather than an intentional
// restriction; "project" is included in the successors set of every stage
// that can precede it. See DESIGN.md for the recorded decision.
var stageTable = map[string]rule{
	"insert": {canStart: true, predecessors: set(), successors: set()},
	"get": {
		canStart:     true,
		predecessors: set(chainable...),
		successors:   set("find", "get", "sort", "limit", "offset", "update", "delete", "project"),
	},
	"find": {
		canStart:     true,
		predecessors: set(chainable...),
		successors:   set("find", "get", "sort", "limit", "offset", "update", "delete", "project"),
	},
	"sort": {
		canStart:     false,
		predecessors: set(chainable...),
		successors:   set("find", "get", "sort", "limit", "offset", "update", "delete", "project"),
	},
	"limit": {
		canStart:     false,
		predecessors: set(chainable...),
		successors:   set("find", "get", "sort", "limit", "offset", "update", "delete", "project"),
	},
	"offset": {
		canStart:     false,
		predecessors: set(chainable...),
		successors:   set("find", "get", "sort", "limit", "offset", "update", "delete", "project"),
	},
	"update":  {canStart: false, predecessors: set(chainable...), successors: set()},
	"delete":  {canStart: false, predecessors: set(chainable...), successors: set()},
	"project": {canStart: false, predecessors: set(chainable...), successors: set()},
}

func canStartPipeline(name string) bool {
	return stageTable[name].canStart
}

// transitionAllowed implements spec §4.3 point 3, correctly consulting
// each side's own table (resolving the "previous_step_allowed consults
// next_steps_" bug noted in spec §9 open question d).
func transitionAllowed(prev, next string) bool {
	prevRule, ok := stageTable[prev]
	if !ok {
		return false
	}
	nextRule, ok := stageTable[next]
	if !ok {
		return false
	}
	return prevRule.successors[next] && nextRule.predecessors[prev]
}
