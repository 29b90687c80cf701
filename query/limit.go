package query

import "github.com/sqldef/annadriver/tyson"

// Limit carries a non-negative row limit (spec §4.5).
type Limit struct {
	n uint64
}

// NewLimit builds a Limit stage.
func NewLimit(n uint64) *Limit { return &Limit{n: n} }

func (s *Limit) Name() string { return "limit" }

func (s *Limit) Wire() string {
	return "limit(" + tyson.Uint(s.n).String() + ")"
}
