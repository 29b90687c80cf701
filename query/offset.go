package query

import "github.com/sqldef/annadriver/tyson"

// Offset carries a non-negative row offset (spec §4.5).
type Offset struct {
	n uint64
}

// NewOffset builds an Offset stage.
func NewOffset(n uint64) *Offset { return &Offset{n: n} }

func (s *Offset) Name() string { return "offset" }

func (s *Offset) Wire() string {
	return "offset(" + tyson.Uint(s.n).String() + ")"
}
