package query

import (
	"strconv"
	"strings"

	"github.com/sqldef/annadriver/tyson"
)

// Get carries one or more Links to fetch by id (spec §4.5). Every value
// passed must be a Link; a mixed or non-link input is an error at
// construction.
type Get struct {
	links []tyson.Value
}

// NewGet builds a Get stage over the given Link values, failing fast if
// any value is not a Link.
func NewGet(links ...tyson.Value) (*Get, error) {
	for i, v := range links {
		if v.Kind() != tyson.KindLink {
			return nil, &InvalidArgumentError{Stage: "get", Reason: "argument " + strconv.Itoa(i) + " is not a Link"}
		}
	}
	return &Get{links: append([]tyson.Value{}, links...)}, nil
}

func (s *Get) Name() string { return "get" }

func (s *Get) Wire() string {
	var b strings.Builder
	b.WriteString("get[")
	for _, v := range s.links {
		b.WriteString(v.String())
		b.WriteByte(',')
	}
	b.WriteByte(']')
	return b.String()
}
