package main

import (
	"context"
	"fmt"

	"github.com/k0kubun/pp/v3"

	"github.com/sqldef/annadriver/query"
	"github.com/sqldef/annadriver/tyson"
)

// findCommand runs a single-comparator find, the annacli equivalent of
// the original driver's examples/src/find_example.cpp.
type findCommand struct {
	Args struct {
		Collection string `positional-arg-name:"collection"`
		Field      string `positional-arg-name:"field"`
		Op         string `positional-arg-name:"op"`
		Value      string `positional-arg-name:"value"`
	} `positional-args:"yes" required:"yes"`
}

var findOps = map[string]func(*query.Find, string, tyson.Value) *query.Find{
	"eq":  (*query.Find).Eq,
	"neq": (*query.Find).Neq,
	"gt":  (*query.Find).Gt,
	"gte": (*query.Find).Gte,
	"lt":  (*query.Find).Lt,
	"lte": (*query.Find).Lte,
}

func (c *findCommand) Execute(_ []string) error {
	op, ok := findOps[c.Args.Op]
	if !ok {
		return fmt.Errorf("unknown op %q (want one of eq, neq, gt, gte, lt, lte)", c.Args.Op)
	}

	path := c.Args.Field
	if path == "_" {
		path = ""
	}

	conn, err := connect()
	if err != nil {
		return err
	}
	defer conn.Close()

	find := op(query.NewFind(), path, parseCLIValue(c.Args.Value))
	q := query.New(c.Args.Collection).Find(find)
	if err := q.Err(); err != nil {
		return err
	}

	j, err := conn.Query(context.Background(), q)
	if err != nil {
		return err
	}

	if options.Debug {
		pp.Println(j)
		return nil
	}
	for _, id := range j.Data.AllIDs() {
		fmt.Println(id.String())
	}
	for _, pair := range j.Data.AllObjects() {
		fmt.Printf("%s: %s\n", pair.ID.String(), pair.Value.String())
	}
	return nil
}
