package main

import (
	"context"
	"fmt"

	"github.com/k0kubun/pp/v3"

	"github.com/sqldef/annadriver/query"
	"github.com/sqldef/annadriver/tyson"
)

// insertCommand inserts one or more scalar values into a collection, the
// annacli equivalent of the original driver's examples/src/insert_example.cpp.
type insertCommand struct {
	Args struct {
		Collection string   `positional-arg-name:"collection"`
		Values     []string `positional-arg-name:"values"`
	} `positional-args:"yes" required:"yes"`
}

func (c *insertCommand) Execute(_ []string) error {
	conn, err := connect()
	if err != nil {
		return err
	}
	defer conn.Close()

	values := make([]tyson.Value, len(c.Args.Values))
	for i, raw := range c.Args.Values {
		values[i] = parseCLIValue(raw)
	}

	q := query.New(c.Args.Collection).Insert(values...)
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
	count, _ := j.Meta.Count()
	fmt.Printf("ok=%v inserted=%d\n", j.OK, count)
	return nil
}
