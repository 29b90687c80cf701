package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/sqldef/annadriver/internal/obslog"
)

var version string

var options Options

func main() {
	obslog.Init()

	parser := flags.NewParser(&options, flags.Default)
	parser.Usage = "[options] <command>"
	if _, err := parser.AddCommand("find", "Run a find query against a collection", "", &findCommand{}); err != nil {
		log.Fatal(err)
	}
	if _, err := parser.AddCommand("insert", "Insert one or more values into a collection", "", &insertCommand{}); err != nil {
		log.Fatal(err)
	}

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
