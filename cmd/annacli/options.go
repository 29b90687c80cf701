package main

// Options holds the flags shared by every subcommand, mirroring the
// teacher's single options struct passed to go-flags across its
// cmd/*def binaries.
type Options struct {
	Config string `short:"c" long:"config" description:"YAML file with url/subject" value-name:"path" default:"annacli.yaml"`
	Debug  bool   `long:"debug" description:"Pretty-print the decoded reply with pp"`
}
