package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"github.com/reoring/linecol"
)

// CLI resolves a JSON Pointer to the line:col where the value was authored,
// or dumps the whole index when no pointer is given.
var CLI struct {
	File    string `arg:"" type:"existingfile" help:"YAML or JSON file to inspect."`
	Pointer string `arg:"" optional:"" help:"JSON Pointer to look up (e.g. /foo/0/boom). Omit to list every entry."`
	JSON    bool   `help:"Tokenize the input as strict JSON instead of YAML."`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("linecol"),
		kong.Description("Look up the source position of a value in a YAML or JSON document."),
	)

	data, err := os.ReadFile(CLI.File)
	if err != nil {
		kctx.FatalIfErrorf(err)
	}

	var ps *linecol.Positions
	if CLI.JSON {
		ps, err = linecol.FromJSON(data)
	} else {
		ps, err = linecol.FromBytes(data)
	}
	if err != nil {
		kctx.FatalIfErrorf(err)
	}

	if CLI.Pointer == "" {
		for _, e := range ps.Entries() {
			fmt.Printf("%s\t%d:%d\n", e.Path, e.Pos.Line, e.Pos.Col)
		}
		return
	}

	pos, ok := ps.Get(CLI.Pointer)
	if !ok {
		color.New(color.FgRed).Fprintf(os.Stderr, "could not find %s in %s\n", CLI.Pointer, CLI.File)
		os.Exit(1)
	}
	fmt.Printf("%d:%d\n", pos.Line, pos.Col)
}
