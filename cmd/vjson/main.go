// Copyright (C) 2024 The vjson Authors. All Rights Reserved.

// Program vjson parses JSON text and renders it in canonical form.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/tailscale/hujson"
	"github.com/vjson/vjson/ast"
)

var cli struct {
	Input  string `help:"Path to an input file. Reads stdin if omitted." arg:"" optional:"" type:"path"`
	HuJSON bool   `help:"Standardize comments and trailing commas before parsing." name:"hujson"`
	Check  bool   `help:"Validate only; print nothing on success." short:"c"`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("vjson"),
		kong.Description("Parse JSON text and render it in canonical form."),
		kong.UsageOnError(),
	)
	kctx.FatalIfErrorf(run())
}

func run() error {
	data, err := readInput()
	if err != nil {
		return err
	}
	if cli.HuJSON {
		std, err := hujson.Standardize(data)
		if err != nil {
			return fmt.Errorf("standardize input: %w", err)
		}
		data = std
	}
	v, err := ast.Parse(bytes.NewReader(data))
	if err != nil {
		return err
	}
	if !cli.Check {
		fmt.Println(v.JSON())
	}
	return nil
}

func readInput() ([]byte, error) {
	if cli.Input == "" || cli.Input == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(cli.Input)
}
