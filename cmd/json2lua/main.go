// Copyright (c) Facebook, Inc. and its affiliates
// SPDX-License-Identifier: MIT OR Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/novifinancial/serde-lua/lua"
	"github.com/novifinancial/serde-lua/serde"
)

var (
	pretty = cli.BoolFlag{
		Name:  "pretty",
		Usage: "indent the output instead of writing it on one line",
	}
	indent = cli.StringFlag{
		Name:  "indent",
		Usage: "indentation unit used with --pretty",
		Value: "  ",
	}
	outfile = cli.StringFlag{
		Name:  "outfile, o",
		Usage: "write the output to `FILE` instead of stdout",
	}
)

func main() {
	app := cli.NewApp()
	app.Name = "json2lua"
	app.Usage = "convert a JSON document to a Lua table literal"
	app.ArgsUsage = "[FILE]"
	app.Flags = []cli.Flag{pretty, indent, outfile}
	app.Action = convert

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func convert(ctx *cli.Context) error {
	input, err := readInput(ctx)
	if err != nil {
		return err
	}

	var doc interface{}
	if err := json.Unmarshal(input, &doc); err != nil {
		return errors.Wrap(err, "parsing input")
	}

	out := os.Stdout
	if name := ctx.String("outfile"); name != "" {
		f, err := os.Create(name)
		if err != nil {
			return errors.Wrap(err, "creating output file")
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	if err := write(ctx, out, lua.Value(doc)); err != nil {
		return errors.Wrap(err, "serializing")
	}
	_, err = fmt.Fprintln(out)
	return err
}

func readInput(ctx *cli.Context) ([]byte, error) {
	if name := ctx.Args().First(); name != "" {
		data, err := os.ReadFile(name)
		return data, errors.Wrap(err, "reading input file")
	}
	data, err := io.ReadAll(os.Stdin)
	return data, errors.Wrap(err, "reading stdin")
}

func write(ctx *cli.Context, out io.Writer, value serde.Serializable) error {
	if !ctx.Bool("pretty") {
		return lua.ToWriter(out, value)
	}
	formatter := lua.NewPrettyFormatterIndent(ctx.String("indent"))
	return value.Serialize(lua.NewSerializerWithFormatter(out, formatter))
}
