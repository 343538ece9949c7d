// SPDX-FileCopyrightText: 2024 The xmlvalue Authors
//
// SPDX-License-Identifier: MIT

// xvtool converts between JSON and the xmlvalue XML grammar and manages
// documents in a settings store.
package main

import (
	"os"

	"github.com/urfave/cli"
	"go.mindeco.de/logging"
)

var check = logging.CheckFatal

var (
	configFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML file with backend, path and indent settings",
	}
	backendFlag = cli.StringFlag{
		Name:  "backend",
		Usage: "store backend: mem, fs, sqlite, mkv or badger",
		Value: "fs",
	}
	pathFlag = cli.StringFlag{
		Name:  "path",
		Usage: "location of the store",
		Value: "./settings",
	}
	indentFlag = cli.StringFlag{
		Name:  "indent",
		Usage: "indentation of written XML, empty for a single line",
		Value: "    ",
	}
)

func main() {
	logging.SetupLogging(nil)

	app := cli.NewApp()
	app.Name = "xvtool"
	app.Usage = "encode, decode and store xmlvalue documents"
	app.Version = "v0.1.0"
	app.Flags = []cli.Flag{configFlag, backendFlag, pathFlag, indentFlag}
	app.Commands = []cli.Command{
		{
			Name:      "encode",
			Usage:     "convert JSON to XML",
			ArgsUsage: "[file]",
			Action:    encodeCmd,
		},
		{
			Name:      "decode",
			Usage:     "convert XML to JSON",
			ArgsUsage: "[file]",
			Action:    decodeCmd,
		},
		{
			Name:      "check",
			Usage:     "validate an XML document against the grammar",
			ArgsUsage: "[file]",
			Action:    checkCmd,
		},
		{
			Name:      "put",
			Usage:     "store an XML document under a key",
			ArgsUsage: "<key> [file]",
			Action:    putCmd,
		},
		{
			Name:      "get",
			Usage:     "print the document stored under a key",
			ArgsUsage: "<key>",
			Action:    getCmd,
		},
		{
			Name:      "rm",
			Usage:     "delete the document stored under a key",
			ArgsUsage: "<key>",
			Action:    rmCmd,
		},
		{
			Name:   "ls",
			Usage:  "list stored keys",
			Action: lsCmd,
		},
	}

	check(app.Run(os.Args))
}
