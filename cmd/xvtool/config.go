// SPDX-FileCopyrightText: 2024 The xmlvalue Authors
//
// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/ssbc/xmlvalue/internal/persist"
	"github.com/ssbc/xmlvalue/internal/persist/badger"
	"github.com/ssbc/xmlvalue/internal/persist/fs"
	"github.com/ssbc/xmlvalue/internal/persist/mem"
	"github.com/ssbc/xmlvalue/internal/persist/mkv"
	"github.com/ssbc/xmlvalue/internal/persist/sqlite"
	"github.com/ssbc/xmlvalue/xmlstream"
)

// config is read from the --config TOML file. Flags given on the command
// line take precedence.
//
//	backend = "sqlite"
//	path    = "/var/lib/app/settings"
//	indent  = "  "
type config struct {
	Backend string `toml:"backend"`
	Path    string `toml:"path"`
	Indent  string `toml:"indent"`
}

func defaultConfig() config {
	return config{
		Backend: "fs",
		Path:    "./settings",
		Indent:  xmlstream.DefaultIndent,
	}
}

func loadConfig(ctx *cli.Context) (config, error) {
	cfg := defaultConfig()

	if p := ctx.GlobalString(configFlag.Name); p != "" {
		f, err := os.Open(p)
		if err != nil {
			return cfg, errors.Wrap(err, "failed to open config")
		}
		defer f.Close()

		if err := toml.NewDecoder(f).Decode(&cfg); err != nil {
			return cfg, errors.Wrapf(err, "failed to parse config %s", p)
		}
	}

	if ctx.GlobalIsSet(backendFlag.Name) {
		cfg.Backend = ctx.GlobalString(backendFlag.Name)
	}
	if ctx.GlobalIsSet(pathFlag.Name) {
		cfg.Path = ctx.GlobalString(pathFlag.Name)
	}
	if ctx.GlobalIsSet(indentFlag.Name) {
		cfg.Indent = ctx.GlobalString(indentFlag.Name)
	}
	return cfg, nil
}

func openSaver(cfg config) (persist.Saver, error) {
	switch cfg.Backend {
	case "mem":
		return mem.New(), nil
	case "fs":
		return fs.New(cfg.Path)
	case "sqlite":
		return sqlite.New(cfg.Path)
	case "mkv":
		return mkv.New(cfg.Path)
	case "badger":
		return badger.New(cfg.Path)
	}
	return nil, errors.Errorf("unknown backend %q (want mem, fs, sqlite, mkv or badger)", cfg.Backend)
}
