// SPDX-FileCopyrightText: 2024 The xmlvalue Authors
//
// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
)

func runWithConfig(t *testing.T, args ...string) config {
	t.Helper()

	var cfg config
	app := cli.NewApp()
	app.Flags = []cli.Flag{configFlag, backendFlag, pathFlag, indentFlag}
	app.Action = func(ctx *cli.Context) error {
		var err error
		cfg, err = loadConfig(ctx)
		return err
	}
	require.NoError(t, app.Run(append([]string{"xvtool"}, args...)))
	return cfg
}

func TestLoadConfig(t *testing.T) {
	r := require.New(t)

	r.Equal(defaultConfig(), runWithConfig(t))

	dir := t.TempDir()
	file := filepath.Join(dir, "xvtool.toml")
	err := os.WriteFile(file, []byte("backend = \"sqlite\"\npath = \"/tmp/docs\"\nindent = \"\\t\"\n"), 0600)
	r.NoError(err)

	cfg := runWithConfig(t, "--config", file)
	r.Equal(config{Backend: "sqlite", Path: "/tmp/docs", Indent: "\t"}, cfg)

	cfg = runWithConfig(t, "--config", file, "--backend", "mkv", "--indent", "")
	r.Equal(config{Backend: "mkv", Path: "/tmp/docs", Indent: ""}, cfg)
}

func TestOpenSaver(t *testing.T) {
	r := require.New(t)

	_, err := openSaver(config{Backend: "tape"})
	r.Error(err)

	for _, b := range []string{"fs", "sqlite", "badger"} {
		s, err := openSaver(config{Backend: b, Path: filepath.Join(t.TempDir(), b)})
		r.NoError(err, b)
		r.NoError(s.Close(), b)
	}

	s, err := openSaver(config{Backend: "mkv", Path: filepath.Join(t.TempDir(), "docs.kv")})
	r.NoError(err)
	r.NoError(s.Close())
}
