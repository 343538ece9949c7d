// SPDX-FileCopyrightText: 2024 The xmlvalue Authors
//
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"go.mindeco.de/logging"

	"github.com/ssbc/xmlvalue"
	"github.com/ssbc/xmlvalue/codec/json"
	"github.com/ssbc/xmlvalue/codec/xmlcodec"
	"github.com/ssbc/xmlvalue/ext/msgpack"
	"github.com/ssbc/xmlvalue/store"
)

func xmlCodec(cfg config) *xmlcodec.Codec {
	opts := msgpack.New().CodecOptions()
	opts = append(opts, xmlcodec.WithIndent(cfg.Indent))
	return xmlcodec.New(opts...)
}

// input opens the file named by the nth argument, or stdin if there is none.
func input(ctx *cli.Context, n int) (io.ReadCloser, error) {
	name := ctx.Args().Get(n)
	if name == "" || name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(name)
	return f, errors.Wrap(err, "failed to open input")
}

func readInput(ctx *cli.Context, n int) ([]byte, error) {
	in, err := input(ctx, n)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	data, err := io.ReadAll(in)
	return data, errors.Wrap(err, "failed to read input")
}

func encodeCmd(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	data, err := readInput(ctx, 0)
	if err != nil {
		return err
	}

	v, err := json.NewCodec("").Unmarshal(data)
	if err != nil {
		return err
	}
	return xmlCodec(cfg).EncodeTo(os.Stdout, v)
}

func decodeCmd(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	in, err := input(ctx, 0)
	if err != nil {
		return err
	}
	defer in.Close()

	v, err := xmlCodec(cfg).DecodeFrom(in)
	if err != nil {
		return err
	}
	return json.NewCodec("  ").NewEncoder(os.Stdout).Encode(v)
}

func checkCmd(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	in, err := input(ctx, 0)
	if err != nil {
		return err
	}
	defer in.Close()

	log := logging.Logger("check")
	v, err := xmlCodec(cfg).DecodeFrom(in)
	if err != nil {
		var ge *xmlvalue.Error
		if errors.As(err, &ge) {
			log.Log("result", "invalid", "kind", ge.Kind, "tag", ge.Tag)
		}
		return err
	}
	log.Log("result", "ok", "kind", xmlvalue.KindOf(v))
	return nil
}

func withStore(ctx *cli.Context, fn func(*store.Store) error) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	saver, err := openSaver(cfg)
	if err != nil {
		return err
	}

	st := store.New(saver,
		store.WithCodec(xmlCodec(cfg)),
		store.WithLogger(logging.Logger("store")),
	)
	err = fn(st)
	if cerr := st.Close(); err == nil {
		err = errors.Wrap(cerr, "failed to close store")
	}
	return err
}

func requireKey(ctx *cli.Context) (string, error) {
	key := ctx.Args().First()
	if key == "" {
		return "", errors.New("missing key argument")
	}
	return key, nil
}

func putCmd(ctx *cli.Context) error {
	key, err := requireKey(ctx)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	data, err := readInput(ctx, 1)
	if err != nil {
		return err
	}
	v, err := xmlCodec(cfg).Unmarshal(data)
	if err != nil {
		return errors.Wrap(err, "refusing to store invalid document")
	}

	return withStore(ctx, func(st *store.Store) error {
		return st.Put(context.Background(), key, v)
	})
}

func getCmd(ctx *cli.Context) error {
	key, err := requireKey(ctx)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	return withStore(ctx, func(st *store.Store) error {
		v, err := st.Get(context.Background(), key)
		if err != nil {
			return err
		}
		return xmlCodec(cfg).EncodeTo(os.Stdout, v)
	})
}

func rmCmd(ctx *cli.Context) error {
	key, err := requireKey(ctx)
	if err != nil {
		return err
	}
	return withStore(ctx, func(st *store.Store) error {
		return st.Delete(context.Background(), key)
	})
}

func lsCmd(ctx *cli.Context) error {
	return withStore(ctx, func(st *store.Store) error {
		keys, err := st.Keys(context.Background())
		if err != nil {
			return err
		}
		for _, k := range keys {
			fmt.Println(k)
		}
		return nil
	})
}
