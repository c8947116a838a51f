// Copyright 2026 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// microsyntax parses legacy HTML attribute values from the command line.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// env is the state shared by all subcommands.
// It is stored in the context before the command runs
// and populated by the Before hook.
type env struct {
	log *zap.Logger
}

type envKey struct{}

func contextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, &env{log: zap.NewNop()})
}

func envFromContext(ctx context.Context) *env {
	if e, ok := ctx.Value(envKey{}).(*env); ok {
		return e
	}
	return &env{log: zap.NewNop()}
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.TimeKey = zapcore.OmitKey
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	return cfg.Build()
}

func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	log, err := newLogger(cmd.Bool("debug"))
	if err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	e := envFromContext(ctx)
	e.log = log
	e.log.Debug("Program started", zap.Strings("args", cmd.Args().Slice()))
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) error {
	e := envFromContext(ctx)
	e.log.Debug("Program ended")
	// Syncing stderr fails on some terminals; nothing useful can be done about it.
	_ = e.log.Sync()
	return nil
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:            "microsyntax",
		Usage:           "parses legacy HTML attribute values",
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log every parsed value"},
		},
		Commands: []*cli.Command{
			valueCommand("int", "parse signed integers", parseIntegerText),
			valueCommand("uint", "parse non-negative integers", parseNonNegativeIntegerText),
			valueCommand("length", "parse dimension values (width, height attributes)", parseLengthText),
			valueCommand("nonzero-length", "parse dimension values, treating zero as auto", parseNonzeroLengthText),
			valueCommand("fontsize", "parse legacy font sizes (font size attribute)", parseFontSizeText),
			valueCommand("color", "parse legacy colors (bgcolor, color, text attributes)", parseColorText),
			hintsCommand(),
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(contextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)
	err := newApp().Run(ctx, os.Args)
	stop()
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "microsyntax: %v\n", err)
		}
		os.Exit(1)
	}
}
