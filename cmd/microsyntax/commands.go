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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"zombiezen.com/go/microsyntax"
	"zombiezen.com/go/microsyntax/hints"
)

// noValue is printed for values that fail to parse.
const noValue = "none"

func parseIntegerText(s string) string {
	n, ok := microsyntax.ParseInteger(s)
	if !ok {
		return noValue
	}
	return strconv.FormatInt(int64(n), 10)
}

func parseNonNegativeIntegerText(s string) string {
	n, ok := microsyntax.ParseNonNegativeInteger(s)
	if !ok {
		return noValue
	}
	return strconv.FormatUint(uint64(n), 10)
}

func parseFontSizeText(s string) string {
	size, ok := microsyntax.ParseLegacyFontSize(s)
	if !ok {
		return noValue
	}
	return size.String()
}

func parseColorText(s string) string {
	c, err := microsyntax.ParseLegacyColor(s)
	if err != nil {
		return noValue
	}
	return c.String()
}

func valueCommand(name, usage string, parse func(string) string) *cli.Command {
	// Values like "-1" are arguments, not flags.
	return &cli.Command{
		Name:            name,
		Usage:           usage,
		ArgsUsage:       "VALUE...",
		SkipFlagParsing: true,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return printValues(ctx, cmd, name, parse)
		},
	}
}

func parseLengthText(s string) string {
	return microsyntax.ParseLength(s).String()
}

func parseNonzeroLengthText(s string) string {
	return microsyntax.ParseNonzeroLength(s).String()
}

func printValues(ctx context.Context, cmd *cli.Command, parser string, parse func(string) string) error {
	log := envFromContext(ctx).log
	args := cmd.Args().Slice()
	if len(args) == 0 {
		return fmt.Errorf("%s: no values given", parser)
	}
	w := cmd.Root().Writer
	for _, arg := range args {
		result := parse(arg)
		log.Debug("Parsed value", zap.String("parser", parser), zap.String("input", arg), zap.String("result", result))
		if _, err := fmt.Fprintf(w, "%q => %s\n", arg, result); err != nil {
			return fmt.Errorf("%s: %w", parser, err)
		}
	}
	return nil
}

func hintsCommand() *cli.Command {
	return &cli.Command{
		Name:      "hints",
		Usage:     "print the CSS that presentational attributes in an HTML document map to",
		ArgsUsage: "[FILE]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "yaml", Usage: "output `FORMAT`: yaml or text"},
		},
		Action: printHints,
	}
}

func printHints(ctx context.Context, cmd *cli.Command) (err error) {
	log := envFromContext(ctx).log
	format := cmd.String("format")
	if format != "yaml" && format != "text" {
		return fmt.Errorf("hints: unknown format %q", format)
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Too many files, ignoring extra arguments", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	var r io.Reader = cmd.Root().Reader
	source := "STDIN"
	if fname := cmd.Args().First(); fname != "" && fname != "-" {
		f, openErr := os.Open(fname)
		if openErr != nil {
			return fmt.Errorf("hints: %w", openErr)
		}
		defer func() {
			err = multierr.Append(err, f.Close())
		}()
		r = f
		source = fname
	}

	elems, err := hints.Extract(r)
	if err != nil {
		return fmt.Errorf("hints: %s: %w", source, err)
	}
	log.Info("Extracted presentational hints", zap.String("source", source), zap.Int("elements", len(elems)))

	w := cmd.Root().Writer
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = multierr.Combine(enc.Encode(elems), enc.Close())
	case "text":
		for _, e := range elems {
			if _, werr := fmt.Fprintf(w, "<%s style=\"%s\">\n", e.Tag, hints.StyleAttr(e.Declarations)); werr != nil {
				err = werr
				break
			}
		}
	}
	if err != nil {
		return fmt.Errorf("hints: write output: %w", err)
	}
	return nil
}
