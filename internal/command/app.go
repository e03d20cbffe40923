// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/relcheck/relcheck/internal/config"
	"github.com/relcheck/relcheck/internal/evaluator"
	"github.com/relcheck/relcheck/internal/log"
	"github.com/relcheck/relcheck/internal/meta"
	"github.com/relcheck/relcheck/internal/runner"
)

// ErrValidationFailed signals that the run completed but one or more
// relationships did not pass. The diagnostics were already logged, so main
// maps this to exit status 1 without printing anything further.
var ErrValidationFailed = errors.New("one or more relationship validations failed")

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, _ := os.Getwd()

	cfg, _ := config.Load() //nolint
	m := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:      "relcheck",
		Usage:     "validate declared relationships between configuration files",
		UsageText: "relcheck [options] CONFIG_FILE [CONFIG_FILE...]",
		ArgsUsage: "CONFIG_FILE [CONFIG_FILE...]",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "relcheck version info",
				HideDefault: true,
			},
		}, NewCheckFlags()...),
		Before: beforeCheck,
		Action: checkAction,
	}

	// Make sure flags are sorted for the --help text.
	sort.Slice(app.Flags, func(i, j int) bool {
		return app.Flags[i].Names()[0] < app.Flags[j].Names()[0]
	})

	return app, nil
}

// beforeCheck applies the log level before any work happens so even loader
// debug lines honor the flag.
func beforeCheck(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if level := cmd.String("log-level"); level != "" {
		if err := log.SetLevelName(level); err != nil {
			return ctx, err
		}
	}
	return ctx, nil
}

// checkAction is the action handler for the root command. Positional
// arguments are the configuration files; the relationship file comes from
// --relationships.
func checkAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("executing check for %v", m.Args[1:])

	configPaths := cmd.Args().Slice()
	if len(configPaths) == 0 {
		return fmt.Errorf("at least one configuration file is required")
	}

	opts := runner.Options{
		ConfigPaths:      configPaths,
		RelationshipPath: cmd.String("relationships"),
		Evaluator:        evaluator.Options{NullPasses: cmd.Bool("null-pass")},
		Color:            cmd.Bool("color"),
	}

	report, err := runner.Run(ctx, opts)
	if err != nil {
		return err
	}
	if !report.Passed() {
		return ErrValidationFailed
	}
	return nil
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of the wrong type, a zero Meta is returned.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}
