// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/relcheck/relcheck/internal/config"
	"github.com/relcheck/relcheck/internal/runner"
)

// NewCheckFlags constructs the flag set for the check command. String flags
// chain env and user-config sources; booleans take their defaults from the
// user config so operators can pin site-wide behavior.
func NewCheckFlags() []cli.Flag {
	return []cli.Flag{
		relationshipsFlag(),
		logLevelFlag(),
		&cli.BoolFlag{
			Name:  "null-pass",
			Usage: "treat a null-valued side of any comparison as a pass",
			Value: nullPassDefault(),
		},
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored pass/fail markers",
			Value:   runner.ColorAuto(),
		},
	}
}

func relationshipsFlag() *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:     "relationships",
		Aliases:  []string{"r", "relationship-file"},
		Usage:    "file defining the relationships to validate (JSON or YAML sequence)",
		Required: true,
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("RELCHECK_RELATIONSHIPS"),
		),
	}
	return valueChainFlagFromConfigFile(flag)
}

func logLevelFlag() *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:  "log-level",
		Usage: "set the logging level (trace, debug, info, warning, error, critical)",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("RELCHECK_LOG"),
		),
		Validator: func(value string) error {
			return FlagValidators(value, LogLevelValidator)
		},
	}
	return valueChainFlagFromConfigFile(flag)
}

// valueChainFlagFromConfigFile appends the user config file as a value
// source for the given flag, keyed by the flag's name.
func valueChainFlagFromConfigFile(flag *cli.StringFlag) *cli.StringFlag {
	if config.Config.Source == "" {
		return flag
	}

	src := yaml.YAML(flag.Name, altsrc.StringSourcer(config.Config.Source))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}

// nullPassDefault reads the permissive-null default from the user config.
// The documented default is true: a relationship never fails solely because
// a referenced parameter is absent.
func nullPassDefault() bool {
	v, err := config.GetBool("null-pass")
	if err != nil {
		return true
	}
	return v
}
