// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for relcheck's user
// configuration. The configuration is expected to be a YAML document located
// in the user's configuration directory, typically:
//   - Linux/macOS: $XDG_CONFIG_HOME/relcheck.yaml or $HOME/.config/relcheck.yaml
//   - Windows: %APPDATA%/relcheck/relcheck.yaml
//
// Actual resolution relies on os.UserConfigDir which follows platform
// conventions. The RELCHECK_CFG_FILE environment variable overrides the
// location entirely.
package config
