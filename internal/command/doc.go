// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command builds the relcheck CLI: the check command that validates
// declared relationships across configuration files, its flags, and their
// validators. Flag defaults chain through environment variables and the
// user configuration file.
package command
