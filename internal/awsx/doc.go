// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package awsx wraps AWS SDK v2 config loading and S3 client construction.
// By default the shell's AWS setup is inherited (AWS_PROFILE, shared config,
// env, IMDS); options can override profile and region without changing
// callers.
package awsx
