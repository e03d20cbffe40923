// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

func TestLogLevelValidator(t *testing.T) {
	for _, valid := range []string{"trace", "debug", "info", "warning", "error", "critical", "DEBUG"} {
		assert.NoError(t, LogLevelValidator(valid), valid)
	}
	assert.Error(t, LogLevelValidator("verbose"))
	assert.Error(t, LogLevelValidator(42))
}

func TestInitApp(t *testing.T) {
	app, err := InitApp(ctx, []string{"relcheck"})
	require.NoError(t, err)

	assert.Equal(t, "relcheck", app.Name)

	names := make(map[string]bool)
	for _, f := range app.Flags {
		names[f.Names()[0]] = true
	}
	assert.True(t, names["relationships"])
	assert.True(t, names["log-level"])
	assert.True(t, names["null-pass"])
	assert.True(t, names["color"])
}

// End-to-end through the CLI: matching ports validate cleanly.
func TestAppRunPasses(t *testing.T) {
	dir := t.TempDir()
	svc := filepath.Join(dir, "svc.yaml")
	gw := filepath.Join(dir, "gw.json")
	rels := filepath.Join(dir, "rels.json")
	require.NoError(t, os.WriteFile(svc, []byte("server:\n  port: 8080\n"), 0o644))
	require.NoError(t, os.WriteFile(gw, []byte(`{"upstream": {"port": 8080}}`), 0o644))
	require.NoError(t, os.WriteFile(rels, []byte(`[
		{"source_file": "svc.yaml", "source_param": "server.port",
		 "target_file": "gw.json", "target_param": "upstream.port"}
	]`), 0o644))

	app, err := InitApp(ctx, []string{"relcheck"})
	require.NoError(t, err)

	err = app.Run(ctx, []string{"relcheck", "--relationships", rels, svc, gw})
	assert.NoError(t, err)
}

func TestAppRunFailureMapsToValidationError(t *testing.T) {
	dir := t.TempDir()
	svc := filepath.Join(dir, "svc.yaml")
	gw := filepath.Join(dir, "gw.json")
	rels := filepath.Join(dir, "rels.json")
	require.NoError(t, os.WriteFile(svc, []byte("server:\n  port: 8080\n"), 0o644))
	require.NoError(t, os.WriteFile(gw, []byte(`{"upstream": {"port": 9090}}`), 0o644))
	require.NoError(t, os.WriteFile(rels, []byte(`[
		{"source_file": "svc.yaml", "source_param": "server.port",
		 "target_file": "gw.json", "target_param": "upstream.port"}
	]`), 0o644))

	app, err := InitApp(ctx, []string{"relcheck"})
	require.NoError(t, err)

	err = app.Run(ctx, []string{"relcheck", "--relationships", rels, svc, gw})
	assert.True(t, errors.Is(err, ErrValidationFailed))
}

func TestAppRunRequiresConfigFiles(t *testing.T) {
	dir := t.TempDir()
	rels := filepath.Join(dir, "rels.json")
	require.NoError(t, os.WriteFile(rels, []byte(`[]`), 0o644))

	app, err := InitApp(ctx, []string{"relcheck"})
	require.NoError(t, err)

	err = app.Run(ctx, []string{"relcheck", "--relationships", rels})
	assert.Error(t, err)
}
