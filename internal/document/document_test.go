// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package document

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

// writeFile drops content into a temp dir and returns the full path.
func writeFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    Format
		wantErr bool
	}{
		{name: "yaml extension", path: "svc.yaml", want: FormatYAML},
		{name: "yml extension", path: "svc.yml", want: FormatYAML},
		{name: "json extension", path: "gw.json", want: FormatJSON},
		{name: "uppercase extension rejected", path: "svc.YAML", wantErr: true},
		{name: "toml rejected", path: "svc.toml", wantErr: true},
		{name: "no extension rejected", path: "Makefile", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFormat(tt.path)
			if tt.wantErr {
				var unsupported *UnsupportedFormatError
				require.Error(t, err)
				assert.True(t, errors.As(err, &unsupported))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestID(t *testing.T) {
	assert.Equal(t, "svc.yaml", ID("/etc/deploy/svc.yaml"))
	assert.Equal(t, "svc.yaml", ID("svc.yaml"))
	assert.Equal(t, "gw.json", ID("s3://my-bucket/configs/gw.json"))
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "svc.yaml", "server:\n  port: 8080\n  name: api\n")

	doc, err := Load(ctx, path)
	require.NoError(t, err)

	assert.Equal(t, "svc.yaml", doc.ID)
	assert.Equal(t, FormatYAML, doc.Format)
	assert.Equal(t, int64(8080), doc.Root.Get("server.port").Int())
	assert.Equal(t, "api", doc.Root.Get("server.name").String())
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "gw.json", `{"upstream": {"port": 8080, "tls": true}}`)

	doc, err := Load(ctx, path)
	require.NoError(t, err)

	assert.Equal(t, "gw.json", doc.ID)
	assert.Equal(t, FormatJSON, doc.Format)
	assert.Equal(t, int64(8080), doc.Root.Get("upstream.port").Int())
	assert.True(t, doc.Root.Get("upstream.tls").Bool())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(ctx, filepath.Join(t.TempDir(), "absent.yaml"))

	var notFound *NotFoundError
	require.Error(t, err)
	assert.True(t, errors.As(err, &notFound))
}

func TestLoadInvalidSyntax(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "broken yaml", file: "bad.yaml", content: "a: [1, 2\nb: }"},
		{name: "broken json", file: "bad.json", content: `{"a": 1,}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)

			_, err := Load(ctx, path)

			var formatErr *FormatError
			require.Error(t, err)
			require.True(t, errors.As(err, &formatErr))
			// The parser's native message is carried for diagnostics.
			assert.NotNil(t, formatErr.Err)
			assert.Contains(t, err.Error(), path)
		})
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeFile(t, "cfg.toml", "a = 1\n")

	_, err := Load(ctx, path)

	var unsupported *UnsupportedFormatError
	require.Error(t, err)
	assert.True(t, errors.As(err, &unsupported))
}

func TestLoadEmptyYAMLIsNullTree(t *testing.T) {
	path := writeFile(t, "empty.yaml", "")

	doc, err := Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "null", string(doc.JSON))
}

func TestNewSet(t *testing.T) {
	dir := t.TempDir()
	svc := filepath.Join(dir, "svc.yaml")
	gw := filepath.Join(dir, "gw.json")
	require.NoError(t, os.WriteFile(svc, []byte("server:\n  port: 8080\n"), 0o644))
	require.NoError(t, os.WriteFile(gw, []byte(`{"upstream": {"port": 8080}}`), 0o644))

	set, err := NewSet(ctx, []string{svc, gw})
	require.NoError(t, err)
	require.Len(t, set, 2)
	assert.Contains(t, set, "svc.yaml")
	assert.Contains(t, set, "gw.json")
}

func TestNewSetFailFast(t *testing.T) {
	dir := t.TempDir()
	svc := filepath.Join(dir, "svc.yaml")
	require.NoError(t, os.WriteFile(svc, []byte("server:\n  port: 8080\n"), 0o644))

	set, err := NewSet(ctx, []string{svc, filepath.Join(dir, "absent.json")})

	require.Error(t, err)
	assert.Nil(t, set, "no partial set may be returned")
}

func TestNewSetRejectsDuplicateIDs(t *testing.T) {
	dirA, dirB := t.TempDir(), t.TempDir()
	a := filepath.Join(dirA, "svc.yaml")
	b := filepath.Join(dirB, "svc.yaml")
	require.NoError(t, os.WriteFile(a, []byte("x: 1\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("x: 2\n"), 0o644))

	_, err := NewSet(ctx, []string{a, b})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate document identifier")
}
