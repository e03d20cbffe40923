// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package source

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

func TestIsRemote(t *testing.T) {
	assert.True(t, IsRemote("s3://bucket/key.yaml"))
	assert.False(t, IsRemote("/etc/deploy/svc.yaml"))
	assert.False(t, IsRemote("svc.yaml"))
}

func TestFetchLocal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "svc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 8080\n"), 0o644))

	data, err := Fetch(ctx, path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "8080")
}

func TestFetchLocalMissing(t *testing.T) {
	_, err := Fetch(ctx, filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotExist))
}

func TestSplitS3(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		bucket  string
		key     string
		wantErr bool
	}{
		{name: "simple", uri: "s3://bucket/key.yaml", bucket: "bucket", key: "key.yaml"},
		{name: "nested key", uri: "s3://bucket/configs/prod/gw.json", bucket: "bucket", key: "configs/prod/gw.json"},
		{name: "missing key", uri: "s3://bucket", wantErr: true},
		{name: "missing bucket", uri: "s3:///key.yaml", wantErr: true},
		{name: "empty key", uri: "s3://bucket/", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, key, err := splitS3(tt.uri)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.bucket, bucket)
			assert.Equal(t, tt.key, key)
		})
	}
}
