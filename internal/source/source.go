// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/dustin/go-humanize"

	"github.com/relcheck/relcheck/internal/awsx"
	"github.com/relcheck/relcheck/internal/log"
)

// ErrNotExist reports that the named document does not exist, whether the
// path was local or remote.
var ErrNotExist = errors.New("document does not exist")

const s3Scheme = "s3://"

// IsRemote reports whether the path names an S3 object rather than a local
// file.
func IsRemote(path string) bool {
	return strings.HasPrefix(path, s3Scheme)
}

// Fetch reads the raw bytes behind path. A missing local file or S3 object
// is reported as an error wrapping ErrNotExist.
func Fetch(ctx context.Context, path string) ([]byte, error) {
	if IsRemote(path) {
		return fetchS3(ctx, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotExist, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	log.Debugf("read %s (%s)", path, humanize.Bytes(uint64(len(data))))
	return data, nil
}

// splitS3 splits an s3://bucket/key URI into bucket and key.
func splitS3(path string) (bucket string, key string, err error) {
	rest := strings.TrimPrefix(path, s3Scheme)
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid S3 URI %q, expected s3://bucket/key", path)
	}
	return parts[0], parts[1], nil
}

func fetchS3(ctx context.Context, path string) ([]byte, error) {
	bucket, key, err := splitS3(path)
	if err != nil {
		return nil, err
	}

	cfg, err := awsx.LoadAWSConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	svc := awsx.NewS3(cfg)
	result, err := svc.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		var noSuchBucket *types.NoSuchBucket
		if errors.As(err, &noSuchKey) || errors.As(err, &noSuchBucket) {
			return nil, fmt.Errorf("%w: %s", ErrNotExist, path)
		}
		return nil, fmt.Errorf("failed to get S3 object %s: %w", path, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read S3 object body %s: %w", path, err)
	}

	log.Debugf("fetched %s (%s)", path, humanize.Bytes(uint64(len(data))))
	return data, nil
}
