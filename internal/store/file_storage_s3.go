// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/digiplay/dineo/internal/config"
	"github.com/digiplay/dineo/internal/logger"
)

// s3PutObjectAPI is the subset of the S3 client used by [S3FileStorage].
type s3PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3FileStorage stores uploads in an S3 bucket. A custom endpoint switches
// to path-style addressing for MinIO and similar services.
type S3FileStorage struct {
	client s3PutObjectAPI
	bucket string
	region string

	endpoint      string
	publicBaseURL string
	logger        *logger.Logger
}

// NewS3FileStorage builds the AWS client from cfg. Static credentials are
// used when both keys are set; otherwise the default AWS chain applies.
func NewS3FileStorage(ctx context.Context, cfg config.S3, log *logger.Logger) (*S3FileStorage, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewS3FileStorage").Msg("failed to load AWS config")
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var s3Opts []func(*s3.Options)
	if cfg.Endpoint != "" {
		ep := cfg.Endpoint
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = &ep
			o.UsePathStyle = true
		})
	}

	return newS3FileStorage(s3.NewFromConfig(awsCfg, s3Opts...), cfg, log), nil
}

func newS3FileStorage(client s3PutObjectAPI, cfg config.S3, log *logger.Logger) *S3FileStorage {
	return &S3FileStorage{
		client:        client,
		bucket:        cfg.Bucket,
		region:        cfg.Region,
		endpoint:      cfg.Endpoint,
		publicBaseURL: cfg.PublicBaseURL,
		logger:        log,
	}
}

// Put uploads data under key and returns its public URL.
func (s *S3FileStorage) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	if err := validateObjectKey(key); err != nil {
		return "", err
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*S3FileStorage.Put").
			Str("key", key).
			Msg("PutObject failed")
		return "", fmt.Errorf("s3 PutObject failed: %w", err)
	}

	return s.buildURL(key), nil
}

// buildURL prefers the configured public base URL, then the path-style
// endpoint URL, then the virtual-hosted AWS URL.
func (s *S3FileStorage) buildURL(key string) string {
	if s.publicBaseURL != "" {
		return joinURL(s.publicBaseURL, key)
	}
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.endpoint, "/"), s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

func joinURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(key, "/")
}
