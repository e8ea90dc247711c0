package services

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"time"

	appconfig "server/config"
	"server/internal/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// BlobStore persists raw upload bytes externally and returns a public URL.
type BlobStore interface {
	Enabled() bool
	Store(ctx context.Context, key, contentType string, data []byte) (string, error)
}

type S3BlobStore struct {
	client        *s3.Client
	bucket        string
	region        string
	publicBaseURL string
	log           logger.Logger
}

func NewBlobStore(ctx context.Context, config appconfig.Config) (*S3BlobStore, error) {
	log := logger.New("BlobStore")

	store := &S3BlobStore{
		bucket:        config.BlobBucket,
		region:        config.BlobRegion,
		publicBaseURL: config.BlobPublicBaseURL,
		log:           log,
	}

	if config.BlobBucket == "" {
		log.Info("No blob bucket configured, uploads disabled")
		return store, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(config.BlobRegion),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(config.BlobAccessKey, config.BlobSecretKey, ""),
		),
	)
	if err != nil {
		return nil, log.Err("failed to load blob store credentials", err)
	}

	store.client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if config.BlobEndpoint != "" {
			o.BaseEndpoint = aws.String(config.BlobEndpoint)
			o.UsePathStyle = true
		}
	})

	return store, nil
}

func (s *S3BlobStore) Enabled() bool {
	return s.client != nil
}

func (s *S3BlobStore) Store(ctx context.Context, key, contentType string, data []byte) (string, error) {
	log := s.log.Function("Store")

	if s.client == nil {
		return "", log.ErrMsg("blob store is not configured")
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", log.Err("failed to store blob", err, "key", key)
	}

	if s.publicBaseURL != "" {
		return fmt.Sprintf("%s/%s", s.publicBaseURL, key), nil
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9.]`)

// BuildBlobKey derives a path-safe storage key from the upload target, the
// current time, and the sanitized original filename.
func BuildBlobKey(target, filename string, now time.Time) string {
	safeTarget := unsafeKeyChars.ReplaceAllString(target, "-")
	safeName := unsafeKeyChars.ReplaceAllString(filename, "-")
	return fmt.Sprintf("%s/%d-%s", safeTarget, now.UnixMilli(), safeName)
}
