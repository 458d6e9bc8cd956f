package media

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/barberhub/barbershop-api/internal/config"
)

// Storage uploads processed images to an S3-compatible bucket. A nil
// Storage means uploads are not configured for this deployment.
type Storage struct {
	client  *s3.Client
	bucket  string
	region  string
	baseURL string
}

func NewStorage(cfg *config.Config) *Storage {
	if cfg.S3Bucket == "" {
		return nil
	}

	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey, cfg.S3SecretKey, "",
		),
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &Storage{
		client:  s3.New(opts),
		bucket:  cfg.S3Bucket,
		region:  cfg.S3Region,
		baseURL: strings.TrimSuffix(cfg.MediaBaseURL, "/"),
	}
}

func (s *Storage) Enabled() bool {
	return s != nil
}

// Upload stores one webp image under a fresh uuid key and returns the
// public URL.
func (s *Storage) Upload(ctx context.Context, data []byte) (string, error) {
	key := fmt.Sprintf("uploads/%s.webp", uuid.NewString())

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", err
	}

	if s.baseURL != "" {
		return s.baseURL + "/" + key, nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}
