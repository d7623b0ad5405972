package storage

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"imperium_store/internal/infrastructure/database"
	"imperium_store/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const defaultPresignExpiration = 15 * time.Minute

// S3ObjectStorage serves presigned upload URLs for product images. It works
// against AWS S3 or any S3-compatible backend (MinIO, LocalStack) via
// S3_ENDPOINT.
//
// Env vars:
//   - S3_BUCKET (required; storage disabled when empty)
//   - S3_ENDPOINT (optional, for local S3-compatible backends)
//   - S3_PUBLIC_BASE_URL (optional; defaults to the bucket's AWS URL)
type S3ObjectStorage struct {
	presign       *s3.PresignClient
	bucket        string
	publicBaseURL string
	expiration    time.Duration
}

var _ interfaces.IObjectStorage = (*S3ObjectStorage)(nil)

// NewS3ObjectStorageFromEnv returns nil (no error) when S3_BUCKET is unset so
// the API can run without a blob store; image uploads then answer 503.
func NewS3ObjectStorageFromEnv(ctx context.Context) (*S3ObjectStorage, error) {
	bucket := strings.TrimSpace(os.Getenv("S3_BUCKET"))
	if bucket == "" {
		log.Printf("[storage][s3] S3_BUCKET not set; image uploads disabled")
		return nil, nil
	}

	cfg, err := database.NewAWSConfigFromEnv(ctx)
	if err != nil {
		return nil, err
	}

	endpoint := strings.TrimSpace(os.Getenv("S3_ENDPOINT"))
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	publicBase := strings.TrimSpace(os.Getenv("S3_PUBLIC_BASE_URL"))
	if publicBase == "" {
		if endpoint != "" {
			publicBase = fmt.Sprintf("%s/%s", strings.TrimRight(endpoint, "/"), bucket)
		} else {
			publicBase = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, cfg.Region)
		}
	}

	log.Printf("[storage][s3] initialized bucket=%s", bucket)
	return &S3ObjectStorage{
		presign:       s3.NewPresignClient(client),
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBase, "/"),
		expiration:    defaultPresignExpiration,
	}, nil
}

func (s *S3ObjectStorage) GenerateUploadURL(ctx context.Context, key, contentType string) (string, string, error) {
	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(s.expiration))
	if err != nil {
		log.Printf("[storage][s3] presign failed key=%s err=%v", key, err)
		return "", "", err
	}

	publicURL := fmt.Sprintf("%s/%s", s.publicBaseURL, key)
	return req.URL, publicURL, nil
}
