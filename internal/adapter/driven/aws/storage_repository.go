package aws

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/diillson/aws-billing-report-go/internal/domain/repository"
	"github.com/diillson/aws-billing-report-go/internal/shared/types"
	"github.com/rs/zerolog"
)

// StorageRepositoryImpl implementa o StorageRepository sobre o S3.
type StorageRepositoryImpl struct {
	client    *s3.Client
	bucket    string
	keyPrefix string
	logger    zerolog.Logger
}

// NewStorageRepository cria uma nova implementação do StorageRepository.
func NewStorageRepository(cfg aws.Config, bucket, keyPrefix string, logger zerolog.Logger) repository.StorageRepository {
	return &StorageRepositoryImpl{
		client:    s3.NewFromConfig(cfg),
		bucket:    bucket,
		keyPrefix: keyPrefix,
		logger:    logger,
	}
}

// PutReport grava o relatório em uma pasta mensal
// (<prefix>/<YYYY-MM>/<filename>) e retorna a URL do objeto.
func (r *StorageRepositoryImpl) PutReport(ctx context.Context, data []byte, filename string) (string, error) {
	if r.bucket == "" {
		return "", types.ErrNoBucketConfigured
	}

	monthFolder := time.Now().UTC().Format("2006-01")
	key := fmt.Sprintf("%s/%s/%s", r.keyPrefix, monthFolder, filename)

	r.logger.Info().Str("bucket", r.bucket).Str("key", key).Msg("uploading report to S3")

	_, err := r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload report to S3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", r.bucket, key), nil
}
