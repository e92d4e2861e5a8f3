package backend

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/BruksfildServices01/optic-manager/internal/store"
)

type s3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Backend keeps each key as a JSON object <prefix><key>.json.
type S3Backend struct {
	client s3API
	bucket string
	prefix string
}

func NewS3Backend(client s3API, bucket, prefix string) *S3Backend {
	return &S3Backend{client: client, bucket: bucket, prefix: prefix}
}

func (b *S3Backend) objectKey(key string) string {
	return b.prefix + key + ".json"
}

func (b *S3Backend) Get(ctx context.Context, key string) (string, bool, error) {
	out, err := b.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(b.objectKey(key)),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return "", false, nil
		}
		return "", false, err
	}
	defer out.Body.Close()

	var sb strings.Builder
	if _, err := io.Copy(&sb, out.Body); err != nil {
		return "", false, err
	}
	return sb.String(), true, nil
}

func (b *S3Backend) Set(ctx context.Context, key, value string) error {
	_, err := b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(b.bucket),
		Key:         aws.String(b.objectKey(key)),
		Body:        bytes.NewReader([]byte(value)),
		ContentType: aws.String("application/json"),
	})
	return err
}

var _ store.Backend = (*S3Backend)(nil)
