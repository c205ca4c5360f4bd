package utils

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// PutObject uploads body to the given bucket/key on the S3-compatible store.
func PutObject(s3Cli *s3.Client, ctx context.Context, bucket string, key string, body io.Reader, contentType string) error {

	_, err := s3Cli.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return err
	}

	return nil

}

// NewObjectKey builds a collision-free object key under prefix, keyed by the
// owning user so per-user cleanup stays a prefix listing.
func NewObjectKey(prefix string, ownerHex string, ext string) string {
	return fmt.Sprintf("%s/%s/%s%s", prefix, ownerHex, uuid.New().String(), ext)
}

// ImageExt maps the accepted image content types to a file extension.
// Anything else is rejected at the handler.
func ImageExt(contentType string) (string, bool) {
	switch contentType {
	case "image/jpeg":
		return ".jpg", true
	case "image/png":
		return ".png", true
	case "image/webp":
		return ".webp", true
	}
	return "", false
}
