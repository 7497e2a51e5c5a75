package s3

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"vidstream/pkg/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

type Client struct {
	api    s3iface.S3API
	bucket string
}

func NewClient(cfg *config.Config) (*Client, error) {
	awsConfig := &aws.Config{
		Region: aws.String(cfg.AWSRegion),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		),
	}

	// MinIO in local development
	if cfg.AWSEndpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.AWSEndpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
		if cfg.S3UseSSL == "false" {
			awsConfig.DisableSSL = aws.Bool(true)
		}
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return NewClientWithAPI(s3.New(sess), cfg.S3BucketName), nil
}

// NewClientWithAPI wraps an existing S3 API implementation.
func NewClientWithAPI(api s3iface.S3API, bucket string) *Client {
	return &Client{api: api, bucket: bucket}
}

func (c *Client) Bucket() string {
	return c.bucket
}

// EnsureBucket creates the bucket when HeadBucket cannot see it.
func (c *Client) EnsureBucket(ctx context.Context) error {
	if _, err := c.api.HeadBucketWithContext(ctx, &s3.HeadBucketInput{Bucket: aws.String(c.bucket)}); err == nil {
		return nil
	}
	_, err := c.api.CreateBucketWithContext(ctx, &s3.CreateBucketInput{Bucket: aws.String(c.bucket)})
	if err != nil && !strings.Contains(err.Error(), s3.ErrCodeBucketAlreadyOwnedByYou) {
		return fmt.Errorf("failed to create bucket %s: %w", c.bucket, err)
	}
	return nil
}

// PutJSON stores body under key and returns the s3:// location of the object.
func (c *Client) PutJSON(ctx context.Context, key string, body []byte) (string, error) {
	_, err := c.api.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to S3: %w", key, err)
	}
	return fmt.Sprintf("s3://%s/%s", c.bucket, key), nil
}
