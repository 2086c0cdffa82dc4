//go:build api

package testdb

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	MinIOAccessKey = "minioadmin"
	MinIOSecretKey = "minioadmin"
	// MinIOBucket holds uploaded movie images during tests.
	MinIOBucket = "test-movie-images"
)

// ImageBucket is a MinIO container standing in for the S3 bucket of movie images.
type ImageBucket struct {
	Container testcontainers.Container
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Client    *s3.Client
}

// SetupMinIO starts MinIO and creates the image bucket.
func SetupMinIO(ctx context.Context) (_ *ImageBucket, err error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "minio/minio:latest",
			ExposedPorts: []string{"9000/tcp"},
			Env: map[string]string{
				"MINIO_ROOT_USER":     MinIOAccessKey,
				"MINIO_ROOT_PASSWORD": MinIOSecretKey,
			},
			Cmd:        []string{"server", "/data"},
			WaitingFor: wait.ForHTTP("/minio/health/ready").WithPort("9000/tcp"),
		},
		Started: true,
	})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = container.Terminate(context.Background())
		}
	}()

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion("us-east-1"),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(MinIOAccessKey, MinIOSecretKey, "")),
	)
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String("http://" + endpoint)
		o.UsePathStyle = true
	})

	if _, err := client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(MinIOBucket)}); err != nil {
		return nil, err
	}

	return &ImageBucket{
		Container: container,
		Endpoint:  endpoint,
		AccessKey: MinIOAccessKey,
		SecretKey: MinIOSecretKey,
		Bucket:    MinIOBucket,
		Client:    client,
	}, nil
}

// Cleanup terminates the container.
func (b *ImageBucket) Cleanup(ctx context.Context) error {
	if b.Container == nil {
		return nil
	}
	return b.Container.Terminate(ctx)
}

// ClearBucket deletes every stored image, page by page.
func (b *ImageBucket) ClearBucket(ctx context.Context) error {
	pages := s3.NewListObjectsV2Paginator(b.Client, &s3.ListObjectsV2Input{Bucket: aws.String(b.Bucket)})
	for pages.HasMorePages() {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return err
		}
		if len(page.Contents) == 0 {
			continue
		}

		keys := make([]types.ObjectIdentifier, len(page.Contents))
		for i, obj := range page.Contents {
			keys[i] = types.ObjectIdentifier{Key: obj.Key}
		}
		if _, err := b.Client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(b.Bucket),
			Delete: &types.Delete{Objects: keys, Quiet: aws.Bool(true)},
		}); err != nil {
			return err
		}
	}
	return nil
}

// ObjectExists reports whether an image key is stored. Errors other than a
// missing key count as present.
func (b *ImageBucket) ObjectExists(ctx context.Context, key string) bool {
	_, err := b.Client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(b.Bucket),
		Key:    aws.String(key),
	})
	var notFound *types.NotFound
	return err == nil || !errors.As(err, &notFound)
}

// Upload PUTs body to a pre-signed URL the way a client uploads a movie image.
func (b *ImageBucket) Upload(ctx context.Context, presignedURL, contentType string, body []byte) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, presignedURL, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}
