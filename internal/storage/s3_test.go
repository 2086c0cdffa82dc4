package storage

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *S3Client {
	t.Helper()
	client, err := NewS3Client(context.Background(), S3Config{
		Endpoint:  "localhost:9000",
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
		Bucket:    "movie-images",
	})
	require.NoError(t, err)
	return client
}

func TestNewS3Client(t *testing.T) {
	client := newTestClient(t)

	assert.Equal(t, "movie-images", client.Bucket())
}

func TestS3Client_GetPresignedURL(t *testing.T) {
	client := newTestClient(t)

	raw, err := client.GetPresignedURL(context.Background(), "movies/abc/poster.jpg", 15*time.Minute)

	require.NoError(t, err)
	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "http", u.Scheme)
	assert.Equal(t, "localhost:9000", u.Host)
	assert.Equal(t, "/movie-images/movies/abc/poster.jpg", u.Path)
	assert.Equal(t, "900", u.Query().Get("X-Amz-Expires"))
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
}

func TestS3Client_GetPresignedPutURL(t *testing.T) {
	client := newTestClient(t)

	raw, err := client.GetPresignedPutURL(context.Background(), "movies/abc/poster.png", "image/png", time.Hour)

	require.NoError(t, err)
	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "/movie-images/movies/abc/poster.png", u.Path)
	assert.Equal(t, "3600", u.Query().Get("X-Amz-Expires"))
	assert.Contains(t, u.Query().Get("X-Amz-SignedHeaders"), "content-type")
}

func TestImageContentType(t *testing.T) {
	tests := []struct {
		format   string
		expected string
		ok       bool
	}{
		{"jpg", "image/jpeg", true},
		{"JPEG", "image/jpeg", true},
		{"png", "image/png", true},
		{"webp", "image/webp", true},
		{"gif", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			ct, ok := ImageContentType(tt.format)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, ct)
		})
	}
}

func TestImageKey(t *testing.T) {
	key1 := ImageKey("507f1f77bcf86cd799439011", "JPG")
	key2 := ImageKey("507f1f77bcf86cd799439011", "jpg")

	assert.Regexp(t, `^movies/507f1f77bcf86cd799439011/[0-9a-f-]{36}\.jpg$`, key1)
	assert.NotEqual(t, key1, key2)
}

func TestIsExternalURL(t *testing.T) {
	assert.True(t, IsExternalURL("https://example.com/matrix.jpg"))
	assert.True(t, IsExternalURL("http://example.com/matrix.jpg"))
	assert.False(t, IsExternalURL("movies/abc/poster.jpg"))
	assert.False(t, IsExternalURL(""))
}
