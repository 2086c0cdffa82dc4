package storage

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// imageContentTypes lists accepted image formats.
var imageContentTypes = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"webp": "image/webp",
}

// ImageContentType returns the MIME type for an image format.
func ImageContentType(format string) (string, bool) {
	ct, ok := imageContentTypes[strings.ToLower(format)]
	return ct, ok
}

// ImageKey generates a unique object key for a movie image.
func ImageKey(movieID, format string) string {
	return fmt.Sprintf("movies/%s/%s.%s", movieID, uuid.NewString(), strings.ToLower(format))
}

// IsExternalURL reports whether an image path is already an absolute http(s) URL.
func IsExternalURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}
