package storage

import (
	"context"
	"io"
	"time"
)

// Default expiry duration for presigned URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

// MediaStorage defines the interface for object storage operations backing
// post photos and avatars.
type MediaStorage interface {
	// UploadPostImage stores a post photo under the user's key prefix and
	// returns its public URL. Each upload gets a fresh key.
	UploadPostImage(ctx context.Context, userID string, body io.Reader, contentType string) (string, error)

	// UploadAvatar stores a user's avatar at a fixed per-user key, overwriting
	// any previous one, and returns its public URL. The URL carries a
	// cache-busting query so clients pick up the new image.
	UploadAvatar(ctx context.Context, userID string, body io.Reader, contentType string) (string, error)

	// GeneratePresignedDownloadURL creates a temporary URL that allows GET
	// requests for an object directly from the storage provider.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	// DeleteObject removes an object from the storage provider.
	DeleteObject(ctx context.Context, objectKey string) error
}
