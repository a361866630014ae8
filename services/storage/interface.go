package storage

import "context"

// UploadResult identifies an uploaded asset.
type UploadResult struct {
	URL      string
	PublicID string
}

// StorageService defines the interface for media storage operations.
// Uploads accept inline base64 data URIs or plain file paths/URLs, which is
// what the SPA submits for profile pictures and post media.
type StorageService interface {
	Upload(ctx context.Context, file, destFolder string) (*UploadResult, error)
	// Delete removes an asset. resourceType is "image" or "video"; the
	// empty string means image.
	Delete(ctx context.Context, publicID, resourceType string) error
}
