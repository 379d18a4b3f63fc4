package storage

import "context"

// StorageService abstracts the blob store holding profile photos.
type StorageService interface {
	// UploadFile uploads a local file into the destination folder and
	// returns the permanent identifier assigned by the store.
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	// DeleteFile removes a file by its public identifier.
	DeleteFile(ctx context.Context, publicID string) error
	// GetDownloadURL constructs the delivery URL for an uploaded file.
	GetDownloadURL(ctx context.Context, publicID string) (string, error)
}
