package interfaces

import "context"

// IObjectStorage abstracts the blob store holding product images.
//
// GenerateUploadURL returns a presigned PUT URL for the back office to upload
// an image directly, plus the public URL the stored object will have.
type IObjectStorage interface {
	GenerateUploadURL(ctx context.Context, key, contentType string) (uploadURL string, publicURL string, err error)
}
