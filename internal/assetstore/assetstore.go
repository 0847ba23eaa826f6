package assetstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	storage_go "github.com/supabase-community/storage-go"
	supa "github.com/supabase-community/supabase-go"
)

// UploadResult references an object in the asset store. ObjectID is the path
// relative to the bucket; URL is the public retrieval URL.
type UploadResult struct {
	ObjectID string `json:"object_id"`
	URL      string `json:"url"`
}

// Client wraps supabase storage as the binary-object store for uploaded
// assets. Objects are grouped under a namespace folder within one bucket.
type Client struct {
	storage *storage_go.Client
	baseURL string
	bucket  string
	logger  *logrus.Logger
}

// NewClient creates an asset store client on top of an initialized supabase client.
func NewClient(supabase *supa.Client, baseURL, bucket string, logger *logrus.Logger) *Client {
	return &Client{
		storage: supabase.Storage,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		bucket:  bucket,
		logger:  logger,
	}
}

// Upload stores the file staged at localPath under the given namespace and
// returns its object id and public URL. The object name is a fresh UUID with
// the original extension so names never collide in storage.
func (c *Client) Upload(ctx context.Context, localPath, namespace string) (*UploadResult, error) {
	file, err := os.Open(localPath)
	if err != nil {
		return nil, fmt.Errorf("opening staged file %s: %w", localPath, err)
	}
	defer file.Close()

	ext := filepath.Ext(localPath)
	objectID := fmt.Sprintf("%s/%s%s", namespace, uuid.NewString(), ext)
	contentType := contentTypeForExtension(ext)

	c.logger.Infof("Uploading asset to bucket '%s', path '%s'", c.bucket, objectID)
	_, err = c.storage.UploadFile(c.bucket, objectID, file, storage_go.FileOptions{
		ContentType: &contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("uploading %s to bucket %s: %w", objectID, c.bucket, err)
	}

	return &UploadResult{
		ObjectID: objectID,
		URL:      c.publicURL(objectID),
	}, nil
}

// Destroy removes the object from storage. Callers must treat a failure here
// as fatal for the surrounding operation unless they explicitly choose to
// log-and-continue.
func (c *Client) Destroy(ctx context.Context, objectID string) error {
	c.logger.Infof("Removing asset from bucket '%s', path '%s'", c.bucket, objectID)
	if _, err := c.storage.RemoveFile(c.bucket, []string{objectID}); err != nil {
		return fmt.Errorf("removing %s from bucket %s: %w", objectID, c.bucket, err)
	}
	return nil
}

// publicURL builds the public object URL the same way the storage API exposes
// it, so records stay valid even if the storage client changes URL helpers.
func (c *Client) publicURL(objectID string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, c.bucket, objectID)
}

func contentTypeForExtension(ext string) string {
	switch strings.ToLower(ext) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	case ".svg":
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}
