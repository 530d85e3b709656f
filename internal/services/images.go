package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"sort"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/ivylu/wanderlog-api/internal/config"
)

// ImageInfo describes one stored image for the admin picker.
type ImageInfo struct {
	ObjectName string    `json:"object_name"`
	URL        string    `json:"url"`
	Size       int64     `json:"size"`
	CreatedAt  time.Time `json:"created_at"`
}

// ImageService wraps the object store holding uploaded images, organized
// by folder prefix (travelogues/, daily-life/).
type ImageService struct {
	client   *minio.Client
	bucket   string
	endpoint string
	useSSL   bool
}

func NewImageService(cfg *config.Config) (*ImageService, error) {
	client, err := minio.New(cfg.MinIOEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
		Secure: cfg.MinIOUseSSL,
	})
	if err != nil {
		return nil, err
	}

	// Ensure bucket exists
	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.MinIOBucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		err = client.MakeBucket(ctx, cfg.MinIOBucket, minio.MakeBucketOptions{})
		if err != nil {
			return nil, err
		}
	}

	return &ImageService{
		client:   client,
		bucket:   cfg.MinIOBucket,
		endpoint: cfg.MinIOEndpoint,
		useSSL:   cfg.MinIOUseSSL,
	}, nil
}

// Upload stores an image under folder/ and returns its object name and
// public URL.
func (s *ImageService) Upload(ctx context.Context, file multipart.File, folder, filename string, size int64, contentType string) (string, string, error) {
	objectName := folder + "/" + filename
	_, err := s.client.PutObject(ctx, s.bucket, objectName, file, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", "", err
	}
	return objectName, s.objectURL(objectName), nil
}

// List returns the images under folder/, newest first.
func (s *ImageService) List(ctx context.Context, folder string) ([]ImageInfo, error) {
	prefix := strings.TrimSuffix(folder, "/") + "/"

	var images []ImageInfo
	for object := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if object.Err != nil {
			return nil, object.Err
		}
		images = append(images, ImageInfo{
			ObjectName: object.Key,
			URL:        s.objectURL(object.Key),
			Size:       object.Size,
			CreatedAt:  object.LastModified,
		})
	}

	sort.Slice(images, func(i, j int) bool {
		return images[i].CreatedAt.After(images[j].CreatedAt)
	})
	return images, nil
}

// Delete removes an image by object name.
func (s *ImageService) Delete(ctx context.Context, objectName string) error {
	return s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{})
}

func (s *ImageService) objectURL(objectName string) string {
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucket, objectName)
}
