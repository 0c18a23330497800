package imagehost

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/google/uuid"
	"github.com/threads-be/threads/shared/config"
	"github.com/threads-be/threads/shared/logger"
)

// S3Host publishes images to an S3-compatible bucket with public-read ACL.
type S3Host struct {
	bucket   string
	folder   string
	baseURL  string
	uploader *s3manager.Uploader
}

func New(cfg *config.Config) (*S3Host, error) {
	hostCfg := cfg.Public.ImageHost
	awsCfg := &aws.Config{
		Region:           aws.String(hostCfg.Region),
		S3ForcePathStyle: aws.Bool(hostCfg.PathStyle),
	}
	if hostCfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(hostCfg.Endpoint)
	}
	// Without configured keys the SDK's default credential chain applies.
	creds := cfg.Private.ImageHost
	if creds.AccessKeyID != "" {
		awsCfg.Credentials = credentials.NewStaticCredentials(creds.AccessKeyID, creds.SecretAccessKey, "")
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create aws session: %w", err)
	}

	return &S3Host{
		bucket:   hostCfg.Bucket,
		folder:   strings.Trim(hostCfg.Folder, "/"),
		baseURL:  strings.TrimRight(hostCfg.PublicBaseURL, "/"),
		uploader: s3manager.NewUploader(sess),
	}, nil
}

// Upload stores body under a fresh key and returns its public URL.
// filename only contributes its extension.
func (h *S3Host) Upload(ctx context.Context, filename string, body io.Reader) (string, error) {
	key := objectKey(h.folder, filename)
	input := &s3manager.UploadInput{
		ACL:    aws.String("public-read"),
		Bucket: aws.String(h.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType := mime.TypeByExtension(filepath.Ext(filename)); contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := h.uploader.UploadWithContext(ctx, input); err != nil {
		uploadsTotal.WithLabelValues(outcomeFailure).Inc()
		return "", fmt.Errorf("failed to upload %s to bucket %s: %w", key, h.bucket, err)
	}
	uploadsTotal.WithLabelValues(outcomeSuccess).Inc()

	url := h.baseURL + "/" + key
	logger.Log.WithField("url", url).Debug("image uploaded")
	return url, nil
}

// Owns reports whether url points at an object served by this host.
func (h *S3Host) Owns(url string) bool {
	return ownedBy(h.baseURL, url)
}

func objectKey(folder, filename string) string {
	key := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	if folder == "" {
		return key
	}
	return path.Join(folder, key)
}

func ownedBy(baseURL, url string) bool {
	prefix := baseURL + "/"
	return strings.HasPrefix(url, prefix) && len(url) > len(prefix)
}
