package minio

import (
	"Clipstream/internal/api/config"
	"context"
	"fmt"
	"net/url"
	"time"
)

// PresignUploadURL 为客户端签发一个限时的直传 URL
func PresignUploadURL(ctx context.Context, objectName string, expires time.Duration) (string, error) {
	if Client == nil {
		return "", fmt.Errorf("minio client is not initialized")
	}

	presigned, err := Client.PresignedPutObject(ctx, MainBucket, objectName, expires)
	if err != nil {
		return "", fmt.Errorf("failed to presign upload url: %w", err)
	}
	return presigned.String(), nil
}

// GetPublicURL 获取文件的公共访问URL
func GetPublicURL(objectName string) string {
	cfg := config.Cfg.MinIO

	publicURL := url.URL{
		Scheme: "https",
		Host:   cfg.ExternalEndpoint,
		Path:   fmt.Sprintf("/%s/%s", MainBucket, objectName),
	}
	return publicURL.String()
}
