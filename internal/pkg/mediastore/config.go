package mediastore

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wifey-app/wifey-api/internal/pkg/env"
)

// Config holds object storage configuration for media uploads
type Config struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	BucketName      string
	EndpointURL     string // Optional for S3-compatible services
	PublicBaseURL   string // Optional CDN/base URL for served objects
	Enabled         bool
}

// LoadConfig loads media storage configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{
		AccessKeyID:     env.GetEnv("MEDIA_S3_ACCESS_KEY_ID", ""),
		SecretAccessKey: env.GetEnv("MEDIA_S3_SECRET_ACCESS_KEY", ""),
		Region:          env.GetEnv("MEDIA_S3_REGION", "us-east-1"),
		BucketName:      env.GetEnv("MEDIA_S3_BUCKET_NAME", ""),
		EndpointURL:     env.GetEnv("MEDIA_S3_ENDPOINT_URL", ""),
		PublicBaseURL:   env.GetEnv("MEDIA_PUBLIC_BASE_URL", ""),
		Enabled:         env.GetEnv("MEDIA_UPLOADS_ENABLED", "false") == "true",
	}

	if config.Enabled {
		if config.AccessKeyID == "" {
			return nil, errors.New("MEDIA_S3_ACCESS_KEY_ID is required when media uploads are enabled")
		}
		if config.SecretAccessKey == "" {
			return nil, errors.New("MEDIA_S3_SECRET_ACCESS_KEY is required when media uploads are enabled")
		}
		if config.BucketName == "" {
			return nil, errors.New("MEDIA_S3_BUCKET_NAME is required when media uploads are enabled")
		}
	}

	return config, nil
}

// IsEnabled returns true if media uploads are enabled
func (c *Config) IsEnabled() bool {
	return c.Enabled
}

// ObjectURL returns the public URL for a stored object key.
func (c *Config) ObjectURL(key string) string {
	if c.PublicBaseURL != "" {
		return strings.TrimRight(c.PublicBaseURL, "/") + "/" + key
	}
	if c.EndpointURL != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(c.EndpointURL, "/"), c.BucketName, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.BucketName, c.Region, key)
}
