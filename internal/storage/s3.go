package storage

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	"github.com/somchaidev/activity-calendar/internal/compressor"
)

// RemoteConfig holds the remote object store settings. An empty Bucket
// means the backend is not configured and uploads run local-only.
type RemoteConfig struct {
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	Endpoint  string // optional, for S3-compatible services
}

// Configured reports whether a target container is set at all.
func (c RemoteConfig) Configured() bool { return c.Bucket != "" }

// RemoteStore stores uploads in an S3-compatible object container and
// grants each object public read access so the calendar UI can embed the
// URLs without authentication.
type RemoteStore struct {
	client    *s3.Client
	bucket    string
	publicURL string
	comp      compressor.Compressor
}

// NewRemoteStore builds the remote backend and probes it once. Callers
// use this per batch: a construction or probe error marks the backend
// unavailable for the whole batch, it is never retried per file.
func NewRemoteStore(ctx context.Context, cfg RemoteConfig, comp compressor.Compressor) (*RemoteStore, error) {
	if !cfg.Configured() {
		return nil, ErrNotConfigured
	}

	var opts []func(*awsconfig.LoadOptions) error
	opts = append(opts, awsconfig.WithRegion(cfg.Region))
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("remote storage unavailable: %w", err)
	}

	var client *s3.Client
	if cfg.Endpoint != "" {
		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true // required for MinIO and friends
		})
	} else {
		client = s3.NewFromConfig(awsCfg)
	}

	publicURL := cfg.Endpoint
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	} else {
		publicURL = strings.TrimSuffix(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}

	store := &RemoteStore{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: publicURL,
		comp:      comp,
	}

	// Availability probe: bad credentials or an unreachable container
	// surface here, before any file is attempted.
	probeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	_, err = client.HeadBucket(probeCtx, &s3.HeadBucketInput{Bucket: aws.String(cfg.Bucket)})
	if err != nil {
		return nil, fmt.Errorf("remote storage unavailable: %w", err)
	}

	return store, nil
}

// Save uploads the payload, grants it public read, and for images uploads
// an independent thumbnail object. Only the main upload can fail the
// call; grant and thumbnail problems are logged and the object stands.
// Keys are opaque handles without separator tokens: attachment ids from
// this backend must stay distinguishable from the local store's
// timestamp_name ids.
func (s *RemoteStore) Save(ctx context.Context, data []byte, filename, mimeType string) (*Object, error) {
	key := uuid.New().String()

	err := s.put(ctx, key, data, mimeType)
	if err != nil {
		return nil, &SaveError{Backend: "remote", Err: err}
	}
	s.grantPublicRead(ctx, key)

	obj := &Object{
		ID:           key,
		URL:          s.objectURL(key),
		ThumbnailURL: s.objectURL(key),
	}

	thumb, ok := s.comp.Thumbnail(data, mimeType)
	if ok {
		thumbKey := thumbPrefix + key
		err = s.put(ctx, thumbKey, thumb, "image/jpeg")
		if err != nil {
			slog.Warn("remote thumbnail upload failed", "key", thumbKey, "error", err)
		} else {
			s.grantPublicRead(ctx, thumbKey)
			obj.ThumbnailURL = s.objectURL(thumbKey)
		}
	}

	return obj, nil
}

// Delete removes the object and its thumbnail counterpart. Object
// deletion is idempotent on this backend, so missing keys never error.
func (s *RemoteStore) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(id),
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", id, err)
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(thumbPrefix + id),
	})
	if err != nil {
		slog.Warn("remote thumbnail delete failed", "key", thumbPrefix+id, "error", err)
	}

	return nil
}

func (s *RemoteStore) put(ctx context.Context, key string, data []byte, mimeType string) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mimeType),
	})
	return err
}

// grantPublicRead makes the object viewable without authentication. A
// failed grant leaves the object stored but possibly not viewable, which
// is preferable to failing the upload.
func (s *RemoteStore) grantPublicRead(ctx context.Context, key string) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := s.client.PutObjectAcl(ctx, &s3.PutObjectAclInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		ACL:    types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		slog.Warn("public-read grant failed", "key", key, "error", err)
	}
}

func (s *RemoteStore) objectURL(key string) string {
	return s.publicURL + "/" + key
}
