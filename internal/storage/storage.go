// Package storage persists the blog snapshot: the full post collection
// serialized as one JSON document, written wholesale and read wholesale.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/fardannozami/portfolio/internal/config"
	"github.com/fardannozami/portfolio/internal/model"
)

// Store is the snapshot contract shared by all backends. Save replaces
// any prior snapshot and returns the durable address of the written
// document. Load returns an error on any failure; callers degrade to an
// empty collection.
type Store interface {
	Save(ctx context.Context, posts []model.Post) (string, error)
	Load(ctx context.Context) ([]model.Post, error)
}

// New selects the backend from config. The choice is a deployment
// concern; both backends satisfy the same contract.
func New(cfg *config.Config) (Store, error) {
	switch cfg.StorageDriver {
	case "s3":
		return NewS3Store(S3Config{
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Endpoint:  cfg.S3Endpoint,
			Key:       cfg.SnapshotKey,
		})
	case "local":
		return NewLocalStore(cfg.LocalStoragePath, cfg.SnapshotKey), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// encodeSnapshot serializes the collection pretty-printed, matching the
// snapshot wire format.
func encodeSnapshot(posts []model.Post) ([]byte, error) {
	if posts == nil {
		posts = []model.Post{}
	}
	data, err := json.MarshalIndent(posts, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// decodeSnapshot parses and validates a snapshot document. Records that
// fail validation are dropped with a warning rather than propagated
// half-formed, so a corrupt entry cannot leak empty fields downstream.
func decodeSnapshot(data []byte) ([]model.Post, error) {
	var raw []model.Post
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	posts := make([]model.Post, 0, len(raw))
	for _, post := range raw {
		err := post.Validate()
		if err != nil {
			slog.Warn("storage: dropping invalid snapshot record", "slug", post.Slug, "error", err)
			continue
		}
		post.ParseDate()
		posts = append(posts, post)
	}
	return posts, nil
}
