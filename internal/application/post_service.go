package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/healthplate/backend/internal/domain/entity"
	"github.com/healthplate/backend/internal/domain/repository"
	"github.com/healthplate/backend/pkg/helpers"
)

var ErrUploadsDisabled = errors.New("uploads not configured")

const (
	feedCacheKey = "posts:feed:recent"
	feedLimit    = 100
)

// PostService serves the community feed: post creation, a cached recent
// list, and image uploads to GCS.
type PostService struct {
	Repo      repository.PostRepository
	Redis     *redis.Client // optional; nil disables feed caching
	GCS       *storage.Client
	GCSBucket string
	CacheTTL  time.Duration
	Logger    *logrus.Logger
}

func NewPostService(repo repository.PostRepository, rdb *redis.Client, gcs *storage.Client, bucket string, cacheTTL time.Duration, logger *logrus.Logger) *PostService {
	return &PostService{Repo: repo, Redis: rdb, GCS: gcs, GCSBucket: bucket, CacheTTL: cacheTTL, Logger: logger}
}

// CreatePost assigns an id and timestamp, stores the post and invalidates
// the feed cache.
func (s *PostService) CreatePost(ctx context.Context, p *entity.Post) error {
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()
	if err := s.Repo.Insert(ctx, p); err != nil {
		s.Logger.WithError(err).Error("post: insert failed")
		return err
	}
	if s.Redis != nil {
		if err := helpers.RedisDel(ctx, s.Redis, feedCacheKey); err != nil {
			s.Logger.WithError(err).Warn("post: feed cache invalidation failed")
		}
	}
	return nil
}

// ListPosts returns the newest posts, served from the Redis cache when warm.
func (s *PostService) ListPosts(ctx context.Context) ([]entity.Post, error) {
	if s.Redis != nil {
		var cached []entity.Post
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, feedCacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	posts, err := s.Repo.List(ctx, feedLimit)
	if err != nil {
		s.Logger.WithError(err).Error("post: list failed")
		return nil, err
	}

	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, feedCacheKey, posts, s.CacheTTL); err != nil {
			s.Logger.WithError(err).Warn("post: feed cache write failed")
		}
	}
	return posts, nil
}

// UploadImage stores an uploaded file in the posts bucket and returns its
// public URL.
func (s *PostService) UploadImage(ctx context.Context, r io.Reader, filename, contentType string) (string, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return "", ErrUploadsDisabled
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := "posts/" + uuid.NewString() + ext
	return helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
}
