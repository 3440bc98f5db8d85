package repository

import (
	"context"

	"github.com/healthplate/backend/internal/domain/entity"
)

// PostRepository persists community posts.
type PostRepository interface {
	Insert(ctx context.Context, p *entity.Post) error
	// List returns the newest posts up to limit.
	List(ctx context.Context, limit int64) ([]entity.Post, error)
}
