package repository

import (
	"context"
	"time"

	"github.com/quillpress/quillpress/internal/domain/entity"
)

// PostRepository defines the interface for post-related database operations.
// All read methods operate on live rows only; soft-deleted posts behave as if
// they do not exist.
type PostRepository interface {
	Create(ctx context.Context, p *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Post, error)
	List(ctx context.Context, f entity.PostFilter) ([]entity.Post, error)
	Count(ctx context.Context, f entity.PostFilter) (int, error)
	Update(ctx context.Context, p *entity.Post, at time.Time) error
	SoftDelete(ctx context.Context, id string, at time.Time) error
}
