package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/quillpress/quillpress/internal/apperr"
	"github.com/quillpress/quillpress/internal/domain/entity"
	"github.com/quillpress/quillpress/internal/domain/repository"
)

// PostService owns the business rules over posts: ownership checks,
// draft/published visibility, slug derivation, soft deletion, pagination.
type PostService struct {
	Posts  repository.PostRepository
	Logger *logrus.Logger

	now func() time.Time
}

func NewPostService(posts repository.PostRepository, logger *logrus.Logger) *PostService {
	return &PostService{Posts: posts, Logger: logger, now: time.Now}
}

// PageRef points at an adjacent page in a listing.
type PageRef struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Pagination carries next/prev descriptors; either side is omitted when the
// window touches the corresponding edge of the result set.
type Pagination struct {
	Next *PageRef `json:"next,omitempty"`
	Prev *PageRef `json:"prev,omitempty"`
}

// ListResult is the outcome of a post listing.
type ListResult struct {
	Posts      []entity.Post
	Pagination Pagination
}

type CreatePostInput struct {
	Title   string
	Content string
	Status  string
	Tags    []string
}

// UpdatePostInput is a partial patch; nil fields are left untouched.
type UpdatePostInput struct {
	Title   *string
	Content *string
	Status  *string
	Tags    *[]string
}

// Create persists a new post. The author is always the authenticated caller,
// regardless of anything the request body claimed; status defaults to draft
// and the slug is derived from the title before the post is stored.
func (s *PostService) Create(ctx context.Context, authorID string, in CreatePostInput) (*entity.Post, error) {
	status := in.Status
	if status == "" {
		status = entity.StatusDraft
	}
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	p := &entity.Post{
		Title:    in.Title,
		Slug:     NewSlug(in.Title, s.now()),
		Content:  in.Content,
		AuthorID: authorID,
		Status:   status,
		Tags:     tags,
	}
	if err := s.Posts.Create(ctx, p); err != nil {
		return nil, err
	}
	// Re-read to pick up the author projection the join provides.
	return s.Posts.GetByID(ctx, p.ID)
}

// List runs the visibility-filtered listing and computes the pagination
// descriptors from the total matching count.
func (s *PostService) List(ctx context.Context, identity string, q ListQuery) (*ListResult, error) {
	f := BuildPostFilter(identity, q)

	total, err := s.Posts.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	posts, err := s.Posts.List(ctx, f)
	if err != nil {
		return nil, err
	}

	res := &ListResult{Posts: posts}
	if f.Page*f.Limit < total {
		res.Pagination.Next = &PageRef{Page: f.Page + 1, Limit: f.Limit}
	}
	if f.Offset() > 0 {
		res.Pagination.Prev = &PageRef{Page: f.Page - 1, Limit: f.Limit}
	}
	return res, nil
}

// GetBySlug looks up a live post by slug. Drafts are only visible to their
// author; everyone else gets the same not-found answer as for a missing
// post, so draft existence is never leaked.
func (s *PostService) GetBySlug(ctx context.Context, identity, slug string) (*entity.Post, error) {
	p, err := s.Posts.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.NotFound, "post not found")
		}
		return nil, err
	}
	if p.Status == entity.StatusDraft && p.AuthorID != identity {
		return nil, apperr.New(apperr.NotFound, "post not found")
	}
	return p, nil
}

// Update applies a partial patch to a live post after the ownership check.
// A title change regenerates the slug.
func (s *PostService) Update(ctx context.Context, requesterID, id string, in UpdatePostInput) (*entity.Post, error) {
	p, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.NotFound, "post not found")
		}
		return nil, err
	}
	if p.AuthorID != requesterID {
		return nil, apperr.New(apperr.Forbidden, "not authorized to update this post")
	}

	if in.Title != nil && *in.Title != p.Title {
		p.Title = *in.Title
		p.Slug = NewSlug(p.Title, s.now())
	}
	if in.Content != nil {
		p.Content = *in.Content
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.Tags != nil {
		p.Tags = *in.Tags
	}

	if err := s.Posts.Update(ctx, p, s.now()); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.NotFound, "post not found")
		}
		return nil, err
	}
	return s.Posts.GetByID(ctx, p.ID)
}

// Delete soft-deletes a live post after the ownership check. The record
// stays in storage with deleted_at set; standard reads no longer see it, so
// a repeat call reports not found.
func (s *PostService) Delete(ctx context.Context, requesterID, id string) error {
	p, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.New(apperr.NotFound, "post not found")
		}
		return err
	}
	if p.AuthorID != requesterID {
		return apperr.New(apperr.Forbidden, "not authorized to delete this post")
	}

	if err := s.Posts.SoftDelete(ctx, id, s.now()); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.New(apperr.NotFound, "post not found")
		}
		return err
	}
	return nil
}
