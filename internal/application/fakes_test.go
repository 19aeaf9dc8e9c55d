package application

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/quillpress/quillpress/internal/domain/entity"
	"github.com/quillpress/quillpress/internal/domain/repository"
)

// In-memory repositories mirroring the Postgres implementations' contracts.

type fakeUserRepo struct {
	users map[string]*entity.User // by id
	seq   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return repository.ErrDuplicateEmail
		}
	}
	r.seq++
	u.ID = "user-" + strconv.Itoa(r.seq)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakePostRepo struct {
	posts map[string]*entity.Post // by id
	users *fakeUserRepo
	seq   int
	clock time.Time
}

func newFakePostRepo(users *fakeUserRepo) *fakePostRepo {
	return &fakePostRepo{
		posts: map[string]*entity.Post{},
		users: users,
		clock: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (r *fakePostRepo) tick() time.Time {
	r.clock = r.clock.Add(time.Minute)
	return r.clock
}

func (r *fakePostRepo) project(p *entity.Post) *entity.Post {
	cp := *p
	cp.Tags = append([]string{}, p.Tags...)
	if u, ok := r.users.users[p.AuthorID]; ok {
		cp.Author = entity.PostAuthor{ID: u.ID, Name: u.Name, Email: u.Email}
	} else {
		cp.Author = entity.PostAuthor{ID: p.AuthorID}
	}
	return &cp
}

func (r *fakePostRepo) Create(_ context.Context, p *entity.Post) error {
	r.seq++
	p.ID = "post-" + strconv.Itoa(r.seq)
	p.CreatedAt = r.tick()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	r.posts[p.ID] = &cp
	return nil
}

func (r *fakePostRepo) GetByID(_ context.Context, id string) (*entity.Post, error) {
	p, ok := r.posts[id]
	if !ok || !p.Live() {
		return nil, repository.ErrNotFound
	}
	return r.project(p), nil
}

func (r *fakePostRepo) GetBySlug(_ context.Context, slug string) (*entity.Post, error) {
	for _, p := range r.posts {
		if p.Slug == slug && p.Live() {
			return r.project(p), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakePostRepo) matches(f entity.PostFilter, p *entity.Post) bool {
	if !p.Live() {
		return false
	}
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.AuthorID != "" && p.AuthorID != f.AuthorID {
		return false
	}
	if f.Tag != "" {
		found := false
		for _, t := range p.Tags {
			if t == f.Tag {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Title), needle) &&
			!strings.Contains(strings.ToLower(p.Content), needle) {
			return false
		}
	}
	return true
}

func (r *fakePostRepo) matching(f entity.PostFilter) []*entity.Post {
	out := []*entity.Post{}
	for _, p := range r.posts {
		if r.matches(f, p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if f.SortAsc {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (r *fakePostRepo) List(_ context.Context, f entity.PostFilter) ([]entity.Post, error) {
	all := r.matching(f)
	start := f.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + f.Limit
	if end > len(all) {
		end = len(all)
	}
	out := make([]entity.Post, 0, end-start)
	for _, p := range all[start:end] {
		out = append(out, *r.project(p))
	}
	return out, nil
}

func (r *fakePostRepo) Count(_ context.Context, f entity.PostFilter) (int, error) {
	return len(r.matching(f)), nil
}

func (r *fakePostRepo) Update(_ context.Context, p *entity.Post, at time.Time) error {
	existing, ok := r.posts[p.ID]
	if !ok || !existing.Live() {
		return repository.ErrNotFound
	}
	p.UpdatedAt = at
	cp := *p
	cp.CreatedAt = existing.CreatedAt
	r.posts[p.ID] = &cp
	return nil
}

func (r *fakePostRepo) SoftDelete(_ context.Context, id string, at time.Time) error {
	p, ok := r.posts[id]
	if !ok || !p.Live() {
		return repository.ErrNotFound
	}
	p.DeletedAt = &at
	p.UpdatedAt = at
	return nil
}

var (
	_ repository.UserRepository = (*fakeUserRepo)(nil)
	_ repository.PostRepository = (*fakePostRepo)(nil)
)
