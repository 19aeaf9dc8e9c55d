package entity

import (
	"time"
)

// Post status values. The draft/published toggle is unrestricted in both
// directions; soft deletion is one-way and orthogonal to status.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// PostAuthor is the author projection embedded in post responses.
type PostAuthor struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// Post is a blog post. Slug is derived from the title plus a millisecond
// suffix and regenerated whenever the title changes. DeletedAt is nil while
// the post is live; soft-deleted posts are excluded from all standard reads.
type Post struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Slug      string     `json:"slug"`
	Content   string     `json:"content"`
	AuthorID  string     `json:"-"`
	Author    PostAuthor `json:"author"`
	Status    string     `json:"status"`
	Tags      []string   `json:"tags"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`
}

// Live reports whether the post has not been soft-deleted.
func (p *Post) Live() bool { return p.DeletedAt == nil }

// PostFilter is the typed, explicitly-enumerated filter a list query compiles
// to. Zero-valued fields are not applied; soft-deleted rows are always
// excluded by the repository.
type PostFilter struct {
	Status   string // passed through as given; unknown statuses match nothing
	AuthorID string // restricts to a single author (own-drafts rule)
	Tag      string // exact membership match against the tags set
	Search   string // case-insensitive substring over title OR content
	Page     int    // 1-indexed
	Limit    int
	SortAsc  bool // default is descending creation time
}

// Offset returns the row offset for the filter's page window.
func (f PostFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
