package application

import (
	"net/url"
	"strconv"

	"github.com/quillpress/quillpress/internal/domain/entity"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// ListQuery is the parsed form of the list endpoint's query string.
// select, sort, page, limit, and search are control parameters: they shape
// the window and ordering but never become data filters.
type ListQuery struct {
	Status string
	Tag    string
	Search string
	Sort   string
	Page   int
	Limit  int
}

// ParseListQuery extracts the recognized parameters from a raw query string
// and clamps the pagination window to sane bounds.
func ParseListQuery(values url.Values) ListQuery {
	q := ListQuery{
		Status: values.Get("status"),
		Tag:    values.Get("tag"),
		Search: values.Get("search"),
		Sort:   values.Get("sort"),
		Page:   defaultPage,
		Limit:  defaultLimit,
	}
	if p, err := strconv.Atoi(values.Get("page")); err == nil && p > 0 {
		q.Page = p
	}
	if l, err := strconv.Atoi(values.Get("limit")); err == nil && l > 0 {
		q.Limit = l
		if q.Limit > maxLimit {
			q.Limit = maxLimit
		}
	}
	return q
}

// BuildPostFilter compiles a list query into the typed filter, applying the
// visibility rules once per request:
//
//   - no identity: only published posts, whatever the query says
//   - identity and status=draft: the caller's own drafts only
//   - identity and no status: published (drafts never mix into the default
//     listing, authors included)
//   - identity and any other explicit status: passed through as given
func BuildPostFilter(identity string, q ListQuery) entity.PostFilter {
	f := entity.PostFilter{
		Tag:    q.Tag,
		Search: q.Search,
		Page:   q.Page,
		Limit:  q.Limit,
	}

	if identity == "" {
		f.Status = entity.StatusPublished
	} else if q.Status == entity.StatusDraft {
		f.Status = entity.StatusDraft
		f.AuthorID = identity
	} else if q.Status == "" {
		f.Status = entity.StatusPublished
	} else {
		f.Status = q.Status
	}

	if q.Sort == "created_at" {
		f.SortAsc = true
	}
	return f
}
