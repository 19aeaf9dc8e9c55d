package postgres

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quillpress/quillpress/internal/domain/entity"
	"github.com/quillpress/quillpress/internal/domain/repository"
)

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

const postColumns = `
	p.id, p.title, p.slug, p.content, p.status, p.tags,
	p.created_at, p.updated_at,
	u.id, u.name, u.email
`

func scanPost(row pgx.Row) (*entity.Post, error) {
	p := &entity.Post{}
	if err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Content, &p.Status, &p.Tags,
		&p.CreatedAt, &p.UpdatedAt,
		&p.Author.ID, &p.Author.Name, &p.Author.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	p.AuthorID = p.Author.ID
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return p, nil
}

func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO posts (title, slug, content, author_id, status, tags)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, p.Title, p.Slug, p.Content, p.AuthorID, p.Status, p.Tags)

	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+postColumns+`
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1 AND p.deleted_at IS NULL
	`, id)
	return scanPost(row)
}

func (r *PostRepository) GetBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+postColumns+`
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.slug = $1 AND p.deleted_at IS NULL
	`, slug)
	return scanPost(row)
}

// likeEscaper neutralizes LIKE wildcards so the search term stays a literal
// substring match.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// whereClause compiles the typed filter into a WHERE fragment and its
// positional arguments. Soft-deleted rows are always excluded.
func whereClause(f entity.PostFilter) (string, []any) {
	conds := []string{"p.deleted_at IS NULL"}
	args := []any{}

	add := func(cond string, vals ...any) {
		for _, v := range vals {
			args = append(args, v)
			cond = strings.Replace(cond, "?", "$"+strconv.Itoa(len(args)), 1)
		}
		conds = append(conds, cond)
	}

	if f.Status != "" {
		add("p.status = ?", f.Status)
	}
	if f.AuthorID != "" {
		add("p.author_id = ?", f.AuthorID)
	}
	if f.Tag != "" {
		add("? = ANY(p.tags)", f.Tag)
	}
	if f.Search != "" {
		pattern := "%" + likeEscaper.Replace(f.Search) + "%"
		add("(p.title ILIKE ? OR p.content ILIKE ?)", pattern, pattern)
	}

	return "WHERE " + strings.Join(conds, " AND "), args
}

func (r *PostRepository) List(ctx context.Context, f entity.PostFilter) ([]entity.Post, error) {
	where, args := whereClause(f)

	order := "p.created_at DESC"
	if f.SortAsc {
		order = "p.created_at ASC"
	}

	limitArg := "$" + strconv.Itoa(len(args)+1)
	offsetArg := "$" + strconv.Itoa(len(args)+2)
	args = append(args, f.Limit, f.Offset())

	rows, err := r.pool.Query(ctx, `
		SELECT `+postColumns+`
		FROM posts p
		JOIN users u ON u.id = p.author_id
		`+where+`
		ORDER BY `+order+`
		LIMIT `+limitArg+` OFFSET `+offsetArg,
		args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []entity.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

func (r *PostRepository) Count(ctx context.Context, f entity.PostFilter) (int, error) {
	where, args := whereClause(f)

	var total int
	err := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM posts p `+where, args...).Scan(&total)
	return total, err
}

func (r *PostRepository) Update(ctx context.Context, p *entity.Post, at time.Time) error {
	p.UpdatedAt = at

	res, err := r.pool.Exec(ctx, `
		UPDATE posts
		SET title = $1, slug = $2, content = $3, status = $4, tags = $5, updated_at = $6
		WHERE id = $7 AND deleted_at IS NULL
	`, p.Title, p.Slug, p.Content, p.Status, p.Tags, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PostRepository) SoftDelete(ctx context.Context, id string, at time.Time) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE posts
		SET deleted_at = $2, updated_at = $2
		WHERE id = $1 AND deleted_at IS NULL
	`, id, at)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.PostRepository = (*PostRepository)(nil)
