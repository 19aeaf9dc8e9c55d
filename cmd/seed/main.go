package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/lib/pq"

	"github.com/quillpress/quillpress/config"
	"github.com/quillpress/quillpress/internal/application"
	"github.com/quillpress/quillpress/internal/domain/entity"
	"github.com/quillpress/quillpress/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@example.com"
	password := "password123"
	name := "Demo Author"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var authorID string
	err = db.QueryRow(`
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT ((lower(email))) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, name, email, hash).Scan(&authorID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", authorID, email, password)

	posts := []struct {
		title   string
		content string
		status  string
		tags    []string
	}{
		{"Hello World", "The very first post on this blog.", entity.StatusPublished, []string{"meta"}},
		{"Writing in Go", "Notes on building services with Go.", entity.StatusPublished, []string{"go", "engineering"}},
		{"Unfinished Thoughts", "This one is not ready yet.", entity.StatusDraft, []string{"ideas"}},
	}

	for _, p := range posts {
		slug := application.NewSlug(p.title, time.Now())
		var id string
		err := db.QueryRow(`
			INSERT INTO posts (title, slug, content, author_id, status, tags)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`, p.title, slug, p.content, authorID, p.status, pq.Array(p.tags)).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed post %q: %v", p.title, err)
		}
		fmt.Printf("seeded post: id=%s slug=%s status=%s\n", id, slug, p.status)
		// UnixMilli slug suffix; keep successive slugs distinct
		time.Sleep(2 * time.Millisecond)
	}
}
