package domain

import (
	"context"
	"time"
)

type BlogStatus string

const (
	BlogStatusDraft     BlogStatus = "draft"
	BlogStatusPublished BlogStatus = "published"
)

// Blog is representing the Blog data struct
type Blog struct {
	ID        string     // UUID identifier for the blog post
	Title     string     // Blog title
	Slug      string     // URL slug derived from the title
	Content   string     // Sanitized HTML body
	Excerpt   string     // Short plain-text preview
	ReadTime  int        // Estimated reading time in minutes
	Tags      string     // Comma separated tag list
	Status    BlogStatus // draft or published
	Author    User       // Author information
	Likes     int64      // Denormalized like counter
	UpdatedAt time.Time  // Last update timestamp
	CreatedAt time.Time  // Creation timestamp
}

// BlogRepository defines the contract for blog data persistence
type BlogRepository interface {
	// Fetch retrieves a paginated list of published blogs.
	// cursor: pass the encoded creation time of the last blog, or empty string for the first page.
	Fetch(ctx context.Context, cursor string, num int64) (res []Blog, err error)

	// FetchAll retrieves every blog regardless of status. Used by the admin dashboard.
	FetchAll(ctx context.Context) ([]Blog, error)

	// GetByID retrieves a single blog by its ID.
	// Returns ErrNotFound if the blog doesn't exist.
	GetByID(ctx context.Context, id string) (Blog, error)

	// GetBySlug retrieves a blog by its slug.
	GetBySlug(ctx context.Context, slug string) (Blog, error)

	// Store creates a new blog in the repository.
	Store(ctx context.Context, b *Blog) error

	// Update modifies an existing blog.
	// Returns ErrNotFound if the blog doesn't exist.
	Update(ctx context.Context, b *Blog) error

	// Delete removes a blog by its ID.
	Delete(ctx context.Context, id string) error

	// AddLikes adjusts the denormalized like counter by delta (may be negative).
	AddLikes(ctx context.Context, id string, delta int64) error

	// SetLikes overwrites the denormalized like counter with the given value.
	SetLikes(ctx context.Context, id string, likes int64) error
}

type BlogUsecase interface {
	Fetch(ctx context.Context, cursor string, num int64) ([]Blog, string, error)
	FetchAll(ctx context.Context) ([]Blog, error)
	GetByID(ctx context.Context, id string) (Blog, error)
	GetBySlug(ctx context.Context, slug string) (Blog, error)
	Store(ctx context.Context, b *Blog) error
	Update(ctx context.Context, b *Blog) error
	Delete(ctx context.Context, id string) error
}
