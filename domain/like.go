package domain

import (
	"context"
	"time"
)

// BlogLike is representing a like record. A device is identified by an
// opaque one-way hash derived from request metadata, never by the client.
type BlogLike struct {
	BlogID     string
	DeviceHash string
	CreatedAt  time.Time
}

// LikeStatus is the result of reading or toggling a like.
type LikeStatus struct {
	Liked bool
	Likes int64
}

// LikeRepository defines the contract for like record persistence.
// At most one row exists per (blog, device) pair.
type LikeRepository interface {
	// Insert stores a like record if it does not exist yet.
	// Reports whether a row was actually created.
	Insert(ctx context.Context, like BlogLike) (bool, error)

	// Remove deletes the like record if it exists.
	// Reports whether a row was actually deleted.
	Remove(ctx context.Context, like BlogLike) (bool, error)

	// Exists reports whether a like record exists for the pair.
	Exists(ctx context.Context, like BlogLike) (bool, error)

	// CountByBlog returns the authoritative number of like rows for a blog.
	CountByBlog(ctx context.Context, blogID string) (int64, error)
}

// LikeCountCache caches the denormalized like counter per blog.
type LikeCountCache interface {
	// GetLikeCount returns the cached counter.
	// Returns ErrCacheMiss if the blog has no cached counter.
	GetLikeCount(ctx context.Context, blogID string) (int64, error)

	SetLikeCount(ctx context.Context, blogID string, likes int64) error

	DeleteLikeCount(ctx context.Context, blogID string) error
}

// LikeCountReader resolves the current counter value for a blog,
// preferring the cache over the blogs table.
type LikeCountReader interface {
	Get(ctx context.Context, blogID string) (int64, error)
}

type LikeUsecase interface {
	// Toggle flips the device's like state on a blog and returns the new
	// state together with the counter value after adjustment.
	Toggle(ctx context.Context, blogID, deviceHash string) (LikeStatus, error)

	// Status reads the device's like state without mutating anything.
	Status(ctx context.Context, blogID, deviceHash string) (LikeStatus, error)
}

// ReconcileLikesWorker recounts like rows for recently touched blogs and
// writes the authoritative value back to the counter column and the cache.
type ReconcileLikesWorker interface {
	Start(ctx context.Context)

	// Send enqueues a blog for reconciliation. Never blocks.
	Send(blogID string)
}
