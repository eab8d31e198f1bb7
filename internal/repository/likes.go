package repository

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/gouthampai05/the-final-empathway-sub001/domain"
)

// likeCountReader coordinates the like-count cache and the blogs table.
// Cache misses fall through to the database under singleflight so a cold
// key rebuilds once even when many status reads arrive together.
type likeCountReader struct {
	cache domain.LikeCountCache
	blogs domain.BlogRepository
	group singleflight.Group
}

var _ domain.LikeCountReader = (*likeCountReader)(nil)

func NewLikeCountReader(cache domain.LikeCountCache, blogs domain.BlogRepository) *likeCountReader {
	return &likeCountReader{
		cache: cache,
		blogs: blogs,
	}
}

func (r *likeCountReader) Get(ctx context.Context, blogID string) (int64, error) {
	likes, err := r.cache.GetLikeCount(ctx, blogID)
	if err == nil {
		return likes, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("like count cache get error for blog %s: %v", blogID, err)
	}

	result, err, _ := r.group.Do(blogID, func() (any, error) {
		blog, err := r.blogs.GetByID(ctx, blogID)
		if err != nil {
			return int64(0), err
		}

		if err := r.cache.SetLikeCount(ctx, blogID, blog.Likes); err != nil {
			logrus.Warnf("failed to warm like count cache for blog %s: %v", blogID, err)
		}

		return blog.Likes, nil
	})
	if err != nil {
		return 0, err
	}

	return result.(int64), nil
}
