package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gouthampai05/the-final-empathway-sub001/domain"
)

const (
	KeyBlogLikes = "blog:likes:%s"

	likeCountTTL = 24 * time.Hour
)

type likeCountCache struct {
	client *redis.Client
}

var _ domain.LikeCountCache = (*likeCountCache)(nil)

func NewLikeCountCache(client *redis.Client) *likeCountCache {
	return &likeCountCache{
		client,
	}
}

func (c *likeCountCache) GetLikeCount(ctx context.Context, blogID string) (int64, error) {
	key := fmt.Sprintf(KeyBlogLikes, blogID)
	likes, err := c.client.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, domain.ErrCacheMiss
	} else if err != nil {
		return 0, err
	}
	return likes, nil
}

func (c *likeCountCache) SetLikeCount(ctx context.Context, blogID string, likes int64) error {
	key := fmt.Sprintf(KeyBlogLikes, blogID)
	return c.client.Set(ctx, key, likes, likeCountTTL).Err()
}

func (c *likeCountCache) DeleteLikeCount(ctx context.Context, blogID string) error {
	key := fmt.Sprintf(KeyBlogLikes, blogID)
	return c.client.Del(ctx, key).Err()
}
