package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gouthampai05/the-final-empathway-sub001/domain"
)

type fakeLikeCache struct {
	counts map[string]int64
	getErr error
	sets   int
}

func (f *fakeLikeCache) GetLikeCount(_ context.Context, blogID string) (int64, error) {
	if f.getErr != nil {
		return 0, f.getErr
	}
	likes, ok := f.counts[blogID]
	if !ok {
		return 0, domain.ErrCacheMiss
	}
	return likes, nil
}

func (f *fakeLikeCache) SetLikeCount(_ context.Context, blogID string, likes int64) error {
	f.counts[blogID] = likes
	f.sets++
	return nil
}

func (f *fakeLikeCache) DeleteLikeCount(_ context.Context, blogID string) error {
	delete(f.counts, blogID)
	return nil
}

type fakeBlogGetter struct {
	domain.BlogRepository
	likes map[string]int64
	calls int
}

func (f *fakeBlogGetter) GetByID(_ context.Context, id string) (domain.Blog, error) {
	f.calls++
	likes, ok := f.likes[id]
	if !ok {
		return domain.Blog{}, domain.ErrNotFound
	}
	return domain.Blog{ID: id, Likes: likes}, nil
}

func TestGetServesFromCache(t *testing.T) {
	cache := &fakeLikeCache{counts: map[string]int64{"blog-1": 9}}
	blogs := &fakeBlogGetter{likes: map[string]int64{"blog-1": 9}}
	reader := NewLikeCountReader(cache, blogs)

	likes, err := reader.Get(context.Background(), "blog-1")
	require.NoError(t, err)
	assert.Equal(t, int64(9), likes)
	assert.Zero(t, blogs.calls)
}

func TestGetMissFallsThroughAndWarmsCache(t *testing.T) {
	cache := &fakeLikeCache{counts: map[string]int64{}}
	blogs := &fakeBlogGetter{likes: map[string]int64{"blog-1": 9}}
	reader := NewLikeCountReader(cache, blogs)

	likes, err := reader.Get(context.Background(), "blog-1")
	require.NoError(t, err)
	assert.Equal(t, int64(9), likes)
	assert.Equal(t, 1, blogs.calls)
	assert.Equal(t, int64(9), cache.counts["blog-1"])

	// The warmed key now answers without another database hit.
	_, err = reader.Get(context.Background(), "blog-1")
	require.NoError(t, err)
	assert.Equal(t, 1, blogs.calls)
}

func TestGetCacheErrorStillFallsThrough(t *testing.T) {
	cache := &fakeLikeCache{counts: map[string]int64{}, getErr: errors.New("connection refused")}
	blogs := &fakeBlogGetter{likes: map[string]int64{"blog-1": 9}}
	reader := NewLikeCountReader(cache, blogs)

	likes, err := reader.Get(context.Background(), "blog-1")
	require.NoError(t, err)
	assert.Equal(t, int64(9), likes)
}

func TestGetUnknownBlog(t *testing.T) {
	cache := &fakeLikeCache{counts: map[string]int64{}}
	blogs := &fakeBlogGetter{likes: map[string]int64{}}
	reader := NewLikeCountReader(cache, blogs)

	_, err := reader.Get(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
