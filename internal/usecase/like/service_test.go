package like

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gouthampai05/the-final-empathway-sub001/domain"
)

type pairKey struct {
	blogID     string
	deviceHash string
}

// fakeLikeRepo keeps like rows in a map and honors the conditional
// insert/delete contract.
type fakeLikeRepo struct {
	rows      map[pairKey]struct{}
	insertErr error
	removeErr error
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{rows: make(map[pairKey]struct{})}
}

func (f *fakeLikeRepo) Insert(_ context.Context, like domain.BlogLike) (bool, error) {
	if f.insertErr != nil {
		return false, f.insertErr
	}
	key := pairKey{like.BlogID, like.DeviceHash}
	if _, ok := f.rows[key]; ok {
		return false, nil
	}
	f.rows[key] = struct{}{}
	return true, nil
}

func (f *fakeLikeRepo) Remove(_ context.Context, like domain.BlogLike) (bool, error) {
	if f.removeErr != nil {
		return false, f.removeErr
	}
	key := pairKey{like.BlogID, like.DeviceHash}
	if _, ok := f.rows[key]; !ok {
		return false, nil
	}
	delete(f.rows, key)
	return true, nil
}

func (f *fakeLikeRepo) Exists(_ context.Context, like domain.BlogLike) (bool, error) {
	_, ok := f.rows[pairKey{like.BlogID, like.DeviceHash}]
	return ok, nil
}

func (f *fakeLikeRepo) CountByBlog(_ context.Context, blogID string) (int64, error) {
	var n int64
	for key := range f.rows {
		if key.blogID == blogID {
			n++
		}
	}
	return n, nil
}

// fakeBlogRepo only implements the pieces the like service touches.
type fakeBlogRepo struct {
	domain.BlogRepository
	likes       map[string]int64
	addLikesErr error
	getErr      error
}

func newFakeBlogRepo(blogID string, likes int64) *fakeBlogRepo {
	return &fakeBlogRepo{likes: map[string]int64{blogID: likes}}
}

func (f *fakeBlogRepo) GetByID(_ context.Context, id string) (domain.Blog, error) {
	if f.getErr != nil {
		return domain.Blog{}, f.getErr
	}
	likes, ok := f.likes[id]
	if !ok {
		return domain.Blog{}, domain.ErrNotFound
	}
	return domain.Blog{ID: id, Likes: likes}, nil
}

func (f *fakeBlogRepo) AddLikes(_ context.Context, id string, delta int64) error {
	if f.addLikesErr != nil {
		return f.addLikesErr
	}
	if _, ok := f.likes[id]; !ok {
		return domain.ErrNotFound
	}
	f.likes[id] += delta
	return nil
}

type fakeCounts struct {
	blogs *fakeBlogRepo
}

func (f *fakeCounts) Get(ctx context.Context, blogID string) (int64, error) {
	blog, err := f.blogs.GetByID(ctx, blogID)
	if err != nil {
		return 0, err
	}
	return blog.Likes, nil
}

type fakeCache struct {
	counts map[string]int64
}

func newFakeCache() *fakeCache {
	return &fakeCache{counts: make(map[string]int64)}
}

func (f *fakeCache) GetLikeCount(_ context.Context, blogID string) (int64, error) {
	likes, ok := f.counts[blogID]
	if !ok {
		return 0, domain.ErrCacheMiss
	}
	return likes, nil
}

func (f *fakeCache) SetLikeCount(_ context.Context, blogID string, likes int64) error {
	f.counts[blogID] = likes
	return nil
}

func (f *fakeCache) DeleteLikeCount(_ context.Context, blogID string) error {
	delete(f.counts, blogID)
	return nil
}

type fakeWorker struct {
	sent []string
}

func (f *fakeWorker) Start(context.Context) {}
func (f *fakeWorker) Send(blogID string)    { f.sent = append(f.sent, blogID) }

func newTestService(blogID string, likes int64) (*Service, *fakeLikeRepo, *fakeBlogRepo, *fakeWorker) {
	likeRepo := newFakeLikeRepo()
	blogRepo := newFakeBlogRepo(blogID, likes)
	worker := &fakeWorker{}
	svc := NewService(likeRepo, blogRepo, &fakeCounts{blogRepo}, newFakeCache(), worker)
	return svc, likeRepo, blogRepo, worker
}

func TestToggleAlternatesStateAndCounter(t *testing.T) {
	svc, _, _, worker := newTestService("blog-1", 5)

	status, err := svc.Toggle(context.Background(), "blog-1", "device-d")
	require.NoError(t, err)
	assert.True(t, status.Liked)
	assert.Equal(t, int64(6), status.Likes)

	status, err = svc.Toggle(context.Background(), "blog-1", "device-d")
	require.NoError(t, err)
	assert.False(t, status.Liked)
	assert.Equal(t, int64(5), status.Likes)

	assert.Len(t, worker.sent, 2)
}

func TestToggleDistinctDevicesAccumulate(t *testing.T) {
	svc, likeRepo, _, _ := newTestService("blog-1", 0)

	_, err := svc.Toggle(context.Background(), "blog-1", "device-a")
	require.NoError(t, err)
	status, err := svc.Toggle(context.Background(), "blog-1", "device-b")
	require.NoError(t, err)

	assert.Equal(t, int64(2), status.Likes)
	count, err := likeRepo.CountByBlog(context.Background(), "blog-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestToggleMissingBlogID(t *testing.T) {
	svc, likeRepo, blogRepo, _ := newTestService("blog-1", 5)

	_, err := svc.Toggle(context.Background(), "", "device-d")
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
	assert.Empty(t, likeRepo.rows)
	assert.Equal(t, int64(5), blogRepo.likes["blog-1"])
}

func TestToggleInsertFailureLeavesStateUnchanged(t *testing.T) {
	svc, likeRepo, blogRepo, _ := newTestService("blog-1", 5)
	likeRepo.insertErr = errors.New("connection reset")

	_, err := svc.Toggle(context.Background(), "blog-1", "device-d")
	assert.ErrorIs(t, err, domain.ErrLikeInsert)
	assert.Equal(t, int64(5), blogRepo.likes["blog-1"])
}

func TestToggleRemoveFailure(t *testing.T) {
	svc, likeRepo, blogRepo, _ := newTestService("blog-1", 5)

	_, err := svc.Toggle(context.Background(), "blog-1", "device-d")
	require.NoError(t, err)

	likeRepo.removeErr = errors.New("connection reset")
	_, err = svc.Toggle(context.Background(), "blog-1", "device-d")
	assert.ErrorIs(t, err, domain.ErrLikeRemove)
	assert.Equal(t, int64(6), blogRepo.likes["blog-1"])
}

func TestToggleCounterFailureStillSucceeds(t *testing.T) {
	svc, likeRepo, blogRepo, _ := newTestService("blog-1", 5)
	blogRepo.addLikesErr = errors.New("deadlock")

	status, err := svc.Toggle(context.Background(), "blog-1", "device-d")
	require.NoError(t, err)
	assert.True(t, status.Liked)
	// Counter never moved, the read-back reports the stale value.
	assert.Equal(t, int64(5), status.Likes)
	assert.Len(t, likeRepo.rows, 1)
}

func TestToggleReadBackFailureDefaultsToZero(t *testing.T) {
	svc, _, blogRepo, _ := newTestService("blog-1", 5)

	blogRepo.getErr = errors.New("connection reset")
	status, err := svc.Toggle(context.Background(), "blog-1", "device-d")
	require.NoError(t, err)
	assert.True(t, status.Liked)
	assert.Equal(t, int64(0), status.Likes)
}

func TestStatusReflectsToggle(t *testing.T) {
	svc, _, _, _ := newTestService("blog-1", 5)

	status, err := svc.Status(context.Background(), "blog-1", "device-d")
	require.NoError(t, err)
	assert.False(t, status.Liked)
	assert.Equal(t, int64(5), status.Likes)

	_, err = svc.Toggle(context.Background(), "blog-1", "device-d")
	require.NoError(t, err)

	status, err = svc.Status(context.Background(), "blog-1", "device-d")
	require.NoError(t, err)
	assert.True(t, status.Liked)
	assert.Equal(t, int64(6), status.Likes)

	// A different device sees the counter but not the liked state.
	status, err = svc.Status(context.Background(), "blog-1", "device-other")
	require.NoError(t, err)
	assert.False(t, status.Liked)
	assert.Equal(t, int64(6), status.Likes)
}

func TestStatusMissingBlogIsLenient(t *testing.T) {
	svc, _, _, _ := newTestService("blog-1", 5)

	status, err := svc.Status(context.Background(), "ghost", "device-d")
	require.NoError(t, err)
	assert.False(t, status.Liked)
	assert.Equal(t, int64(0), status.Likes)
}

func TestStatusMissingBlogID(t *testing.T) {
	svc, _, _, _ := newTestService("blog-1", 5)

	_, err := svc.Status(context.Background(), "", "device-d")
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}
