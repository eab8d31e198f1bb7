package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gouthampai05/the-final-empathway-sub001/domain"
)

// reconcileLikesWorker recounts like rows for recently toggled blogs and
// writes the authoritative count back to the blogs table and the cache.
// This bounds the drift left behind by best-effort counter adjustments.
type reconcileLikesWorker struct {
	likeRepo domain.LikeRepository
	blogRepo domain.BlogRepository
	cache    domain.LikeCountCache
	ch       chan string
}

var _ domain.ReconcileLikesWorker = (*reconcileLikesWorker)(nil)

func NewReconcileLikesWorker(likeRepo domain.LikeRepository, blogRepo domain.BlogRepository, cache domain.LikeCountCache) *reconcileLikesWorker {
	return &reconcileLikesWorker{
		likeRepo: likeRepo,
		blogRepo: blogRepo,
		cache:    cache,
		ch:       make(chan string, 1024),
	}
}

// Send enqueues a blog for reconciliation, dropping the task when the
// channel is full. A dropped task only delays the repair until the next
// toggle on that blog.
func (w *reconcileLikesWorker) Send(blogID string) {
	select {
	case w.ch <- blogID:
	default:
		logrus.Info("ReconcileLikesWorker's channel is full, task dropped")
	}
}

func (w *reconcileLikesWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	const batchSize = 100
	batch := make(map[string]struct{}, batchSize)
	for {
		select {
		case blogID := <-w.ch:
			batch[blogID] = struct{}{}
			if len(batch) == batchSize {
				w.flush(ctx, batch)
				batch = make(map[string]struct{}, batchSize)
			}
		case <-ticker.C:
			w.flush(ctx, batch)
			batch = make(map[string]struct{}, batchSize)
		case <-ctx.Done():
			logrus.Info("shutting down ReconcileLikesWorker, flushing remaining tasks...")
			w.flush(context.Background(), batch)
			return
		}
	}
}

func (w *reconcileLikesWorker) flush(ctx context.Context, batch map[string]struct{}) {
	for blogID := range batch {
		count, err := w.likeRepo.CountByBlog(ctx, blogID)
		if err != nil {
			logrus.Errorf("failed to count likes for blog %s: %v", blogID, err)
			continue
		}

		if err := w.blogRepo.SetLikes(ctx, blogID, count); err != nil {
			logrus.Errorf("failed to reconcile like counter for blog %s: %v", blogID, err)
			continue
		}

		if err := w.cache.SetLikeCount(ctx, blogID, count); err != nil {
			logrus.Warnf("failed to refresh like count cache for blog %s: %v", blogID, err)
		}
	}
}
