package like

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/gouthampai05/the-final-empathway-sub001/domain"
)

// Service implements the like toggle. The like row is the authoritative
// state; the counter on the blog row is a denormalized secondary that is
// adjusted best-effort and reconciled by the worker.
type Service struct {
	likeRepo domain.LikeRepository
	blogRepo domain.BlogRepository
	counts   domain.LikeCountReader
	cache    domain.LikeCountCache
	worker   domain.ReconcileLikesWorker
}

var _ domain.LikeUsecase = (*Service)(nil)

func NewService(likeRepo domain.LikeRepository, blogRepo domain.BlogRepository, counts domain.LikeCountReader, cache domain.LikeCountCache, worker domain.ReconcileLikesWorker) *Service {
	return &Service{
		likeRepo: likeRepo,
		blogRepo: blogRepo,
		counts:   counts,
		cache:    cache,
		worker:   worker,
	}
}

// Toggle flips the device's like state on a blog. The conditional insert
// decides the direction: if the row was created this request owns the
// like, otherwise it removes the existing one. Only the request whose row
// mutation actually changed state adjusts the counter, so two racing
// toggles cannot double-increment.
func (s *Service) Toggle(ctx context.Context, blogID, deviceHash string) (domain.LikeStatus, error) {
	if blogID == "" {
		return domain.LikeStatus{}, domain.ErrBadParamInput
	}

	likeRecord := domain.BlogLike{
		BlogID:     blogID,
		DeviceHash: deviceHash,
	}

	inserted, err := s.likeRepo.Insert(ctx, likeRecord)
	if err != nil {
		logrus.Errorf("failed to insert like record for blog %s: %v", blogID, err)
		return domain.LikeStatus{}, domain.ErrLikeInsert
	}

	liked := true
	if inserted {
		s.adjustCounter(ctx, blogID, 1)
	} else {
		removed, err := s.likeRepo.Remove(ctx, likeRecord)
		if err != nil {
			logrus.Errorf("failed to remove like record for blog %s: %v", blogID, err)
			return domain.LikeStatus{}, domain.ErrLikeRemove
		}

		liked = false
		if removed {
			s.adjustCounter(ctx, blogID, -1)
		}
	}

	s.worker.Send(blogID)

	return domain.LikeStatus{
		Liked: liked,
		Likes: s.readBackCount(ctx, blogID),
	}, nil
}

// Status reads the device's like state and the current counter. A missing
// blog is not an error: the counter defaults to 0.
func (s *Service) Status(ctx context.Context, blogID, deviceHash string) (domain.LikeStatus, error) {
	if blogID == "" {
		return domain.LikeStatus{}, domain.ErrBadParamInput
	}

	liked, err := s.likeRepo.Exists(ctx, domain.BlogLike{
		BlogID:     blogID,
		DeviceHash: deviceHash,
	})
	if err != nil {
		logrus.Errorf("failed to check like record for blog %s: %v", blogID, err)
		return domain.LikeStatus{}, err
	}

	likes, err := s.counts.Get(ctx, blogID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logrus.Warnf("failed to read like count for blog %s: %v", blogID, err)
		}
		likes = 0
	}

	return domain.LikeStatus{Liked: liked, Likes: likes}, nil
}

// adjustCounter applies the secondary counter mutation. Failures are
// logged and swallowed: the like row already committed and the
// reconciliation worker will repair the drift.
func (s *Service) adjustCounter(ctx context.Context, blogID string, delta int64) {
	if err := s.blogRepo.AddLikes(ctx, blogID, delta); err != nil {
		logrus.Warnf("failed to adjust like counter for blog %s by %d: %v", blogID, delta, err)
	}
}

// readBackCount re-reads the counter after the adjustment, refreshing the
// cache along the way. Read-back failures default to 0.
func (s *Service) readBackCount(ctx context.Context, blogID string) int64 {
	blog, err := s.blogRepo.GetByID(ctx, blogID)
	if err != nil {
		logrus.Warnf("failed to read back like count for blog %s: %v", blogID, err)
		return 0
	}

	if err := s.cache.SetLikeCount(ctx, blogID, blog.Likes); err != nil {
		logrus.Warnf("failed to refresh like count cache for blog %s: %v", blogID, err)
	}

	return blog.Likes
}
