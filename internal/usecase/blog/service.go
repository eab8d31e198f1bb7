package blog

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/gouthampai05/the-final-empathway-sub001/domain"
	"github.com/gouthampai05/the-final-empathway-sub001/internal/blogtext"
	"github.com/gouthampai05/the-final-empathway-sub001/internal/repository"
)

type Service struct {
	blogRepo domain.BlogRepository
	userRepo domain.UserRepository
	counts   domain.LikeCountReader
	cache    domain.LikeCountCache
	policy   *bluemonday.Policy
}

var _ domain.BlogUsecase = (*Service)(nil)

// NewService will create a new blog service object
func NewService(b domain.BlogRepository, u domain.UserRepository, counts domain.LikeCountReader, cache domain.LikeCountCache) *Service {
	return &Service{
		blogRepo: b,
		userRepo: u,
		counts:   counts,
		cache:    cache,
		policy:   bluemonday.UGCPolicy(),
	}
}

// fillAuthorDetails fans out over the distinct author IDs with an errgroup
// and merges the results back into the blog list.
func (s *Service) fillAuthorDetails(ctx context.Context, data []domain.Blog) ([]domain.Blog, error) {
	g, ctx := errgroup.WithContext(ctx)

	mapUsers := map[int64]domain.User{}
	for _, blog := range data { //nolint
		mapUsers[blog.Author.ID] = domain.User{}
	}

	chanUser := make(chan domain.User)
	for authorID := range mapUsers {
		authorID := authorID
		g.Go(func() error {
			res, err := s.userRepo.GetByID(ctx, authorID)
			if err != nil {
				return err
			}
			chanUser <- res
			return nil
		})
	}

	go func() {
		defer close(chanUser)
		err := g.Wait()
		if err != nil {
			logrus.Error(err)
			return
		}
	}()

	for user := range chanUser {
		if user != (domain.User{}) {
			mapUsers[user.ID] = user
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for index, item := range data { //nolint
		if u, ok := mapUsers[item.Author.ID]; ok {
			data[index].Author = u
		}
	}
	return data, nil
}

func (s *Service) Fetch(ctx context.Context, cursor string, num int64) (res []domain.Blog, nextCursor string, err error) {
	res, err = s.blogRepo.Fetch(ctx, cursor, num)
	if err != nil {
		return nil, "", err
	}

	res, err = s.fillAuthorDetails(ctx, res)
	if err != nil {
		return nil, "", err
	}

	if len(res) > 0 {
		nextCursor = repository.EncodeCursor(res[len(res)-1].CreatedAt)
	}
	return
}

func (s *Service) FetchAll(ctx context.Context) ([]domain.Blog, error) {
	res, err := s.blogRepo.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	return s.fillAuthorDetails(ctx, res)
}

func (s *Service) GetByID(ctx context.Context, id string) (res domain.Blog, err error) {
	res, err = s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Blog{}, err
	}

	author, err := s.userRepo.GetByID(ctx, res.Author.ID)
	if err != nil {
		return domain.Blog{}, err
	}
	res.Author = author

	// Prefer the cached counter; it absorbs adjustments the reconcile
	// worker has not flushed to the row yet.
	newLikes, err := s.counts.Get(ctx, id)
	if err != nil {
		logrus.Warnf("failed to read like count for blog %s: %v", id, err)
	} else {
		res.Likes = newLikes
	}

	return res, nil
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (res domain.Blog, err error) {
	res, err = s.blogRepo.GetBySlug(ctx, slug)
	if err != nil {
		return domain.Blog{}, err
	}

	author, err := s.userRepo.GetByID(ctx, res.Author.ID)
	if err != nil {
		return domain.Blog{}, err
	}
	res.Author = author
	return
}

func (s *Service) Store(ctx context.Context, b *domain.Blog) (err error) {
	b.Content = s.policy.Sanitize(b.Content)
	b.Slug = blogtext.Slugify(b.Title)
	b.Excerpt = blogtext.Excerpt(b.Content)
	b.ReadTime = blogtext.ReadTime(b.Content)
	if b.Status == "" {
		b.Status = domain.BlogStatusDraft
	}

	existing, err := s.blogRepo.GetBySlug(ctx, b.Slug)
	if err == nil && existing.ID != "" {
		return domain.ErrConflict
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	b.ID = uuid.NewString()
	return s.blogRepo.Store(ctx, b)
}

func (s *Service) Update(ctx context.Context, b *domain.Blog) (err error) {
	b.Content = s.policy.Sanitize(b.Content)
	b.Excerpt = blogtext.Excerpt(b.Content)
	b.ReadTime = blogtext.ReadTime(b.Content)
	b.UpdatedAt = time.Now()
	return s.blogRepo.Update(ctx, b)
}

func (s *Service) Delete(ctx context.Context, id string) (err error) {
	if err = s.blogRepo.Delete(ctx, id); err != nil {
		return
	}

	if err := s.cache.DeleteLikeCount(ctx, id); err != nil {
		logrus.Warnf("failed to drop like count cache for blog %s: %v", id, err)
	}
	return nil
}
