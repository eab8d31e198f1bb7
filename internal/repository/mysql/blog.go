package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/gouthampai05/the-final-empathway-sub001/domain"
	"github.com/gouthampai05/the-final-empathway-sub001/internal/repository"
	"github.com/gouthampai05/the-final-empathway-sub001/internal/repository/mysql/model"
)

type blogRepository struct {
	DB *gorm.DB
}

var _ domain.BlogRepository = (*blogRepository)(nil)

// NewBlogRepository creates the database layer for blogs
func NewBlogRepository(db *gorm.DB) *blogRepository {
	return &blogRepository{db}
}

func (m *blogRepository) Fetch(ctx context.Context, cursor string, num int64) (res []domain.Blog, err error) {
	var blogs []model.Blog
	decodedCursor, err := repository.DecodeCursor(cursor)
	if err != nil && cursor != "" {
		return nil, domain.ErrBadParamInput
	}

	repository.PageVerify(&num)
	err = m.DB.WithContext(ctx).
		Select("id, title, slug, excerpt, read_time, tags, status, author_id, likes, updated_at, created_at").
		Where("status = ? AND created_at > ?", string(domain.BlogStatusPublished), decodedCursor).
		Order("created_at").
		Limit(int(num)).
		Find(&blogs).
		Error

	if err != nil {
		return
	}

	for _, blog := range blogs {
		res = append(res, blog.ToDomain())
	}

	return
}

func (m *blogRepository) FetchAll(ctx context.Context) ([]domain.Blog, error) {
	var blogs []model.Blog
	err := m.DB.WithContext(ctx).Order("created_at DESC").Find(&blogs).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Blog, len(blogs))
	for i := range blogs {
		res[i] = blogs[i].ToDomain()
	}
	return res, nil
}

func (m *blogRepository) GetByID(ctx context.Context, id string) (res domain.Blog, err error) {
	var blog model.Blog
	err = m.DB.WithContext(ctx).First(&blog, "id = ?", id).Error
	if err != nil {
		return res, domain.ErrNotFound
	}
	res = blog.ToDomain()
	return
}

func (m *blogRepository) GetBySlug(ctx context.Context, slug string) (res domain.Blog, err error) {
	var blog model.Blog
	err = m.DB.WithContext(ctx).First(&blog, "slug = ?", slug).Error
	if err != nil {
		return res, domain.ErrNotFound
	}
	res = blog.ToDomain()
	return
}

func (m *blogRepository) Store(ctx context.Context, b *domain.Blog) (err error) {
	blogModel := model.NewBlogFromDomain(b)
	result := m.DB.WithContext(ctx).Create(&blogModel)
	if result.Error != nil {
		return result.Error
	}
	b.CreatedAt = blogModel.CreatedAt
	b.UpdatedAt = blogModel.UpdatedAt
	return
}

func (m *blogRepository) Update(ctx context.Context, b *domain.Blog) (err error) {
	blogModel := model.NewBlogFromDomain(b)
	result := m.DB.WithContext(ctx).Model(&blogModel).Updates(&blogModel)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return
}

func (m *blogRepository) Delete(ctx context.Context, id string) error {
	result := m.DB.WithContext(ctx).Delete(&model.Blog{}, "id = ?", id)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (m *blogRepository) AddLikes(ctx context.Context, id string, delta int64) error {
	result := m.DB.WithContext(ctx).Model(&model.Blog{}).Where("id = ?", id).Update("likes", gorm.Expr("likes + ?", delta))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *blogRepository) SetLikes(ctx context.Context, id string, likes int64) error {
	result := m.DB.WithContext(ctx).Model(&model.Blog{}).Where("id = ?", id).UpdateColumn("likes", likes)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
