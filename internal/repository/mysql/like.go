package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gouthampai05/the-final-empathway-sub001/domain"
	"github.com/gouthampai05/the-final-empathway-sub001/internal/repository/mysql/model"
)

type likeRepository struct {
	DB *gorm.DB
}

var _ domain.LikeRepository = (*likeRepository)(nil)

// NewLikeRepository creates the database layer for like records
func NewLikeRepository(db *gorm.DB) *likeRepository {
	return &likeRepository{db}
}

// Insert performs a conditional insert. The (blog_id, device_hash) primary
// key rejects duplicates; RowsAffected tells whether this request won the
// race and is therefore responsible for the counter adjustment.
func (m *likeRepository) Insert(ctx context.Context, like domain.BlogLike) (bool, error) {
	likeModel := model.NewBlogLikeFromDomain(like)
	result := m.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&likeModel)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (m *likeRepository) Remove(ctx context.Context, like domain.BlogLike) (bool, error) {
	result := m.DB.WithContext(ctx).
		Where("blog_id = ? AND device_hash = ?", like.BlogID, like.DeviceHash).
		Delete(&model.BlogLike{})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (m *likeRepository) Exists(ctx context.Context, like domain.BlogLike) (bool, error) {
	var count int64
	err := m.DB.WithContext(ctx).
		Model(&model.BlogLike{}).
		Where("blog_id = ? AND device_hash = ?", like.BlogID, like.DeviceHash).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (m *likeRepository) CountByBlog(ctx context.Context, blogID string) (int64, error) {
	var count int64
	err := m.DB.WithContext(ctx).
		Model(&model.BlogLike{}).
		Where("blog_id = ?", blogID).
		Count(&count).
		Error

	return count, err
}
