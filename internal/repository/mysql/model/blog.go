package model

import (
	"time"

	"github.com/gouthampai05/the-final-empathway-sub001/domain"
)

type Blog struct {
	ID        string    `gorm:"primaryKey;type:char(36)"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Slug      string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Content   string    `gorm:"type:longtext;not null"`
	Excerpt   string    `gorm:"type:varchar(512)"`
	ReadTime  int       `gorm:"default:1"`
	Tags      string    `gorm:"type:varchar(255)"`
	Status    string    `gorm:"type:varchar(16);default:'draft';index"`
	AuthorID  int64     `gorm:"column:author_id;not null"`
	Likes     int64     `gorm:"default:0"`
	UpdatedAt time.Time `gorm:"type:datetime"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Blog) TableName() string {
	return "blogs"
}

func (m *Blog) ToDomain() domain.Blog {
	return domain.Blog{
		ID:       m.ID,
		Title:    m.Title,
		Slug:     m.Slug,
		Content:  m.Content,
		Excerpt:  m.Excerpt,
		ReadTime: m.ReadTime,
		Tags:     m.Tags,
		Status:   domain.BlogStatus(m.Status),
		Author: domain.User{
			ID: m.AuthorID,
		},
		Likes:     m.Likes,
		UpdatedAt: m.UpdatedAt,
		CreatedAt: m.CreatedAt,
	}
}

func NewBlogFromDomain(b *domain.Blog) *Blog {
	return &Blog{
		ID:        b.ID,
		Title:     b.Title,
		Slug:      b.Slug,
		Content:   b.Content,
		Excerpt:   b.Excerpt,
		ReadTime:  b.ReadTime,
		Tags:      b.Tags,
		Status:    string(b.Status),
		AuthorID:  b.Author.ID,
		Likes:     b.Likes,
		UpdatedAt: b.UpdatedAt,
		CreatedAt: b.CreatedAt,
	}
}
