package model

import (
	"time"

	"github.com/gouthampai05/the-final-empathway-sub001/domain"
)

type BlogLike struct {
	BlogID     string    `gorm:"column:blog_id;type:char(36);primaryKey"`
	DeviceHash string    `gorm:"column:device_hash;type:char(64);primaryKey"`
	CreatedAt  time.Time `gorm:"type:datetime"`
}

func (BlogLike) TableName() string {
	return "blog_likes"
}

func NewBlogLikeFromDomain(bl domain.BlogLike) BlogLike {
	return BlogLike{
		BlogID:     bl.BlogID,
		DeviceHash: bl.DeviceHash,
		CreatedAt:  bl.CreatedAt,
	}
}

func (m *BlogLike) ToDomain() domain.BlogLike {
	return domain.BlogLike{
		BlogID:     m.BlogID,
		DeviceHash: m.DeviceHash,
		CreatedAt:  m.CreatedAt,
	}
}
