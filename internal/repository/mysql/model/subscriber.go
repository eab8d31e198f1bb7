package model

import (
	"time"

	"github.com/gouthampai05/the-final-empathway-sub001/domain"
)

type Subscriber struct {
	ID         string    `gorm:"primaryKey;type:char(36)"`
	Email      string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Subscribed bool      `gorm:"default:true"`
	UpdatedAt  time.Time `gorm:"type:datetime"`
	CreatedAt  time.Time `gorm:"type:datetime"`
}

func (Subscriber) TableName() string {
	return "subscribers"
}

func (m *Subscriber) ToDomain() domain.Subscriber {
	return domain.Subscriber{
		ID:         m.ID,
		Email:      m.Email,
		Subscribed: m.Subscribed,
		UpdatedAt:  m.UpdatedAt,
		CreatedAt:  m.CreatedAt,
	}
}

func NewSubscriberFromDomain(s *domain.Subscriber) *Subscriber {
	return &Subscriber{
		ID:         s.ID,
		Email:      s.Email,
		Subscribed: s.Subscribed,
		UpdatedAt:  s.UpdatedAt,
		CreatedAt:  s.CreatedAt,
	}
}
