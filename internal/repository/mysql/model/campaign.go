package model

import (
	"time"

	"github.com/gouthampai05/the-final-empathway-sub001/domain"
)

type Campaign struct {
	ID         string     `gorm:"primaryKey;type:char(36)"`
	Subject    string     `gorm:"type:varchar(255);not null"`
	Body       string     `gorm:"type:longtext;not null"`
	Status     string     `gorm:"type:varchar(16);default:'draft';index"`
	Recipients int64      `gorm:"default:0"`
	SentAt     *time.Time `gorm:"type:datetime"`
	UpdatedAt  time.Time  `gorm:"type:datetime"`
	CreatedAt  time.Time  `gorm:"type:datetime"`
}

func (Campaign) TableName() string {
	return "campaigns"
}

func (m *Campaign) ToDomain() domain.Campaign {
	return domain.Campaign{
		ID:         m.ID,
		Subject:    m.Subject,
		Body:       m.Body,
		Status:     domain.CampaignStatus(m.Status),
		Recipients: m.Recipients,
		SentAt:     m.SentAt,
		UpdatedAt:  m.UpdatedAt,
		CreatedAt:  m.CreatedAt,
	}
}

func NewCampaignFromDomain(c *domain.Campaign) *Campaign {
	return &Campaign{
		ID:         c.ID,
		Subject:    c.Subject,
		Body:       c.Body,
		Status:     string(c.Status),
		Recipients: c.Recipients,
		SentAt:     c.SentAt,
		UpdatedAt:  c.UpdatedAt,
		CreatedAt:  c.CreatedAt,
	}
}
