package domain

import (
	"context"
	"time"
)

type CampaignStatus string

const (
	CampaignStatusDraft CampaignStatus = "draft"
	CampaignStatusSent  CampaignStatus = "sent"
)

// Subscriber is a newsletter recipient.
type Subscriber struct {
	ID         string    // UUID identifier
	Email      string    // Unique email address
	Subscribed bool      // false after unsubscribe, row kept for audit
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Campaign is an email campaign addressed to the active subscribers.
// Actual delivery is handled outside this service; sending here records
// the recipient count and flips the status.
type Campaign struct {
	ID         string
	Subject    string
	Body       string // Sanitized HTML
	Status     CampaignStatus
	Recipients int64 // Number of active subscribers at send time
	SentAt     *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type SubscriberRepository interface {
	// GetByEmail returns ErrNotFound if the email was never subscribed.
	GetByEmail(ctx context.Context, email string) (Subscriber, error)

	// FetchAll retrieves every subscriber row, active or not.
	FetchAll(ctx context.Context) ([]Subscriber, error)

	// CountActive returns the number of currently subscribed recipients.
	CountActive(ctx context.Context) (int64, error)

	Store(ctx context.Context, s *Subscriber) error
	Update(ctx context.Context, s *Subscriber) error
}

type CampaignRepository interface {
	GetByID(ctx context.Context, id string) (Campaign, error)
	FetchAll(ctx context.Context) ([]Campaign, error)
	Store(ctx context.Context, c *Campaign) error
	Update(ctx context.Context, c *Campaign) error
}

type NewsletterUsecase interface {
	// Subscribe creates a subscriber or re-activates an unsubscribed one.
	Subscribe(ctx context.Context, email string) error

	// Unsubscribe deactivates a subscriber.
	// Returns ErrNotFound if the email was never subscribed.
	Unsubscribe(ctx context.Context, email string) error

	FetchSubscribers(ctx context.Context) ([]Subscriber, error)

	CreateCampaign(ctx context.Context, c *Campaign) error
	FetchCampaigns(ctx context.Context) ([]Campaign, error)

	// SendCampaign marks a draft campaign sent and records the recipient
	// count. Returns ErrConflict if the campaign was already sent.
	SendCampaign(ctx context.Context, id string) (Campaign, error)
}
