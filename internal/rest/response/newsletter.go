package response

import "github.com/gouthampai05/the-final-empathway-sub001/domain"

type Subscriber struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Subscribed bool   `json:"subscribed"`
	CreatedAt  string `json:"created_at"`
}

func NewSubscriberFromDomain(s *domain.Subscriber) Subscriber {
	return Subscriber{
		ID:         s.ID,
		Email:      s.Email,
		Subscribed: s.Subscribed,
		CreatedAt:  s.CreatedAt.Format(DateTimeFormat),
	}
}

type Campaign struct {
	ID         string `json:"id"`
	Subject    string `json:"subject"`
	Body       string `json:"body,omitempty"`
	Status     string `json:"status"`
	Recipients int64  `json:"recipients"`
	SentAt     string `json:"sent_at,omitempty"`
	CreatedAt  string `json:"created_at"`
}

func NewCampaignFromDomain(c *domain.Campaign) Campaign {
	res := Campaign{
		ID:         c.ID,
		Subject:    c.Subject,
		Body:       c.Body,
		Status:     string(c.Status),
		Recipients: c.Recipients,
		CreatedAt:  c.CreatedAt.Format(DateTimeFormat),
	}
	if c.SentAt != nil {
		res.SentAt = c.SentAt.Format(DateTimeFormat)
	}
	return res
}
