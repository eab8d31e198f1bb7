package request

import "github.com/gouthampai05/the-final-empathway-sub001/domain"

type Subscribe struct {
	Email string `json:"email" binding:"required,email"`
}

type Campaign struct {
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
}

// ToDomain: Request -> Domain
func (r *Campaign) ToDomain() domain.Campaign {
	return domain.Campaign{
		Subject: r.Subject,
		Body:    r.Body,
	}
}
