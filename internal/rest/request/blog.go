package request

import "github.com/gouthampai05/the-final-empathway-sub001/domain"

type Blog struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	Tags    string `json:"tags"`
	Status  string `json:"status" binding:"omitempty,oneof=draft published"`
}

// ToDomain: Request -> Domain
func (r *Blog) ToDomain() domain.Blog {
	return domain.Blog{
		Title:   r.Title,
		Content: r.Content,
		Tags:    r.Tags,
		Status:  domain.BlogStatus(r.Status),
	}
}
