package response

import (
	"github.com/gouthampai05/the-final-empathway-sub001/domain"
)

type Blog struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	Content    string `json:"content,omitempty"`
	Excerpt    string `json:"excerpt"`
	ReadTime   int    `json:"read_time"`
	Tags       string `json:"tags"`
	Status     string `json:"status"`
	AuthorName string `json:"author_name"`
	Likes      int64  `json:"likes"`
	UpdatedAt  string `json:"updated_at"`
	CreatedAt  string `json:"created_at"`
}

// NewBlogFromDomain: Domain -> Response
func NewBlogFromDomain(b *domain.Blog) Blog {
	return Blog{
		ID:         b.ID,
		Title:      b.Title,
		Slug:       b.Slug,
		Content:    b.Content,
		Excerpt:    b.Excerpt,
		ReadTime:   b.ReadTime,
		Tags:       b.Tags,
		Status:     string(b.Status),
		AuthorName: b.Author.Name,
		Likes:      b.Likes,
		UpdatedAt:  b.UpdatedAt.Format(DateTimeFormat),
		CreatedAt:  b.CreatedAt.Format(DateTimeFormat),
	}
}
