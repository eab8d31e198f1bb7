package rest

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gouthampai05/the-final-empathway-sub001/domain"
	"github.com/gouthampai05/the-final-empathway-sub001/internal/rest/response"
	"github.com/gouthampai05/the-final-empathway-sub001/internal/tableview"
)

// AdminHandler serves the dashboard list endpoints. Each request drives a
// tableview controller over the full row set: search and filter values come
// from query params, the response carries the page slice plus the
// pagination window.
type AdminHandler struct {
	Blogs      domain.BlogUsecase
	Newsletter domain.NewsletterUsecase
}

func NewAdminHandler(blogs domain.BlogUsecase, newsletter domain.NewsletterUsecase) *AdminHandler {
	return &AdminHandler{
		Blogs:      blogs,
		Newsletter: newsletter,
	}
}

type tableResponse[T any] struct {
	Data             []T                   `json:"data"`
	Total            int                   `json:"total"`
	HasActiveFilters bool                  `json:"has_active_filters"`
	Pagination       *tableview.Pagination `json:"pagination,omitempty"`
}

func filterBlogs(items []domain.Blog, searchTerm string, filters map[string]string) []domain.Blog {
	search := strings.ToLower(strings.TrimSpace(searchTerm))
	status := filters["status"]

	var out []domain.Blog
	for _, b := range items {
		if status != "" && status != "All" && string(b.Status) != status {
			continue
		}
		if search != "" {
			haystack := strings.ToLower(b.Title + " " + b.Excerpt + " " + b.Author.Name + " " + b.Tags)
			if !strings.Contains(haystack, search) {
				continue
			}
		}
		out = append(out, b)
	}
	return out
}

// ListBlogs drives the blogs dashboard table
func (h *AdminHandler) ListBlogs(c *gin.Context) {
	blogs, err := h.Blogs.FetchAll(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	tv := tableview.New(blogs, func(b domain.Blog) string { return b.ID }, filterBlogs, perPageParam(c))
	tv.SetSearchTerm(c.Query("search"))
	if status := c.Query("status"); status != "" {
		tv.SetFilter("status", status)
	}
	tv.GoToPage(pageParam(c))

	page := tv.PaginatedData()
	res := make([]response.Blog, len(page))
	for i := range page {
		res[i] = response.NewBlogFromDomain(&page[i])
		res[i].Content = "" // list view never ships full bodies
	}

	c.JSON(http.StatusOK, tableResponse[response.Blog]{
		Data:             res,
		Total:            len(tv.FilteredData()),
		HasActiveFilters: tv.HasActiveFilters(),
		Pagination:       tv.Pagination(),
	})
}

func filterSubscribers(items []domain.Subscriber, searchTerm string, filters map[string]string) []domain.Subscriber {
	search := strings.ToLower(strings.TrimSpace(searchTerm))
	state := filters["state"]

	var out []domain.Subscriber
	for _, s := range items {
		switch state {
		case "", "All":
		case "active":
			if !s.Subscribed {
				continue
			}
		case "inactive":
			if s.Subscribed {
				continue
			}
		}
		if search != "" && !strings.Contains(strings.ToLower(s.Email), search) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// ListSubscribers drives the subscribers dashboard table
func (h *AdminHandler) ListSubscribers(c *gin.Context) {
	subs, err := h.Newsletter.FetchSubscribers(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	tv := tableview.New(subs, func(s domain.Subscriber) string { return s.ID }, filterSubscribers, perPageParam(c))
	tv.SetSearchTerm(c.Query("search"))
	if state := c.Query("state"); state != "" {
		tv.SetFilter("state", state)
	}
	tv.GoToPage(pageParam(c))

	page := tv.PaginatedData()
	res := make([]response.Subscriber, len(page))
	for i := range page {
		res[i] = response.NewSubscriberFromDomain(&page[i])
	}

	c.JSON(http.StatusOK, tableResponse[response.Subscriber]{
		Data:             res,
		Total:            len(tv.FilteredData()),
		HasActiveFilters: tv.HasActiveFilters(),
		Pagination:       tv.Pagination(),
	})
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func perPageParam(c *gin.Context) int {
	perPage, err := strconv.Atoi(c.Query("per_page"))
	if err != nil || perPage < 1 || perPage > PageMaxNum {
		return tableview.DefaultItemsPerPage
	}
	return perPage
}
