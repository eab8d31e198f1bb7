package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gouthampai05/the-final-empathway-sub001/domain"
	"github.com/gouthampai05/the-final-empathway-sub001/internal/rest/request"
	"github.com/gouthampai05/the-final-empathway-sub001/internal/rest/response"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// BlogHandler represent the http handler for blogs
type BlogHandler struct {
	Service domain.BlogUsecase
}

const (
	DefaultPageNum = 10
	PageMinNum     = 5
	PageMaxNum     = 30
)

func NewBlogHandler(svc domain.BlogUsecase) *BlogHandler {
	return &BlogHandler{
		Service: svc,
	}
}

// FetchBlogs will fetch published blogs based on given params
func (h *BlogHandler) FetchBlogs(c *gin.Context) {
	numS := c.Query("num")
	num, err := strconv.Atoi(numS)
	if err != nil || num < PageMinNum || num > PageMaxNum {
		num = DefaultPageNum
	}

	cursor := c.Query("cursor")
	ctx := c.Request.Context()

	listB, nextCursor, err := h.Service.Fetch(ctx, cursor, int64(num))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	res := make([]response.Blog, len(listB))
	for i := range listB {
		res[i] = response.NewBlogFromDomain(&listB[i])
	}
	c.Header(`X-Cursor`, nextCursor)
	c.JSON(http.StatusOK, res)
}

// GetByID will get blog by given id
func (h *BlogHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	b, err := h.Service.GetByID(ctx, id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewBlogFromDomain(&b))
}

// GetBySlug will get blog by given slug
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")
	ctx := c.Request.Context()

	b, err := h.Service.GetBySlug(ctx, slug)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewBlogFromDomain(&b))
}

// Store will store the blog by given request body
func (h *BlogHandler) Store(c *gin.Context) {
	var req request.Blog
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	blog := req.ToDomain()
	blog.Author.ID = userID.(int64)

	ctx := c.Request.Context()
	if err := h.Service.Store(ctx, &blog); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewBlogFromDomain(&blog))
}

// Update will update the blog by given param and request body
func (h *BlogHandler) Update(c *gin.Context) {
	var req request.Blog
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := c.Param("id")
	existing, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	role, _ := c.Get("role")
	if existing.Author.ID != userID.(int64) && role != string(domain.RoleAdmin) {
		c.JSON(http.StatusForbidden, ResponseError{Message: domain.ErrForbidden.Error()})
		return
	}

	blog := req.ToDomain()
	blog.ID = id
	blog.Author = existing.Author
	if err := h.Service.Update(c.Request.Context(), &blog); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewBlogFromDomain(&blog))
}

// Delete will delete the blog by given param
func (h *BlogHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// getStatusCode will get the http status code for the given domain error
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)
	switch err {
	case domain.ErrInternalServerError:
		return http.StatusInternalServerError
	case domain.ErrNotFound:
		return http.StatusNotFound
	case domain.ErrConflict:
		return http.StatusConflict
	case domain.ErrBadParamInput:
		return http.StatusBadRequest
	case domain.ErrForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
