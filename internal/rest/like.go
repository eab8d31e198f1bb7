package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gouthampai05/the-final-empathway-sub001/domain"
	"github.com/gouthampai05/the-final-empathway-sub001/internal/fingerprint"
	"github.com/gouthampai05/the-final-empathway-sub001/internal/rest/request"
	"github.com/gouthampai05/the-final-empathway-sub001/internal/rest/response"
)

const msgBlogIDRequired = "Blog ID is required"

// LikeHandler represent the http handler for the like toggle
type LikeHandler struct {
	Service domain.LikeUsecase
}

func NewLikeHandler(svc domain.LikeUsecase) *LikeHandler {
	return &LikeHandler{
		Service: svc,
	}
}

// Toggle flips the requesting device's like on a blog and returns the new
// state together with the counter.
func (h *LikeHandler) Toggle(c *gin.Context) {
	var req request.LikeToggle
	if err := c.ShouldBindJSON(&req); err != nil || req.BlogID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgBlogIDRequired})
		return
	}

	deviceHash := fingerprint.FromRequest(c.Request)
	status, err := h.Service.Toggle(c.Request.Context(), req.BlogID, deviceHash)
	if err != nil {
		h.writeToggleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewLikeStatusFromDomain(status))
}

// Status reads the requesting device's like state on a blog.
func (h *LikeHandler) Status(c *gin.Context) {
	blogID := c.Query("blogId")
	if blogID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgBlogIDRequired})
		return
	}

	deviceHash := fingerprint.FromRequest(c.Request)
	status, err := h.Service.Status(c.Request.Context(), blogID, deviceHash)
	if err != nil {
		if errors.Is(err, domain.ErrBadParamInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": msgBlogIDRequired})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, response.NewLikeStatusFromDomain(status))
}

func (h *LikeHandler) writeToggleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrBadParamInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgBlogIDRequired})
	case errors.Is(err, domain.ErrLikeInsert):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add like"})
	case errors.Is(err, domain.ErrLikeRemove):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove like"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
