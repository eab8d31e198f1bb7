package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gouthampai05/the-final-empathway-sub001/domain"
	"github.com/gouthampai05/the-final-empathway-sub001/internal/rest/request"
	"github.com/gouthampai05/the-final-empathway-sub001/internal/rest/response"
)

// NewsletterHandler represent the http handler for subscriptions and campaigns
type NewsletterHandler struct {
	Service domain.NewsletterUsecase
}

func NewNewsletterHandler(svc domain.NewsletterUsecase) *NewsletterHandler {
	return &NewsletterHandler{
		Service: svc,
	}
}

func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req request.Subscribe
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.Subscribe(c.Request.Context(), req.Email); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *NewsletterHandler) Unsubscribe(c *gin.Context) {
	var req request.Subscribe
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.Unsubscribe(c.Request.Context(), req.Email); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *NewsletterHandler) CreateCampaign(c *gin.Context) {
	var req request.Campaign
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	campaign := req.ToDomain()
	if err := h.Service.CreateCampaign(c.Request.Context(), &campaign); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewCampaignFromDomain(&campaign))
}

func (h *NewsletterHandler) FetchCampaigns(c *gin.Context) {
	campaigns, err := h.Service.FetchCampaigns(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.Campaign, len(campaigns))
	for i := range campaigns {
		res[i] = response.NewCampaignFromDomain(&campaigns[i])
	}
	c.JSON(http.StatusOK, res)
}

func (h *NewsletterHandler) SendCampaign(c *gin.Context) {
	id := c.Param("id")

	campaign, err := h.Service.SendCampaign(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewCampaignFromDomain(&campaign))
}
