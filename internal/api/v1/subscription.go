package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/netserve/catalog/internal/api/dto"
	ierr "github.com/netserve/catalog/internal/errors"
	"github.com/netserve/catalog/internal/logger"
	"github.com/netserve/catalog/internal/service"
	"github.com/netserve/catalog/internal/types"
)

type SubscriptionHandler struct {
	subscriptionService service.SubscriptionService
	catalogService      service.CatalogService
	logger              *logger.Logger
}

func NewSubscriptionHandler(
	subscriptionService service.SubscriptionService,
	catalogService service.CatalogService,
	logger *logger.Logger,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionService: subscriptionService,
		catalogService:      catalogService,
		logger:              logger,
	}
}

func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var req dto.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request body").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.subscriptionService.CreateSubscription(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	resp, err := h.subscriptionService.GetSubscription(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	var filter types.SubscriptionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid query parameters").
			Mark(ierr.ErrValidation))
		return
	}
	if filter.QueryFilter == nil {
		filter.QueryFilter = types.NewDefaultQueryFilter()
	}

	// Status filters accept the aliases used by older clients.
	if filter.Status != "" {
		status, err := types.ParseSubscriptionStatus(string(filter.Status))
		if err != nil {
			c.Error(err)
			return
		}
		filter.Status = status
	}

	resp, err := h.subscriptionService.ListSubscriptions(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListSubscriptionCatalog serves the interactive subscriptions view with
// rows flattened against price, product, and category.
func (h *SubscriptionHandler) ListSubscriptionCatalog(c *gin.Context) {
	req, err := bindListingRequest(c)
	if err != nil {
		c.Error(err)
		return
	}

	resp, err := h.catalogService.ListSubscriptionCatalog(c.Request.Context(), dto.SubscriptionListingRequest{ListingParams: req})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SubscriptionHandler) ApproveSubscription(c *gin.Context) {
	var req dto.ApproveSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request body").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.subscriptionService.ApproveSubscription(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SubscriptionHandler) RejectSubscription(c *gin.Context) {
	var req dto.RejectSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request body").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.subscriptionService.RejectSubscription(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SubscriptionHandler) CancelSubscription(c *gin.Context) {
	var req dto.CancelSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request body").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.subscriptionService.CancelSubscription(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
