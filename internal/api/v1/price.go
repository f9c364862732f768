package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/netserve/catalog/internal/api/dto"
	ierr "github.com/netserve/catalog/internal/errors"
	"github.com/netserve/catalog/internal/logger"
	"github.com/netserve/catalog/internal/service"
)

type PriceHandler struct {
	priceService service.PriceService
	logger       *logger.Logger
}

func NewPriceHandler(
	priceService service.PriceService,
	logger *logger.Logger,
) *PriceHandler {
	return &PriceHandler{
		priceService: priceService,
		logger:       logger,
	}
}

func (h *PriceHandler) CreatePrice(c *gin.Context) {
	var req dto.CreatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request body").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.priceService.CreatePrice(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *PriceHandler) GetPrice(c *gin.Context) {
	resp, err := h.priceService.GetPrice(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PriceHandler) ListPricesByProduct(c *gin.Context) {
	resp, err := h.priceService.ListPricesByProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PriceHandler) UpdatePrice(c *gin.Context) {
	var req dto.UpdatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request body").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.priceService.UpdatePrice(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PriceHandler) DeletePrice(c *gin.Context) {
	if err := h.priceService.DeletePrice(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "price deleted successfully"})
}
