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

type ProductHandler struct {
	productService service.ProductService
	catalogService service.CatalogService
	logger         *logger.Logger
}

func NewProductHandler(
	productService service.ProductService,
	catalogService service.CatalogService,
	logger *logger.Logger,
) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		catalogService: catalogService,
		logger:         logger,
	}
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request body").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.productService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	resp, err := h.productService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	var filter types.ProductFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid query parameters").
			Mark(ierr.ErrValidation))
		return
	}
	if filter.QueryFilter == nil {
		filter.QueryFilter = types.NewDefaultQueryFilter()
	}

	resp, err := h.productService.ListProducts(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListProductCatalog serves the interactive catalog view with search,
// filters, sorting, and pagination applied over the full product set.
func (h *ProductHandler) ListProductCatalog(c *gin.Context) {
	req, err := bindListingRequest(c)
	if err != nil {
		c.Error(err)
		return
	}

	resp, err := h.catalogService.ListProductCatalog(c.Request.Context(), dto.ProductListingRequest{ListingParams: req})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request body").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.productService.UpdateProduct(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.productService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted successfully"})
}
