package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/indiabills/console/internal/service"
	"github.com/indiabills/console/internal/utils"
)

type CatalogHandler struct {
	catalog *service.CatalogService
}

func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// GetProducts lists products, optionally filtered with ?category=.
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	products := h.catalog.Products(c.Request.Context(), c.Query("category"))
	utils.Success(c, 200, "OK", products)
}

// GetProduct returns one product by id.
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid product id")
		return
	}
	product, ok := h.catalog.ProductByID(c.Request.Context(), id)
	if !ok {
		utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
		return
	}
	utils.Success(c, 200, "OK", product)
}

// GetCategories lists catalog categories.
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	utils.Success(c, 200, "OK", h.catalog.Categories(c.Request.Context()))
}

// GetOffers lists active offers.
func (h *CatalogHandler) GetOffers(c *gin.Context) {
	utils.Success(c, 200, "OK", h.catalog.Offers(c.Request.Context()))
}

// GetSuppliers lists suppliers.
func (h *CatalogHandler) GetSuppliers(c *gin.Context) {
	utils.Success(c, 200, "OK", h.catalog.Suppliers(c.Request.Context()))
}

// GetWarehouses lists warehouses.
func (h *CatalogHandler) GetWarehouses(c *gin.Context) {
	utils.Success(c, 200, "OK", h.catalog.Warehouses(c.Request.Context()))
}

// GetBatches lists stock batches for a product.
func (h *CatalogHandler) GetBatches(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid product id")
		return
	}
	utils.Success(c, 200, "OK", h.catalog.Batches(c.Request.Context(), id))
}
