package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shopcore-api/dto"
	"github.com/shopcore-api/services"
)

// ProductController maps the /products routes onto the product service
type ProductController struct {
	service *services.ProductService
}

// NewProductController creates a product controller
func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{service: service}
}

// List returns one page of available products. A missing or non-numeric
// page parameter is normalized to 1; the service rejects page <= 0.
func (ctl *ProductController) List(c *gin.Context) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		page = 1
	}

	products, err := ctl.service.ListAvailableProducts(c.Request.Context(), page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// Get returns a single product
func (ctl *ProductController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	product, err := ctl.service.GetProductByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// Create adds a new product to the catalog
func (ctl *ProductController) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	product, err := ctl.service.CreateProduct(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// Update applies a partial patch to a product
func (ctl *ProductController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	product, err := ctl.service.UpdateProduct(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// Delete deactivates a product
func (ctl *ProductController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctl.service.DeleteProduct(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
