package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/shopcore-api/cache"
	"github.com/shopcore-api/dto"
	"github.com/shopcore-api/models"
	"github.com/shopcore-api/repositories"
	"github.com/shopcore-api/utils"
)

const (
	productPageSize = 10
	productCacheTTL = 60 * time.Second
)

// ProductService handles catalog creation, listing, lookup, updates and
// soft deactivation.
type ProductService struct {
	products *repositories.ProductRepository
	cache    *cache.Cache
}

// NewProductService creates a product service. The cache may be nil, in
// which case every listing hits the database.
func NewProductService(products *repositories.ProductRepository, c *cache.Cache) *ProductService {
	return &ProductService{products: products, cache: c}
}

// CreateProduct adds a new catalog record. Stock defaults to 0 when omitted.
func (s *ProductService) CreateProduct(req dto.CreateProductRequest) (models.Product, error) {
	product := models.Product{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Availability: *req.Availability,
		Status:       true,
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}

	product, err := s.products.Create(product)
	if err != nil {
		return models.Product{}, err
	}

	logrus.WithField("productId", product.ID).Info("product created")
	return product, nil
}

// ListAvailableProducts returns one page of products with availability set,
// at most 10 per page. Pages go through a short-lived redis cache.
func (s *ProductService) ListAvailableProducts(ctx context.Context, page int) ([]models.Product, error) {
	if page <= 0 {
		return nil, &utils.ValidationError{Field: "page", Message: "invalid page number"}
	}

	key := fmt.Sprintf("products:available:page=%d", page)
	var cached []models.Product
	if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
		return cached, nil
	}

	offset := (page - 1) * productPageSize
	products, err := s.products.FindAvailable(offset, productPageSize)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, products, productCacheTTL); err != nil {
		logrus.WithError(err).Warn("failed to cache product page")
	}
	return products, nil
}

// GetProductByID retrieves a single product.
func (s *ProductService) GetProductByID(id uint) (models.Product, error) {
	product, err := s.products.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, &utils.NotFoundError{Resource: "product", ID: id}
	} else if err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// UpdateProduct applies a partial patch. A patch that would set price <= 0
// or stock < 0 is rejected before anything is written.
func (s *ProductService) UpdateProduct(id uint, req dto.UpdateProductRequest) (models.Product, error) {
	if req.Price != nil && *req.Price <= 0 {
		return models.Product{}, &utils.ValidationError{Field: "price", Message: "must be greater than zero"}
	}
	if req.Stock != nil && *req.Stock < 0 {
		return models.Product{}, &utils.ValidationError{Field: "stock", Message: "must not be negative"}
	}

	product, err := s.products.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, &utils.NotFoundError{Resource: "product", ID: id}
	} else if err != nil {
		return models.Product{}, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Availability != nil {
		product.Availability = *req.Availability
	}

	return s.products.Save(product)
}

// DeleteProduct deactivates a product by clearing its status flag. The row
// is kept so historical order line items still resolve.
func (s *ProductService) DeleteProduct(id uint) error {
	product, err := s.products.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &utils.NotFoundError{Resource: "product", ID: id}
	} else if err != nil {
		return err
	}

	product.Status = false
	if _, err := s.products.Save(product); err != nil {
		return err
	}

	logrus.WithField("productId", id).Info("product deactivated")
	return nil
}
