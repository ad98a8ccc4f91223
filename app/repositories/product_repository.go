package repositories

import (
	"time"

	"github.com/fabiogif/moday-backoffice/app/models"
	"github.com/fabiogif/moday-backoffice/pkg/orm"
)

// Cache key and TTL for the full active catalogue listing.
const (
	ProductListCacheKey = "products:active"
	productListCacheTTL = 5 * time.Minute
)

// ProductRepository handles database operations for Product and its
// nested variations and optionals.
type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// FindByID loads a product with variations and optionals preloaded.
func (r *ProductRepository) FindByID(id uint) (models.Product, error) {
	var product models.Product
	err := orm.DB().
		Model(&models.Product{}).
		Preload("Variations").
		Preload("Optionals").
		Where("id = ?", id).
		First(&product)
	return product, err
}

// All returns one page of products with nested entities preloaded.
func (r *ProductRepository) All(page, limit int) ([]models.Product, orm.Pagination, error) {
	var products []models.Product
	pagination, err := orm.DB().
		Model(&models.Product{}).
		Preload("Variations").
		Preload("Optionals").
		Order("id").
		GetWithPagination(&products, page, limit)
	return products, pagination, err
}

// ActiveCached loads the active catalogue through the read-through cache.
func (r *ProductRepository) ActiveCached() ([]models.Product, error) {
	var products []models.Product
	err := orm.DB().
		Model(&models.Product{}).
		Preload("Variations").
		Preload("Optionals").
		Where("active = ?", true).
		Cache(ProductListCacheKey, productListCacheTTL, &products)
	return products, err
}

// Create persists a new product, cascading nested variations/optionals.
func (r *ProductRepository) Create(product *models.Product) error {
	return orm.DB().Create(product)
}

// Update persists changes to an existing product.
func (r *ProductRepository) Update(product *models.Product) error {
	return orm.DB().Save(product)
}

// Delete soft-deletes a product.
func (r *ProductRepository) Delete(product *models.Product) error {
	return orm.DB().Delete(product)
}

// CreateVariation adds a variation to a product.
func (r *ProductRepository) CreateVariation(v *models.Variation) error {
	return orm.DB().Create(v)
}

// FindVariation loads a variation scoped to its product.
func (r *ProductRepository) FindVariation(productID, id uint) (models.Variation, error) {
	var v models.Variation
	err := orm.DB().Model(&models.Variation{}).
		Where("product_id = ? AND id = ?", productID, id).
		First(&v)
	return v, err
}

// DeleteVariation removes a variation.
func (r *ProductRepository) DeleteVariation(v *models.Variation) error {
	return orm.DB().Delete(v)
}

// CreateOptional adds an optional to a product.
func (r *ProductRepository) CreateOptional(o *models.Optional) error {
	return orm.DB().Create(o)
}

// FindOptional loads an optional scoped to its product.
func (r *ProductRepository) FindOptional(productID, id uint) (models.Optional, error) {
	var o models.Optional
	err := orm.DB().Model(&models.Optional{}).
		Where("product_id = ? AND id = ?", productID, id).
		First(&o)
	return o, err
}

// DeleteOptional removes an optional.
func (r *ProductRepository) DeleteOptional(o *models.Optional) error {
	return orm.DB().Delete(o)
}

// Count returns the number of live products.
func (r *ProductRepository) Count() (int64, error) {
	return orm.DB().Model(&models.Product{}).Count()
}
