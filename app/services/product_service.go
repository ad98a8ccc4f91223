package services

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/fabiogif/moday-backoffice/app/models"
	"github.com/fabiogif/moday-backoffice/app/repositories"
	"github.com/fabiogif/moday-backoffice/pkg/audit"
	"github.com/fabiogif/moday-backoffice/pkg/cache"
	"github.com/fabiogif/moday-backoffice/pkg/orm"
	"github.com/fabiogif/moday-backoffice/pkg/pricing"
	"github.com/fabiogif/moday-backoffice/pkg/storage"
)

// ProductInput is the create/update payload for a product.
type ProductInput struct {
	Name        string        `json:"name"        validate:"required,min=2,max=255"`
	Description string        `json:"description" validate:"nullable,max=2000"`
	Price       pricing.Money `json:"price"`
	Active      *bool         `json:"is_active"`
}

// VariationInput adds one variation to a product. Price is a signed
// delta; negative values discount the base price.
type VariationInput struct {
	Name  string        `json:"name" validate:"required,max=255"`
	Price pricing.Money `json:"price"`
}

// OptionalInput adds one optional to a product.
type OptionalInput struct {
	Name  string        `json:"name" validate:"required,max=255"`
	Price pricing.Money `json:"price"`
}

type ProductService struct {
	products *repositories.ProductRepository
}

func NewProductService() *ProductService {
	return &ProductService{products: repositories.NewProductRepository()}
}

// List returns one page of products with image URLs resolved.
func (s *ProductService) List(page, limit int) ([]models.Product, orm.Pagination, error) {
	products, pagination, err := s.products.All(page, limit)
	if err != nil {
		return nil, orm.Pagination{}, err
	}
	resolveImageURLs(products)
	return products, pagination, nil
}

// ListActive returns the active catalogue through the cache.
func (s *ProductService) ListActive() ([]models.Product, error) {
	products, err := s.products.ActiveCached()
	if err != nil {
		return nil, err
	}
	resolveImageURLs(products)
	return products, nil
}

// Find loads one product with nested entities.
func (s *ProductService) Find(id uint) (models.Product, error) {
	product, err := s.products.FindByID(id)
	if err != nil {
		return models.Product{}, err
	}
	if product.ImagePath != "" {
		product.ImageURL = storage.URL(product.ImagePath)
	}
	return product, nil
}

// Create validates and persists a new product.
func (s *ProductService) Create(actorID uint, input ProductInput) (models.Product, error) {
	if input.Price < 0 {
		return models.Product{}, &pricing.Error{
			Kind:   pricing.KindInvalidPrice,
			Field:  "price",
			Detail: "base price must not be negative",
		}
	}

	product := models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Active:      true,
	}
	if input.Active != nil {
		product.Active = *input.Active
	}

	if err := s.products.Create(&product); err != nil {
		return models.Product{}, err
	}

	s.invalidate()
	audit.Record(actorID, "product.created", "product", product.ID, map[string]any{"name": product.Name})
	return product, nil
}

// Update validates and persists changes to an existing product.
func (s *ProductService) Update(actorID, id uint, input ProductInput) (models.Product, error) {
	product, err := s.products.FindByID(id)
	if err != nil {
		return models.Product{}, err
	}

	if input.Price < 0 {
		return models.Product{}, &pricing.Error{
			Kind:   pricing.KindInvalidPrice,
			Field:  "price",
			Detail: "base price must not be negative",
		}
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	if input.Active != nil {
		product.Active = *input.Active
	}

	if err := s.products.Update(&product); err != nil {
		return models.Product{}, err
	}

	s.invalidate()
	audit.Record(actorID, "product.updated", "product", product.ID, nil)
	return product, nil
}

// Delete soft-deletes a product.
func (s *ProductService) Delete(actorID, id uint) error {
	product, err := s.products.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.products.Delete(&product); err != nil {
		return err
	}

	s.invalidate()
	audit.Record(actorID, "product.deleted", "product", id, nil)
	return nil
}

// AddVariation validates and attaches a variation.
func (s *ProductService) AddVariation(actorID, productID uint, input VariationInput) (models.Variation, error) {
	product, err := s.products.FindByID(productID)
	if err != nil {
		return models.Variation{}, err
	}

	candidate := pricing.Variation{Name: input.Name, Price: input.Price}
	if err := pricing.ValidateVariation(candidate); err != nil {
		return models.Variation{}, err
	}
	// A discount deeper than the base price would drive unit prices
	// negative at order time; reject it here.
	if input.Price < 0 && -input.Price > product.Price {
		return models.Variation{}, &pricing.Error{
			Kind:   pricing.KindInvalidPrice,
			Field:  "price",
			Detail: fmt.Sprintf("discount exceeds the base price %s", product.Price),
		}
	}

	variation := models.Variation{ProductID: productID, Name: input.Name, Price: input.Price}
	if err := s.products.CreateVariation(&variation); err != nil {
		return models.Variation{}, err
	}

	s.invalidate()
	audit.Record(actorID, "product.variation_added", "product", productID, map[string]any{"name": input.Name})
	return variation, nil
}

// RemoveVariation detaches a variation from its product.
func (s *ProductService) RemoveVariation(actorID, productID, id uint) error {
	variation, err := s.products.FindVariation(productID, id)
	if err != nil {
		return err
	}
	if err := s.products.DeleteVariation(&variation); err != nil {
		return err
	}

	s.invalidate()
	audit.Record(actorID, "product.variation_removed", "product", productID, nil)
	return nil
}

// AddOptional validates and attaches an optional. Optionals never
// discount, so the non-negative price rule applies.
func (s *ProductService) AddOptional(actorID, productID uint, input OptionalInput) (models.Optional, error) {
	if _, err := s.products.FindByID(productID); err != nil {
		return models.Optional{}, err
	}

	candidate := pricing.Optional{Name: input.Name, Price: input.Price}
	if err := pricing.ValidateOptional(candidate); err != nil {
		return models.Optional{}, err
	}

	optional := models.Optional{ProductID: productID, Name: input.Name, Price: input.Price}
	if err := s.products.CreateOptional(&optional); err != nil {
		return models.Optional{}, err
	}

	s.invalidate()
	audit.Record(actorID, "product.optional_added", "product", productID, map[string]any{"name": input.Name})
	return optional, nil
}

// RemoveOptional detaches an optional from its product.
func (s *ProductService) RemoveOptional(actorID, productID, id uint) error {
	optional, err := s.products.FindOptional(productID, id)
	if err != nil {
		return err
	}
	if err := s.products.DeleteOptional(&optional); err != nil {
		return err
	}

	s.invalidate()
	audit.Record(actorID, "product.optional_removed", "product", productID, nil)
	return nil
}

// UploadImage stores the product image on the configured disk and
// records its path.
func (s *ProductService) UploadImage(actorID, productID uint, filename string, r io.Reader) (models.Product, error) {
	product, err := s.products.FindByID(productID)
	if err != nil {
		return models.Product{}, err
	}

	ext := strings.ToLower(path.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		return models.Product{}, fieldErrf("image", "The image must be a jpg, png or webp file.")
	}

	key := fmt.Sprintf("products/%d/image%s", productID, ext)
	if err := storage.PutStream(key, r); err != nil {
		return models.Product{}, err
	}

	product.ImagePath = key
	if err := s.products.Update(&product); err != nil {
		return models.Product{}, err
	}

	s.invalidate()
	audit.Record(actorID, "product.image_uploaded", "product", productID, map[string]any{"path": key})

	product.ImageURL = storage.URL(key)
	return product, nil
}

func (s *ProductService) invalidate() {
	cache.Forget(repositories.ProductListCacheKey)
}

func resolveImageURLs(products []models.Product) {
	for i := range products {
		if products[i].ImagePath != "" {
			products[i].ImageURL = storage.URL(products[i].ImagePath)
		}
	}
}
