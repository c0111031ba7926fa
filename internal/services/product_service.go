package services

import (
	"encoding/json"
	"fmt"
	"log"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/pkg/rabbitmq"

	"github.com/go-playground/validator/v10"
)

// ProductInput carries the scalar fields and the already-parsed variant list
// for a product write. On update every field overwrites the stored value
// unconditionally; callers resubmit anything they want kept.
type ProductInput struct {
	Title       string
	Category    string
	SubCategory string
	Description string
	Variants    []models.Variant
}

// ImageUpdate is the explicit instruction for what UpdateProduct does with
// the stored image list: keep it untouched, or replace it wholesale with
// Refs. Old and new images are never merged.
type ImageUpdate struct {
	Replace bool
	Refs    []string
}

// KeepImages carries the stored image list forward unchanged.
func KeepImages() ImageUpdate {
	return ImageUpdate{}
}

// ReplaceImages substitutes the stored image list with exactly refs.
func ReplaceImages(refs []string) ImageUpdate {
	return ImageUpdate{Replace: true, Refs: refs}
}

// variantForm is the wire shape of one variant inside the embedded JSON
// array. Pointer fields distinguish a missing key from a zero value.
type variantForm struct {
	Ram   *string  `json:"ram" validate:"required"`
	Price *float64 `json:"price" validate:"required,gte=0"`
	Qty   *int     `json:"qty" validate:"required,gte=0"`
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo     repositories.ProductRepository
	mqClient *rabbitmq.Client // nil when no broker is configured
	validate *validator.Validate
}

// NewProductService creates a new ProductService. mqClient may be nil, in
// which case no catalog events are published.
func NewProductService(repo repositories.ProductRepository, mqClient *rabbitmq.Client) *ProductService {
	return &ProductService{
		repo:     repo,
		mqClient: mqClient,
		validate: validator.New(),
	}
}

// ParseVariants decodes the embedded JSON array of variants sent as a raw
// multipart field. It fails closed with ErrMalformedVariants on any parse
// error, missing field, or negative price/qty.
func (s *ProductService) ParseVariants(text string) ([]models.Variant, error) {
	var forms []variantForm
	if err := json.Unmarshal([]byte(text), &forms); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedVariants, err)
	}

	variants := make([]models.Variant, 0, len(forms))
	for i, f := range forms {
		if err := s.validate.Struct(f); err != nil {
			return nil, fmt.Errorf("%w: variant %d: %v", ErrMalformedVariants, i, err)
		}
		variants = append(variants, models.Variant{
			Ram:   *f.Ram,
			Price: *f.Price,
			Qty:   *f.Qty,
		})
	}
	return variants, nil
}

// GetAllProducts retrieves all products, full documents.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct persists a new product with the given initial image
// references and publishes a product.created event.
func (s *ProductService) CreateProduct(in ProductInput, images []string) (*models.Product, error) {
	product := &models.Product{
		Title:       in.Title,
		Category:    in.Category,
		SubCategory: in.SubCategory,
		Description: in.Description,
		Variants:    in.Variants,
		Images:      images,
	}

	if err := s.repo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.publishEvent("product.created", product)
	return product, nil
}

// UpdateProduct overwrites an existing product's scalar fields and variant
// list with the supplied values and applies the image instruction: keep the
// stored list, or replace it with exactly the new references. It fails with
// the repository's not-found error if the id does not resolve.
func (s *ProductService) UpdateProduct(id string, in ProductInput, images ImageUpdate) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	product.Title = in.Title
	product.Category = in.Category
	product.SubCategory = in.SubCategory
	product.Description = in.Description
	product.Variants = in.Variants
	if images.Replace {
		product.Images = images.Refs
	}

	if err := s.repo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product %s: %w", id, err)
	}

	s.publishEvent("product.updated", product)
	return product, nil
}

// publishEvent emits a catalog event for downstream consumers. Publishing is
// best-effort: a broker failure is logged, never surfaced to the request.
func (s *ProductService) publishEvent(kind string, product *models.Product) {
	if s.mqClient == nil {
		return
	}

	body, err := json.Marshal(map[string]interface{}{
		"productID": product.ID,
		"title":     product.Title,
		"category":  product.Category,
	})
	if err != nil {
		log.Printf("Failed to marshal %s event for product %s: %v", kind, product.ID, err)
		return
	}

	if err := s.mqClient.Publish(kind, body); err != nil {
		log.Printf("Warning: Failed to publish %s event for product %s: %v", kind, product.ID, err)
	}
}
