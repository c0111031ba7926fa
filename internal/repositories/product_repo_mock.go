package repositories

import (
	"fmt"
	"sync"

	"catalog/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products []models.Product
	index    map[string]int
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		index: make(map[string]int),
	}
}

// GetAll returns all products in insertion order.
func (r *MockProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	product := r.products[i]
	return &product, nil
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	r.index[product.ID] = len(r.products)
	r.products = append(r.products, *product)
	return nil
}

// Update replaces an existing product wholesale.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[product.ID]
	if !ok {
		return fmt.Errorf("product with ID %s: %w", product.ID, ErrNotFound)
	}
	r.products[i] = *product
	return nil
}
