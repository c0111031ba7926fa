package repositories

import (
	"fmt"
	"sync"

	"catalog/internal/models"

	"github.com/google/uuid"
)

// MockCategoryRepository is an in-memory implementation of CategoryRepository.
type MockCategoryRepository struct {
	categories []models.Category
	index      map[string]int
	mu         sync.RWMutex
}

// NewMockCategoryRepository creates a new instance of MockCategoryRepository.
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		index: make(map[string]int),
	}
}

// GetAll returns all categories in insertion order.
func (r *MockCategoryRepository) GetAll() ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

// GetByID returns a category by its ID.
func (r *MockCategoryRepository) GetByID(id string) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("category with ID %s: %w", id, ErrNotFound)
	}
	category := r.categories[i]
	return &category, nil
}

// GetByName returns a category by its unique name.
func (r *MockCategoryRepository) GetByName(name string) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.categories {
		if c.Name == name {
			category := c
			return &category, nil
		}
	}
	return nil, fmt.Errorf("category with name %s: %w", name, ErrNotFound)
}

// Create adds a new category.
func (r *MockCategoryRepository) Create(category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	r.index[category.ID] = len(r.categories)
	r.categories = append(r.categories, *category)
	return nil
}

// Save replaces an existing category wholesale.
func (r *MockCategoryRepository) Save(category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[category.ID]
	if !ok {
		return fmt.Errorf("category with ID %s: %w", category.ID, ErrNotFound)
	}
	r.categories[i] = *category
	return nil
}
