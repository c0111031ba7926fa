package services

import (
	"errors"
	"fmt"

	"catalog/internal/models"
	"catalog/internal/repositories"

	"github.com/google/uuid"
)

// CategoryService handles business logic for the category taxonomy.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{
		repo: repo,
	}
}

// ListCategories retrieves all categories with their nested subcategories.
func (s *CategoryService) ListCategories() ([]models.Category, error) {
	return s.repo.GetAll()
}

// CreateCategory inserts a new category with an empty subcategory list. The
// name is pre-checked against the store and fails with ErrDuplicateCategory
// on collision; the unique index backstops the check.
func (s *CategoryService) CreateCategory(name string) (*models.Category, error) {
	existing, err := s.repo.GetByName(name)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing category: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateCategory
	}

	category := &models.Category{
		Name:          name,
		SubCategories: []models.SubCategory{},
	}
	if err := s.repo.Create(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

// AddSubCategory appends a new subcategory to an existing category and writes
// the whole category back. The read-then-save pair is not atomic: two
// concurrent appends to the same category are last-writer-wins.
func (s *CategoryService) AddSubCategory(categoryID, name string) (*models.Category, error) {
	category, err := s.repo.GetByID(categoryID)
	if err != nil {
		return nil, err
	}

	category.SubCategories = append(category.SubCategories, models.SubCategory{
		ID:   uuid.New().String(),
		Name: name,
	})

	if err := s.repo.Save(category); err != nil {
		return nil, fmt.Errorf("failed to save category %s: %w", categoryID, err)
	}
	return category, nil
}
