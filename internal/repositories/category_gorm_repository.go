package repositories

import (
	"errors"
	"fmt"

	"catalog/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{
		db: db,
	}
}

// GetAll retrieves all categories from the database in creation order.
func (r *GORMCategoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("created_at").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get all categories: %w", err)
	}
	return categories, nil
}

// GetByID retrieves a single category by its ID from the database.
func (r *GORMCategoryRepository) GetByID(id string) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get category by ID %s: %w", id, err)
	}
	return &category, nil
}

// GetByName retrieves a single category by its unique name.
func (r *GORMCategoryRepository) GetByName(name string) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category with name %s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get category by name %s: %w", name, err)
	}
	return &category, nil
}

// Create creates a new category in the database.
func (r *GORMCategoryRepository) Create(category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// Save writes the whole category row back, including the embedded
// subcategory list. Save updates all fields, zero values included.
func (r *GORMCategoryRepository) Save(category *models.Category) error {
	res := r.db.Save(category)
	if res.Error != nil {
		return fmt.Errorf("failed to save category: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("category with ID %s: %w", category.ID, ErrNotFound)
	}
	return nil
}
