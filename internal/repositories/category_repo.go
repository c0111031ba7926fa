package repositories

import "catalog/internal/models"

// CategoryRepository defines the interface for category data access.
// Subcategories are embedded in the category row, so there is no separate
// subcategory access path: callers read the whole category, modify its list,
// and write the whole category back with Save.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	GetByID(id string) (*models.Category, error)
	GetByName(name string) (*models.Category, error)
	Create(category *models.Category) error
	Save(category *models.Category) error
}
