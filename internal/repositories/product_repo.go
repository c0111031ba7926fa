package repositories

import "catalog/internal/models"

// ProductRepository defines the interface for product data access. Products
// are never deleted; Update replaces the whole row, embedded variant and
// image lists included.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
}
