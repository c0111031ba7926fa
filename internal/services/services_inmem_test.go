package services_test

import (
	"testing"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests run the services against the in-memory repositories, the same
// store implementations main can be wired with when no database is around.

func TestCategoryService_InMemoryStore(t *testing.T) {
	repo := repositories.NewMockCategoryRepository()
	service := services.NewCategoryService(repo)

	phones, err := service.CreateCategory("Phones")
	require.NoError(t, err)
	laptops, err := service.CreateCategory("Laptops")
	require.NoError(t, err)

	// The duplicate pre-check works against the real store too.
	_, err = service.CreateCategory("Phones")
	assert.ErrorIs(t, err, services.ErrDuplicateCategory)

	// Appends accumulate in order on the persisted row.
	_, err = service.AddSubCategory(phones.ID, "Android")
	require.NoError(t, err)
	updated, err := service.AddSubCategory(phones.ID, "iOS")
	require.NoError(t, err)
	require.Len(t, updated.SubCategories, 2)
	assert.Equal(t, "Android", updated.SubCategories[0].Name)
	assert.Equal(t, "iOS", updated.SubCategories[1].Name)

	// Listing preserves insertion order and reflects the appended state.
	categories, err := service.ListCategories()
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, phones.ID, categories[0].ID)
	assert.Equal(t, laptops.ID, categories[1].ID)
	assert.Len(t, categories[0].SubCategories, 2)
	assert.Empty(t, categories[1].SubCategories)

	_, err = service.AddSubCategory("never-created", "x")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestProductService_InMemoryStore(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	service := services.NewProductService(repo, nil)

	created, err := service.CreateProduct(services.ProductInput{
		Title:       "Galaxy S21",
		Category:    "Phones",
		SubCategory: "Android",
		Description: "Flagship",
		Variants:    []models.Variant{{Ram: "4GB", Price: 199, Qty: 10}},
	}, []string{"/uploads/1-1.jpg"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	// Update without an image instruction keeps the stored list while
	// everything else is overwritten.
	updated, err := service.UpdateProduct(created.ID, services.ProductInput{
		Title:    "Galaxy S21 FE",
		Category: "Phones",
		Variants: []models.Variant{{Ram: "6GB", Price: 599, Qty: 7}},
	}, services.KeepImages())
	require.NoError(t, err)
	assert.Equal(t, []string{"/uploads/1-1.jpg"}, []string(updated.Images))

	// Replacing swaps the list wholesale, and the store holds the result.
	_, err = service.UpdateProduct(created.ID, services.ProductInput{
		Title:    "Galaxy S21 FE",
		Variants: []models.Variant{},
	}, services.ReplaceImages([]string{"/uploads/2-2.jpg", "/uploads/2-3.jpg"}))
	require.NoError(t, err)

	fetched, err := service.GetProductByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"/uploads/2-2.jpg", "/uploads/2-3.jpg"}, []string(fetched.Images))
	assert.Equal(t, "Galaxy S21 FE", fetched.Title)

	// Listing preserves insertion order.
	second, err := service.CreateProduct(services.ProductInput{Title: "Pixel 9"}, nil)
	require.NoError(t, err)
	products, err := service.GetAllProducts()
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, created.ID, products[0].ID)
	assert.Equal(t, second.ID, products[1].ID)

	_, err = service.GetProductByID("never-created")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
