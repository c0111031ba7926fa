package services_test

import (
	"testing"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepo is a mock implementation of repositories.ProductRepository
type MockProductRepo struct {
	mock.Mock
}

func (m *MockProductRepo) GetAll() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepo) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepo) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepo) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func TestProductService_ParseVariants(t *testing.T) {
	service := services.NewProductService(new(MockProductRepo), nil)

	// Well-formed payload.
	variants, err := service.ParseVariants(`[{"ram":"4GB","price":199,"qty":10},{"ram":"8GB","price":249.5,"qty":0}]`)
	assert.NoError(t, err)
	assert.Equal(t, []models.Variant{
		{Ram: "4GB", Price: 199, Qty: 10},
		{Ram: "8GB", Price: 249.5, Qty: 0},
	}, variants)

	// Empty array is valid.
	variants, err = service.ParseVariants(`[]`)
	assert.NoError(t, err)
	assert.Empty(t, variants)

	// Not JSON at all.
	_, err = service.ParseVariants(`not json`)
	assert.ErrorIs(t, err, services.ErrMalformedVariants)

	// Empty field (variants never submitted).
	_, err = service.ParseVariants("")
	assert.ErrorIs(t, err, services.ErrMalformedVariants)

	// Missing required field: qty absent is not qty zero.
	_, err = service.ParseVariants(`[{"ram":"4GB","price":199}]`)
	assert.ErrorIs(t, err, services.ErrMalformedVariants)

	// Negative price.
	_, err = service.ParseVariants(`[{"ram":"4GB","price":-1,"qty":10}]`)
	assert.ErrorIs(t, err, services.ErrMalformedVariants)

	// Negative quantity.
	_, err = service.ParseVariants(`[{"ram":"4GB","price":199,"qty":-2}]`)
	assert.ErrorIs(t, err, services.ErrMalformedVariants)

	// An object instead of an array.
	_, err = service.ParseVariants(`{"ram":"4GB","price":199,"qty":10}`)
	assert.ErrorIs(t, err, services.ErrMalformedVariants)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepo)
	service := services.NewProductService(mockRepo, nil)

	in := services.ProductInput{
		Title:       "Galaxy S21",
		Category:    "Phones",
		SubCategory: "Android",
		Description: "Flagship",
		Variants:    []models.Variant{{Ram: "8GB", Price: 799, Qty: 3}},
	}
	images := []string{"/uploads/1-1.jpg"}

	mockRepo.On("Create", mock.MatchedBy(func(p *models.Product) bool {
		return p.Title == "Galaxy S21" && len(p.Images) == 1 && len(p.Variants) == 1
	})).Return(nil).Once()

	product, err := service.CreateProduct(in, images)
	assert.NoError(t, err)
	assert.Equal(t, "Galaxy S21", product.Title)
	assert.Equal(t, []string{"/uploads/1-1.jpg"}, []string(product.Images))
	assert.Equal(t, in.Variants, []models.Variant(product.Variants))
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct_KeepsImages(t *testing.T) {
	mockRepo := new(MockProductRepo)
	service := services.NewProductService(mockRepo, nil)

	existing := &models.Product{
		ID:          "prod-1",
		Title:       "Galaxy S21",
		Category:    "Phones",
		SubCategory: "Android",
		Variants:    []models.Variant{{Ram: "8GB", Price: 799, Qty: 3}},
		Images:      []string{"/uploads/1-1.jpg"},
	}

	mockRepo.On("GetByID", "prod-1").Return(existing, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.Product")).Return(nil).Once()

	in := services.ProductInput{
		Title:       "Galaxy S21 FE",
		Category:    "Phones",
		SubCategory: "Android",
		Description: "Fan edition",
		Variants:    []models.Variant{{Ram: "6GB", Price: 599, Qty: 7}},
	}

	updated, err := service.UpdateProduct("prod-1", in, services.KeepImages())
	assert.NoError(t, err)
	// Scalars and variants are a full overwrite.
	assert.Equal(t, "Galaxy S21 FE", updated.Title)
	assert.Equal(t, "Fan edition", updated.Description)
	assert.Equal(t, in.Variants, []models.Variant(updated.Variants))
	// Stored images carried forward untouched.
	assert.Equal(t, []string{"/uploads/1-1.jpg"}, []string(updated.Images))
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct_ReplacesImages(t *testing.T) {
	mockRepo := new(MockProductRepo)
	service := services.NewProductService(mockRepo, nil)

	existing := &models.Product{
		ID:     "prod-1",
		Title:  "Galaxy S21",
		Images: []string{"/uploads/1-1.jpg"},
	}

	mockRepo.On("GetByID", "prod-1").Return(existing, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.Product")).Return(nil).Once()

	in := services.ProductInput{Title: "Galaxy S21", Variants: []models.Variant{}}
	newRefs := []string{"/uploads/2-2.jpg", "/uploads/2-3.jpg"}

	updated, err := service.UpdateProduct("prod-1", in, services.ReplaceImages(newRefs))
	assert.NoError(t, err)
	// Old reference is gone, the new set stands alone.
	assert.Equal(t, newRefs, []string(updated.Images))
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepo)
	service := services.NewProductService(mockRepo, nil)

	mockRepo.On("GetByID", "missing").Return(nil, notFoundErr("product with ID missing")).Once()

	_, err := service.UpdateProduct("missing", services.ProductInput{}, services.KeepImages())
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepo)
	service := services.NewProductService(mockRepo, nil)

	expected := &models.Product{ID: "prod-1", Title: "Galaxy S21"}
	mockRepo.On("GetByID", "prod-1").Return(expected, nil).Once()

	product, err := service.GetProductByID("prod-1")
	assert.NoError(t, err)
	assert.Equal(t, expected, product)
	mockRepo.AssertExpectations(t)

	mockRepo.On("GetByID", "missing").Return(nil, notFoundErr("product with ID missing")).Once()
	_, err = service.GetProductByID("missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
