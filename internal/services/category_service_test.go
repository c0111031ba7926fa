package services_test

import (
	"testing"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCategoryRepo is a mock implementation of repositories.CategoryRepository
type MockCategoryRepo struct {
	mock.Mock
}

func (m *MockCategoryRepo) GetAll() ([]models.Category, error) {
	args := m.Called()
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepo) GetByID(id string) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepo) GetByName(name string) (*models.Category, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepo) Create(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepo) Save(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func TestCategoryService_CreateCategory(t *testing.T) {
	mockRepo := new(MockCategoryRepo)
	service := services.NewCategoryService(mockRepo)

	// New name: created with an empty (non-nil) subcategory list.
	mockRepo.On("GetByName", "Phones").Return(nil, notFoundErr("category with name Phones")).Once()
	mockRepo.On("Create", mock.MatchedBy(func(c *models.Category) bool {
		return c.Name == "Phones" && c.SubCategories != nil && len(c.SubCategories) == 0
	})).Return(nil).Once()

	category, err := service.CreateCategory("Phones")
	assert.NoError(t, err)
	assert.Equal(t, "Phones", category.Name)
	assert.Empty(t, category.SubCategories)
	mockRepo.AssertExpectations(t)

	// Colliding name.
	mockRepo.On("GetByName", "Phones").Return(&models.Category{ID: "cat-1", Name: "Phones"}, nil).Once()
	_, err = service.CreateCategory("Phones")
	assert.ErrorIs(t, err, services.ErrDuplicateCategory)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_AddSubCategory(t *testing.T) {
	mockRepo := new(MockCategoryRepo)
	service := services.NewCategoryService(mockRepo)

	existing := &models.Category{
		ID:   "cat-1",
		Name: "Phones",
		SubCategories: []models.SubCategory{
			{ID: "sub-1", Name: "Android"},
		},
	}

	mockRepo.On("GetByID", "cat-1").Return(existing, nil).Once()
	mockRepo.On("Save", mock.AnythingOfType("*models.Category")).Return(nil).Once()

	updated, err := service.AddSubCategory("cat-1", "iOS")
	assert.NoError(t, err)
	assert.Len(t, updated.SubCategories, 2)
	// Appended at the end, preceding entries untouched.
	assert.Equal(t, "Android", updated.SubCategories[0].Name)
	assert.Equal(t, "sub-1", updated.SubCategories[0].ID)
	assert.Equal(t, "iOS", updated.SubCategories[1].Name)
	assert.NotEmpty(t, updated.SubCategories[1].ID, "store assigns the subcategory id")
	mockRepo.AssertExpectations(t)

	// Unknown category id.
	mockRepo.On("GetByID", "missing").Return(nil, notFoundErr("category with ID missing")).Once()
	_, err = service.AddSubCategory("missing", "iOS")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_ListCategories(t *testing.T) {
	mockRepo := new(MockCategoryRepo)
	service := services.NewCategoryService(mockRepo)

	expected := []models.Category{
		{ID: "cat-1", Name: "Phones"},
		{ID: "cat-2", Name: "Laptops"},
	}
	mockRepo.On("GetAll").Return(expected, nil).Once()

	categories, err := service.ListCategories()
	assert.NoError(t, err)
	assert.Equal(t, expected, categories)
	mockRepo.AssertExpectations(t)
}
