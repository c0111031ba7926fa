package handlers

import (
	"errors"
	"log"

	"catalog/internal/repositories"
	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for the category taxonomy.
type CategoryHandler struct {
	service *services.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service: service,
	}
}

// RegisterRoutes registers the category routes with the Fiber app.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleListCategories)
	categoryRoutes.Post("/", h.HandleCreateCategory)
	categoryRoutes.Post("/:id/subcategories", h.HandleAddSubCategory)
}

// HandleListCategories returns all categories with nested subcategories.
func (h *CategoryHandler) HandleListCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories()
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve categories",
			"error":   err.Error(),
		})
	}
	return c.JSON(categories)
}

// nameRequest is the body shape for category and subcategory creation.
type nameRequest struct {
	Name string `json:"name"`
}

// HandleCreateCategory inserts a new category with an empty subcategory list.
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var req nameRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create category body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Category name is required.",
		})
	}

	category, err := h.service.CreateCategory(req.Name)
	if err != nil {
		log.Printf("Error creating category %s: %v", req.Name, err)
		if errors.Is(err, services.ErrDuplicateCategory) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Category already exists",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create category",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// HandleAddSubCategory appends a subcategory to an existing category and
// returns the updated category.
func (h *CategoryHandler) HandleAddSubCategory(c *fiber.Ctx) error {
	categoryID := c.Params("id")

	var req nameRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add subcategory body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Subcategory name is required.",
		})
	}

	category, err := h.service.AddSubCategory(categoryID, req.Name)
	if err != nil {
		log.Printf("Error adding subcategory to category %s: %v", categoryID, err)
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Category not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not add subcategory",
			"error":   err.Error(),
		})
	}
	return c.JSON(category)
}
