package handlers

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"

	"catalog/internal/repositories"
	"catalog/internal/services"
	"catalog/internal/uploads"

	"github.com/gofiber/fiber/v2"
)

// maxCreateImages mirrors the historical upload limit on product creation.
// Updates accept any count.
const maxCreateImages = 5

// ProductHandler handles HTTP requests for products, including the
// multipart/form-data create and update routes.
type ProductHandler struct {
	service *services.ProductService
	namer   *uploads.Namer
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, namer *uploads.Namer) *ProductHandler {
	return &ProductHandler{
		service: service,
		namer:   namer,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/:id", h.HandleGetProduct)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
}

// HandleListProducts returns all products, full documents.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}
	return c.JSON(products)
}

// HandleGetProduct returns a single product. An unresolved id answers with a
// literal null body and 200, which is what the storefront consuming this API
// expects.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	product, err := h.service.GetProductByID(productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.JSON(nil)
		}
		log.Printf("Error getting product by ID %s: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
			"error":   err.Error(),
		})
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a product from a multipart form carrying the
// scalar fields, a JSON-encoded variants array, and up to five image files.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Expected multipart/form-data",
			"error":   err.Error(),
		})
	}

	files := form.File["images"]
	if len(files) > maxCreateImages {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": fmt.Sprintf("At most %d images are allowed.", maxCreateImages),
		})
	}

	in, err := h.parseProductForm(form)
	if err != nil {
		if errors.Is(err, services.ErrMalformedVariants) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Malformed variants",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create product",
			"error":   err.Error(),
		})
	}

	refs, err := h.saveUploads(c, files)
	if err != nil {
		log.Printf("Error saving uploads: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not store uploaded images",
			"error":   err.Error(),
		})
	}

	product, err := h.service.CreateProduct(in, refs)
	if err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create product",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct overwrites an existing product with the submitted form
// values. Uploaded images, when present, replace the stored image list
// wholesale; when the form carries no files the stored list is kept.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	productID := c.Params("id")

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Expected multipart/form-data",
			"error":   err.Error(),
		})
	}

	in, err := h.parseProductForm(form)
	if err != nil {
		if errors.Is(err, services.ErrMalformedVariants) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Malformed variants",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update product",
			"error":   err.Error(),
		})
	}

	images := services.KeepImages()
	if files := form.File["images"]; len(files) > 0 {
		refs, err := h.saveUploads(c, files)
		if err != nil {
			log.Printf("Error saving uploads: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not store uploaded images",
				"error":   err.Error(),
			})
		}
		images = services.ReplaceImages(refs)
	}

	product, err := h.service.UpdateProduct(productID, in, images)
	if err != nil {
		log.Printf("Error updating product %s: %v", productID, err)
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update product",
			"error":   err.Error(),
		})
	}
	return c.JSON(product)
}

// parseProductForm pulls the scalar fields out of the multipart form and
// parses the embedded variants JSON through the service's fail-closed parser.
func (h *ProductHandler) parseProductForm(form *multipart.Form) (services.ProductInput, error) {
	variants, err := h.service.ParseVariants(formValue(form, "variants"))
	if err != nil {
		return services.ProductInput{}, err
	}
	return services.ProductInput{
		Title:       formValue(form, "title"),
		Category:    formValue(form, "category"),
		SubCategory: formValue(form, "subCategory"),
		Description: formValue(form, "description"),
		Variants:    variants,
	}, nil
}

// saveUploads writes each uploaded file to local storage under a fresh name
// and returns the public references in upload order.
func (h *ProductHandler) saveUploads(c *fiber.Ctx, files []*multipart.FileHeader) ([]string, error) {
	refs := make([]string, 0, len(files))
	for _, f := range files {
		ref, path := h.namer.Next(f.Filename)
		if err := c.SaveFile(f, path); err != nil {
			return nil, fmt.Errorf("failed to save upload %s: %w", f.Filename, err)
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// formValue returns the first value of a multipart form field, or "".
func formValue(form *multipart.Form, key string) string {
	if vals := form.Value[key]; len(vals) > 0 {
		return vals[0]
	}
	return ""
}
