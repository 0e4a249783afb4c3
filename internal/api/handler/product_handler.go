package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vallespasiegos/catalog-system/internal/api/metrics"
	"github.com/vallespasiegos/catalog-system/internal/core/domain"
	"github.com/vallespasiegos/catalog-system/internal/core/ports"
)

// ProductHandler handles HTTP requests for catalog operations. Writes are
// admin-only; the RBAC middleware enforces that before these methods run.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /api/productos. No auth required.
//
// @Summary      List all products, newest first
// @Tags         productos
// @Produce      json
// @Success      200  {array}   domain.Product
// @Failure      500  {object}  map[string]string
// @Router       /api/productos [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get handles GET /api/productos/:id. No auth required.
//
// @Summary      Get a product by id
// @Tags         productos
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/productos/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "product not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create handles POST /api/productos.
//
// @Summary      Create a product
// @Tags         productos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/productos [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), ports.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Imagen:      req.Imagen,
	})
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: ve.Message})
		}
		return err
	}

	metrics.ProductWritesTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /api/productos/:id. Only fields present in the payload
// are applied.
//
// @Summary      Update a product
// @Tags         productos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Product id"
// @Param        body  body      updateProductRequest  true  "Fields to update"
// @Success      200   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/productos/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Imagen:      req.Imagen,
	})
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: ve.Message})
		case errors.Is(err, domain.ErrProductNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "product not found"})
		}
		return err
	}

	metrics.ProductWritesTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/productos/:id.
//
// @Summary      Delete a product
// @Tags         productos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  deleteProductResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/productos/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "product not found"})
		}
		return err
	}

	metrics.ProductWritesTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, deleteProductResponse{OK: true, Message: "product deleted"})
}
