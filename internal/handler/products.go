package handler

import (
	"net/http"

	"stockbook/internal/apierror"
	"stockbook/internal/dto"
	"stockbook/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductsHandler struct{ svc service.ProductService }

func NewProductsHandler(svc service.ProductService) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

// List GET /v1/products?search=&sort=&limit=
// Responds with a bare array of populated products, matching the original
// catalog contract.
func (h *ProductsHandler) List(c *gin.Context) {
	var filter dto.ProductFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Internal Server Error"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create POST /v1/products
// A duplicate name is a soft outcome: 200 with success=false so the UI can
// show "already exists" instead of a fatal error.
func (h *ProductsHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeMutationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(resp))
}

// Update PATCH /v1/products/:id
func (h *ProductsHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid product id"))
		return
	}
	var req dto.UpdateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(resp))
}

// Delete DELETE /v1/products?_id=…
// The id rides in the query string, matching the original UI's delete call.
func (h *ProductsHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Query("_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid product id"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(nil))
}

// writeMutationError maps service errors onto the mutation envelope:
// not-found → 404, duplicate → soft 200, anything else → opaque 500.
func writeMutationError(c *gin.Context, err error) {
	switch {
	case service.IsNotFound(err):
		c.JSON(http.StatusNotFound, dto.Fail(err.Error()))
	case service.IsDuplicate(err):
		c.JSON(http.StatusOK, dto.Fail(err.Error()))
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dto.Fail("Internal server error"))
	}
}
