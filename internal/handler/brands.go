package handler

import (
	"net/http"

	"stockbook/internal/apierror"
	"stockbook/internal/dto"
	"stockbook/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BrandsHandler struct{ svc service.BrandService }

func NewBrandsHandler(svc service.BrandService) *BrandsHandler {
	return &BrandsHandler{svc: svc}
}

// Create POST /v1/brands
func (h *BrandsHandler) Create(c *gin.Context) {
	var req dto.CreateBrandRequest
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

// List GET /v1/brands
func (h *BrandsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Internal Server Error"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update PATCH /v1/brands/:id
func (h *BrandsHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid brand id"))
		return
	}
	var req dto.UpdateBrandRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, svcErr := h.svc.Update(c.Request.Context(), id, req)
	if svcErr != nil {
		writeMutationError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, dto.OK(resp))
}
