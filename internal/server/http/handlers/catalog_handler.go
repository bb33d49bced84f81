package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zoombxu/surplus/internal/server/http/dto"
)

// CatalogHandler manages public listing and admin catalog endpoints.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// List handles GET /api/products.
func (h *CatalogHandler) List(c *gin.Context) {
	products, err := h.facade.Products(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]dto.ProductResponse, 0, len(products))
	for _, product := range products {
		response = append(response, dto.FromProduct(product))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/products/:id.
func (h *CatalogHandler) Get(c *gin.Context) {
	product, err := h.facade.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromProduct(*product))
}

// Create handles POST /api/admin/products.
func (h *CatalogHandler) Create(c *gin.Context) {
	var req dto.ProductPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	product, err := h.facade.CreateProduct(c.Request.Context(), dto.ToProduct(req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromProduct(*product))
}

// Update handles PUT /api/admin/products/:id.
func (h *CatalogHandler) Update(c *gin.Context) {
	var req dto.ProductPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	product := dto.ToProduct(req)
	product.ID = c.Param("id")

	updated, err := h.facade.UpdateProduct(c.Request.Context(), product)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromProduct(*updated))
}

// Delete handles DELETE /api/admin/products/:id.
func (h *CatalogHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Upload handles POST /api/admin/uploads.
func (h *CatalogHandler) Upload(c *gin.Context) {
	var req dto.UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	result, err := h.facade.UploadImage(c.Request.Context(), req.Data, req.Folder)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.UploadResponse{URL: result.URL, PublicID: result.PublicID})
}
