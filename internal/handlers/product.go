package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/atelierhaus/atelier-backend/internal/platform/apierr"
	"github.com/atelierhaus/atelier-backend/internal/services"
)

type ProductHandler struct {
	productService services.ProductService
}

func NewProductHandler(productService services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func productID(c *gin.Context) (uuid.UUID, *apierr.Error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apierr.NewValidation(map[string]string{"id": "must be a UUID"})
	}
	return id, nil
}

func (ph *ProductHandler) Create(c *gin.Context) {
	var req services.ProductCreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, invalidBody())
		return
	}
	product, err := ph.productService.Create(c.Request.Context(), &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, product)
}

func (ph *ProductHandler) Get(c *gin.Context) {
	id, pErr := productID(c)
	if pErr != nil {
		RespondError(c, pErr)
		return
	}
	product, err := ph.productService.Get(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, product)
}

func (ph *ProductHandler) Update(c *gin.Context) {
	id, pErr := productID(c)
	if pErr != nil {
		RespondError(c, pErr)
		return
	}
	var req services.ProductUpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, invalidBody())
		return
	}
	product, err := ph.productService.Update(c.Request.Context(), id, &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, product)
}

func (ph *ProductHandler) Delete(c *gin.Context) {
	id, pErr := productID(c)
	if pErr != nil {
		RespondError(c, pErr)
		return
	}
	if err := ph.productService.Delete(c.Request.Context(), id); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "product deleted"})
}

func (ph *ProductHandler) List(c *gin.Context) {
	page, pageSize, pErr := pageParams(c)
	if pErr != nil {
		RespondError(c, pErr)
		return
	}
	pageView, err := ph.productService.List(c.Request.Context(), c.Query("category"), page, pageSize)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, pageView)
}
