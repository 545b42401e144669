package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-catalog/internal/domains/catalog"
	"library-catalog/internal/shared/response"
)

type CatalogHandler struct {
	service catalog.Service
}

func NewCatalogHandler(svc catalog.Service) *CatalogHandler {
	return &CatalogHandler{service: svc}
}

// Index - GET /catalog
func (h *CatalogHandler) Index(c *gin.Context) {
	page, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	response.Page(c, http.StatusOK, "index", page)
}
