package handlers

import (
	"net/http"

	"servlink/models"
	"servlink/services/catalog"
	"servlink/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves service listing endpoints.
type CatalogHandler struct {
	Service catalog.CatalogService
}

func NewCatalogHandler(s catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: s}
}

// ListProviderServicesHandler returns a provider's listed services.
func (h *CatalogHandler) ListProviderServicesHandler(c *gin.Context) {
	services, err := h.Service.ListByProvider(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if services == nil {
		services = []models.Service{}
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// CreateServiceHandler creates a listing owned by the authenticated provider.
func (h *CatalogHandler) CreateServiceHandler(c *gin.Context) {
	var req catalog.ServiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	service, err := h.Service.CreateService(currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, service)
}

// UpdateServiceHandler edits a listing the authenticated provider owns.
func (h *CatalogHandler) UpdateServiceHandler(c *gin.Context) {
	var req catalog.ServiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	service, err := h.Service.UpdateService(currentUserID(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, service)
}

// DeleteServiceHandler removes a listing the authenticated provider owns.
func (h *CatalogHandler) DeleteServiceHandler(c *gin.Context) {
	if err := h.Service.DeleteService(currentUserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
