package handlers

import (
	"net/http"

	"servlink/models"
	"servlink/services/provider"
	"servlink/utils"

	"github.com/gin-gonic/gin"
)

// ProviderHandler serves provider profile and listing endpoints.
type ProviderHandler struct {
	Service provider.ProviderService
}

func NewProviderHandler(s provider.ProviderService) *ProviderHandler {
	return &ProviderHandler{Service: s}
}

// ListProvidersHandler filters and orders providers by query parameters:
// category (exact), location and q (substring), sort (rating|price).
func (h *ProviderHandler) ListProvidersHandler(c *gin.Context) {
	filter := provider.ProviderFilter{
		Category: c.Query("category"),
		Location: c.Query("location"),
		Search:   c.Query("q"),
		SortBy:   c.DefaultQuery("sort", provider.SortByRating),
	}

	summaries, err := h.Service.ListProviders(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	if summaries == nil {
		summaries = []models.ProviderSummary{}
	}
	c.JSON(http.StatusOK, gin.H{"providers": summaries, "count": len(summaries)})
}

// GetProviderHandler returns one provider's profile with its rating aggregate.
func (h *ProviderHandler) GetProviderHandler(c *gin.Context) {
	summary, err := h.Service.GetProvider(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// UpdateProfileHandler saves the authenticated provider's own profile.
func (h *ProviderHandler) UpdateProfileHandler(c *gin.Context) {
	var req provider.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	profile, err := h.Service.UpdateProfile(currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
