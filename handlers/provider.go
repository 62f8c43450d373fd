package handlers

import (
	"net/http"

	providerRepo "occlusa/database/repository/provider"
	"occlusa/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProviderHandler exposes the practice's clinician directory.
type ProviderHandler struct {
	Repo providerRepo.ProviderRepository
}

func NewProviderHandler(repo providerRepo.ProviderRepository) *ProviderHandler {
	return &ProviderHandler{Repo: repo}
}

// ListProvidersHandler returns every provider, for the app's services tab.
func (h *ProviderHandler) ListProvidersHandler(c *gin.Context) {
	providers, err := h.Repo.List(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to list providers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list providers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"providers": providers})
}

// GetProviderByNameHandler looks a provider up by exact name. A provider
// without a directory record is reported as null; callers apply the default
// schedule in that case.
func (h *ProviderHandler) GetProviderByNameHandler(c *gin.Context) {
	provider, err := h.Repo.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		utils.GetLogger().Error("failed to fetch provider", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch provider"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"provider": provider})
}
