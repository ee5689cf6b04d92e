package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"saudade-match/internal/domain"
	"saudade-match/internal/service"
)

// CompatibilityHandler expone el cálculo de compatibilidad sin estado.
type CompatibilityHandler struct {
	logger        *zap.Logger
	matchSvc      *service.MatchService
	defaultLocale domain.Locale
}

func NewCompatibilityHandler(logger *zap.Logger, matchSvc *service.MatchService, defaultLocale domain.Locale) *CompatibilityHandler {
	if !defaultLocale.Valid() {
		defaultLocale = domain.LocaleEnglish
	}
	return &CompatibilityHandler{
		logger:        logger,
		matchSvc:      matchSvc,
		defaultLocale: defaultLocale,
	}
}

// Compute maneja POST /compatibility.
func (h *CompatibilityHandler) Compute(c *gin.Context) {
	var req struct {
		A      *domain.CulturalDepthProfile `json:"a" binding:"required"`
		B      *domain.CulturalDepthProfile `json:"b" binding:"required"`
		Locale string                       `json:"locale"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid compatibility request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	locale, err := resolveLocale(c, req.Locale, h.defaultLocale)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported locale"})
		return
	}

	result, err := h.matchSvc.Compare(c.Request.Context(), *req.A, *req.B, locale)
	if err != nil {
		if status, msg, ok := validationStatus(err); ok {
			c.JSON(status, gin.H{"error": msg})
			return
		}
		h.logger.Error("compute compatibility failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compute compatibility"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Weights maneja GET /compatibility/weights.
func (h *CompatibilityHandler) Weights(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"weights": service.CanonicalWeights})
}

// Regions maneja GET /regions.
func (h *CompatibilityHandler) Regions(c *gin.Context) {
	locale, err := resolveLocale(c, "", h.defaultLocale)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported locale"})
		return
	}
	type regionView struct {
		Key     string `json:"key"`
		Name    string `json:"name"`
		Dialect string `json:"dialect"`
	}
	keys := domain.RegionKeys()
	regions := make([]regionView, 0, len(keys))
	for _, key := range keys {
		info, _ := domain.LookupRegion(key)
		regions = append(regions, regionView{Key: info.Key, Name: info.Name(locale), Dialect: string(info.Dialect)})
	}
	c.JSON(http.StatusOK, gin.H{"regions": regions})
}

// validationStatus traduce errores de validación del dominio a 4xx.
func validationStatus(err error) (int, string, bool) {
	switch {
	case errors.Is(err, domain.ErrInvalidLocale):
		return http.StatusBadRequest, "unsupported locale", true
	case errors.Is(err, service.ErrInvalidProfile):
		return http.StatusUnprocessableEntity, err.Error(), true
	case errors.Is(err, service.ErrMatchInvalidInput), errors.Is(err, service.ErrSelfMatch):
		return http.StatusBadRequest, err.Error(), true
	default:
		return 0, "", false
	}
}
