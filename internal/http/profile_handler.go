package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"saudade-match/internal/domain"
	"saudade-match/internal/service"
)

// ProfileHandler gestiona el perfil de saudade del usuario autenticado.
type ProfileHandler struct {
	logger        *zap.Logger
	matchSvc      *service.MatchService
	defaultLocale domain.Locale
}

func NewProfileHandler(logger *zap.Logger, matchSvc *service.MatchService, defaultLocale domain.Locale) *ProfileHandler {
	if !defaultLocale.Valid() {
		defaultLocale = domain.LocaleEnglish
	}
	return &ProfileHandler{
		logger:        logger,
		matchSvc:      matchSvc,
		defaultLocale: defaultLocale,
	}
}

// PutMyProfile maneja PUT /profiles/me.
func (h *ProfileHandler) PutMyProfile(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	var profile domain.CulturalDepthProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		h.logger.Warn("invalid profile request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	saved, err := h.matchSvc.SaveProfile(c.Request.Context(), claims.UserID, profile)
	if err != nil {
		if status, msg, ok := validationStatus(err); ok {
			c.JSON(status, gin.H{"error": msg})
			return
		}
		h.logger.Error("save profile failed", zap.String("user_id", claims.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": saved})
}

// GetMyProfile maneja GET /profiles/me.
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	profile, err := h.matchSvc.GetProfile(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		h.logger.Error("get profile failed", zap.String("user_id", claims.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// SubmitAssessment maneja POST /profiles/assessment: deriva y guarda el perfil.
func (h *ProfileHandler) SubmitAssessment(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	var answers domain.AssessmentAnswers
	if err := c.ShouldBindJSON(&answers); err != nil {
		h.logger.Warn("invalid assessment request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	locale, err := resolveLocale(c, "", h.defaultLocale)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported locale"})
		return
	}

	saved, err := h.matchSvc.SaveAssessment(c.Request.Context(), claims.UserID, answers, locale)
	if err != nil {
		if status, msg, ok := validationStatus(err); ok {
			c.JSON(status, gin.H{"error": msg})
			return
		}
		h.logger.Error("save assessment failed", zap.String("user_id", claims.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save assessment"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"profile": saved})
}
