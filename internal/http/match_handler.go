package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"saudade-match/internal/domain"
	"saudade-match/internal/service"
)

// MatchHandler expone ranking y comparaciones entre usuarios guardados.
type MatchHandler struct {
	logger        *zap.Logger
	matchSvc      *service.MatchService
	defaultLocale domain.Locale
}

func NewMatchHandler(logger *zap.Logger, matchSvc *service.MatchService, defaultLocale domain.Locale) *MatchHandler {
	if !defaultLocale.Valid() {
		defaultLocale = domain.LocaleEnglish
	}
	return &MatchHandler{
		logger:        logger,
		matchSvc:      matchSvc,
		defaultLocale: defaultLocale,
	}
}

// RankMatches maneja GET /matches?limit=N.
func (h *MatchHandler) RankMatches(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	locale, err := resolveLocale(c, "", h.defaultLocale)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported locale"})
		return
	}
	limit, err := queryLimit(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	matches, err := h.matchSvc.RankMatches(c.Request.Context(), claims.UserID, locale, limit)
	if err != nil {
		h.writeError(c, "rank matches failed", claims.UserID, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

// History maneja GET /matches/history.
func (h *MatchHandler) History(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	limit, err := queryLimit(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}
	matches, err := h.matchSvc.History(c.Request.Context(), claims.UserID, limit)
	if err != nil {
		h.writeError(c, "list match history failed", claims.UserID, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

// CompareWith maneja GET /matches/:user_id.
func (h *MatchHandler) CompareWith(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	locale, err := resolveLocale(c, "", h.defaultLocale)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported locale"})
		return
	}

	result, err := h.matchSvc.CompareUsers(c.Request.Context(), claims.UserID, c.Param("user_id"), locale)
	if err != nil {
		h.writeError(c, "compare users failed", claims.UserID, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *MatchHandler) writeError(c *gin.Context, msg, userID string, err error) {
	if errors.Is(err, pgx.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	if status, text, ok := validationStatus(err); ok {
		c.JSON(status, gin.H{"error": text})
		return
	}
	if errors.Is(err, service.ErrMatchServiceNotConfigured) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "matching unavailable"})
		return
	}
	h.logger.Error(msg, zap.String("user_id", userID), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load matches"})
}

func queryLimit(c *gin.Context) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, errors.New("invalid limit")
	}
	return limit, nil
}
