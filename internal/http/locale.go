package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"saudade-match/internal/domain"
)

// resolveLocale elige el locale de la respuesta: explícito (body o ?locale=), luego Accept-Language, luego fallback.
// Un locale explícito no soportado es error; un header no soportado cae al fallback.
func resolveLocale(c *gin.Context, explicit string, fallback domain.Locale) (domain.Locale, error) {
	if strings.TrimSpace(explicit) == "" {
		explicit = c.Query("locale")
	}
	if strings.TrimSpace(explicit) != "" {
		return domain.ParseLocale(explicit)
	}
	return domain.MatchAcceptLanguage(c.GetHeader("Accept-Language"), fallback), nil
}
