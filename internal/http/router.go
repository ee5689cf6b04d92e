package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"saudade-match/internal/service"
)

// RouterDeps agrupa lo que necesita el router además de los handlers.
type RouterDeps struct {
	JWT     *service.JWTService
	Limiter service.RateLimiter
	// Metrics es el handler de Prometheus; nil desactiva /metrics.
	Metrics http.Handler
}

// NewRouter configura el router de Gin con middlewares y rutas base.
func NewRouter(
	logger *zap.Logger,
	deps RouterDeps,
	compatH *CompatibilityHandler,
	profileH *ProfileHandler,
	matchH *MatchHandler,
) *gin.Engine {
	r := gin.New()

	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics))
	}

	r.GET("/regions", compatH.Regions)
	compat := r.Group("/compatibility")
	compat.GET("/weights", compatH.Weights)
	compat.POST("", rateLimitMiddleware(deps.Limiter), compatH.Compute)

	authed := r.Group("", JWTAuthMiddleware(deps.JWT))
	profiles := authed.Group("/profiles")
	profiles.GET("/me", profileH.GetMyProfile)
	profiles.PUT("/me", profileH.PutMyProfile)
	profiles.POST("/assessment", profileH.SubmitAssessment)

	matches := authed.Group("/matches")
	matches.GET("", rateLimitMiddleware(deps.Limiter), matchH.RankMatches)
	matches.GET("/history", matchH.History)
	matches.GET("/:user_id", matchH.CompareWith)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}

// rateLimitMiddleware limita por usuario autenticado o, si no hay token, por IP.
func rateLimitMiddleware(limiter service.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}
		key := c.ClientIP()
		if claims, ok := GetAuthClaims(c); ok {
			key = "user:" + claims.UserID
		}
		if !limiter.Allow(key) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			c.Abort()
			return
		}
		c.Next()
	}
}
