package http

import (
	nethttp "net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/DiengWinz/acl-chatbot-api/internal/logger"
)

// APIKeyHeader is the header carrying the client key.
const APIKeyHeader = "X-API-Key"

// corsAllowAll accepts every origin. The origin is echoed back so
// credentialed requests keep working.
func corsAllowAll() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOriginFunc:  func(string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", APIKeyHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

// requireAPIKey rejects requests without a key with 403 and requests with an
// unknown key with 401.
func requireAPIKey(keys []string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		allowed[k] = struct{}{}
	}

	return func(c *gin.Context) {
		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			c.AbortWithStatusJSON(nethttp.StatusForbidden, gin.H{"detail": "Not authenticated"})
			return
		}
		if _, ok := allowed[key]; !ok {
			c.AbortWithStatusJSON(nethttp.StatusUnauthorized, gin.H{"detail": gin.H{
				"error":   "API Key invalide",
				"message": "Fournissez une API Key valide dans le header 'X-API-Key'",
				"contact": "Contactez l'équipe ACL pour obtenir votre clé",
			}})
			return
		}
		c.Next()
	}
}

// requestLogger logs one line per request once the handler chain finishes.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("%s %s → %d (%s)",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start).Round(time.Millisecond))
	}
}
