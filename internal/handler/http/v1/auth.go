package v1

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shenikar/geo_checkin/internal/apperr"
	"github.com/shenikar/geo_checkin/internal/config"
	"github.com/sirupsen/logrus"
)

// userIDKey - ключ gin.Context с идентификатором аутентифицированного пользователя
const userIDKey = "user_id"

func userIDFromContext(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// JWTAuthMiddleware проверяет токен провайдера идентификации (HS256) и кладет subject в контекст
func JWTAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.JWTIssuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.JWTIssuer))
	}
	parser := jwt.NewParser(opts...)
	secret := []byte(cfg.JWTSecret)

	return func(c *gin.Context) {
		tokenString, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || tokenString == "" {
			log.Warn("Bearer token missing from request")
			respondError(c, apperr.ErrUnauthenticated)
			return
		}

		claims := &jwt.RegisteredClaims{}
		_, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
			return secret, nil
		})
		if err != nil {
			log.WithError(err).Warn("Invalid bearer token")
			respondError(c, apperr.ErrUnauthenticated)
			return
		}
		if claims.Subject == "" {
			log.Warn("Bearer token without subject")
			respondError(c, apperr.ErrUnauthenticated)
			return
		}

		c.Set(userIDKey, claims.Subject)
		c.Next()
	}
}

// APIKeyAuthMiddleware - middleware для аутентификации по API-ключу
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			log.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Code: string(apperr.CodeUnauthenticated), Error: "API key required"})
			return
		}

		isValid := false
		for _, key := range cfg.APIKeys {
			if key != "" && subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) == 1 {
				isValid = true
				break
			}
		}

		if !isValid {
			log.WithField("client_ip", c.ClientIP()).Warn("Invalid API key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Code: string(apperr.CodeUnauthenticated), Error: "Invalid API key"})
			return
		}

		c.Next()
	}
}
