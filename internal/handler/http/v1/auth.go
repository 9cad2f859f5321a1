package v1

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/anythingai/SF-Garbage-Reporter/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const signatureHeader = "X-Signature"

// SignatureAuthMiddleware - middleware анти-абьюз проверки: тело запроса
// должно быть подписано HMAC-SHA256 с общим секретом. Активно только
// при заданном SUBMIT_SIGNING_SECRET.
func SignatureAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.SubmitSigningSecret == "" {
			c.Next()
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			log.WithError(err).Warn("Failed to read request body for signature check")
			c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
				Status:  statusError,
				Code:    CodeBadRequest,
				Message: msgInvalidRequest,
			})
			return
		}
		// Возвращаем тело на место для последующего чтения хендлером
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		signature := c.GetHeader(signatureHeader)
		expected := generateHMACSHA256(body, cfg.SubmitSigningSecret)
		if signature == "" || !hmac.Equal([]byte(signature), []byte(expected)) {
			log.Warn("Submission signature missing or invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Status:  statusError,
				Code:    CodeBadRequest,
				Message: "Invalid request signature",
			})
			return
		}

		c.Next()
	}
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
