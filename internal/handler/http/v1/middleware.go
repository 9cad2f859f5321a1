package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestIDMiddleware - middleware корреляции: каждый запрос получает
// идентификатор (клиентский или свежесгенерированный), по которому
// группируются все строки лога этого запроса
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(requestIDKey, rid)
		c.Header(requestIDHeader, rid)
		c.Next()
	}
}

// requestID возвращает идентификатор корреляции текущего запроса
func requestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
