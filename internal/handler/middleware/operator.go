package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// OperatorHeader identifies the event staff member driving the request. Not authenticated.
const OperatorHeader = "X-Operator-ID"

const (
	ctxOperatorIDKey = "operator_id"
	maxOperatorLen   = 64
)

func OperatorContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := strings.TrimSpace(c.GetHeader(OperatorHeader)); id != "" {
			if len(id) > maxOperatorLen {
				id = id[:maxOperatorLen]
			}
			c.Set(ctxOperatorIDKey, id)
		}
		c.Next()
	}
}

func GetOperatorID(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxOperatorIDKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
