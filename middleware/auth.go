package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/conectaedu/frontend/session"
)

// ContextTokenKey stores the session token inside the gin context.
const ContextTokenKey = "auth_token"

// SessionRequired sends visitors without a stored token to the login page.
func SessionRequired(h *session.Holder) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := h.Token(ctx)
		if token == "" {
			ctx.Redirect(http.StatusSeeOther, "/login")
			ctx.Abort()
			return
		}
		ctx.Set(ContextTokenKey, token)
		ctx.Next()
	}
}

// Token returns the token set by SessionRequired.
func Token(ctx *gin.Context) string {
	return ctx.GetString(ContextTokenKey)
}
