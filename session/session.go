// Package session keeps the bearer token handed out by the API in a single browser
// cookie. The cookie's presence is the only "logged in" signal; nothing about expiry is
// tracked here.
package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// TokenCookie is the one persisted entry holding the raw bearer token.
	TokenCookie = "authToken"
	// FlashCookie carries a one-shot message across a redirect.
	FlashCookie = "flash"
)

// Holder mediates every read and write of the session token.
type Holder struct {
	secure  bool
	revoked *RevocationList
}

// NewHolder builds a Holder. secure marks cookies Secure (HTTPS only).
func NewHolder(secure bool, revoked *RevocationList) *Holder {
	if revoked == nil {
		revoked = NewRevocationList(nil)
	}
	return &Holder{secure: secure, revoked: revoked}
}

func (h *Holder) setCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", h.secure, true)
}

// Token returns the stored token, or "" when absent or logged out.
func (h *Holder) Token(c *gin.Context) string {
	token, err := c.Cookie(TokenCookie)
	if err != nil || token == "" {
		return ""
	}
	if h.revoked.IsRevoked(c.Request.Context(), token) {
		return ""
	}
	return token
}

// IsLoggedIn reports whether a token is present.
func (h *Holder) IsLoggedIn(c *gin.Context) bool {
	return h.Token(c) != ""
}

// Username is the display name found in the current token, if any.
func (h *Holder) Username(c *gin.Context) string {
	return Username(h.Token(c))
}

// Login stores token for the browser session.
func (h *Holder) Login(c *gin.Context, token string) {
	h.setCookie(c, TokenCookie, token, 0)
}

// Logout clears the stored token and remembers it as revoked.
func (h *Holder) Logout(c *gin.Context) {
	if token, err := c.Cookie(TokenCookie); err == nil && token != "" {
		h.revoked.Revoke(c.Request.Context(), token)
	}
	h.setCookie(c, TokenCookie, "", -1)
}

// SetFlash queues msg for the next rendered page.
func (h *Holder) SetFlash(c *gin.Context, msg string) {
	h.setCookie(c, FlashCookie, msg, 60)
}

// TakeFlash returns and clears the queued message.
func (h *Holder) TakeFlash(c *gin.Context) string {
	msg, err := c.Cookie(FlashCookie)
	if err != nil || msg == "" {
		return ""
	}
	h.setCookie(c, FlashCookie, "", -1)
	return msg
}
