package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims holds what the front end reads from a bearer token. The signature is never
// checked here: the API is the only party that decides whether a token is valid.
type Claims struct {
	Username  string
	ExpiresAt time.Time
}

// ParseClaims decodes a JWT payload without verification. Opaque tokens return ok=false.
func ParseClaims(token string) (Claims, bool) {
	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, mc); err != nil {
		return Claims{}, false
	}

	var c Claims
	for _, key := range []string{"username", "name"} {
		if s, ok := mc[key].(string); ok && s != "" {
			c.Username = s
			break
		}
	}
	if c.Username == "" {
		if sub, err := mc.GetSubject(); err == nil {
			c.Username = sub
		}
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Time
	}
	return c, true
}

// Username returns the display name carried by token, or "".
func Username(token string) string {
	c, _ := ParseClaims(token)
	return c.Username
}
