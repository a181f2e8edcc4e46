package portal

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
)

// tokenFields is the order in which a login response is probed for the token.
var tokenFields = []string{"access_token", "token", "accessToken", "jwt"}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	res, err := c.do(ctx, http.MethodPost, "/users/login", "", credentials{Username: username, Password: password})
	if err != nil {
		return "", err
	}
	if !res.ok() {
		return "", newAPIError(res.status, res.body, "Falha na autenticação")
	}

	token := ExtractToken(res.body)
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}

// ExtractToken finds the token in a login response body. The first field of tokenFields
// that is present and not null wins even when it is empty; a body that is a bare JSON
// string is the token itself.
func ExtractToken(body []byte) string {
	switch v := decodeJSON(body).(type) {
	case map[string]any:
		for _, field := range tokenFields {
			raw, ok := v[field]
			if !ok || raw == nil {
				continue
			}
			return scalarString(raw)
		}
	case string:
		return v
	}
	return ""
}

func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}
