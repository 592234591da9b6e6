package middleware

import (
	"net/http"
	"strings"

	"github.com/rktclgh/fairplay-booth/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const actorKey = "actor"

type TokenParser interface {
	Parse(token string) (domain.Actor, error)
}

// Auth rejects requests without a valid bearer token. Browsers cannot set
// headers on an EventSource, so the token may also come as ?access_token=.
func Auth(p TokenParser) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		token := bearer(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "missing token"})
			return
		}

		actor, err := p.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid token"})
			return
		}

		c.Set(actorKey, actor)
		c.Next()
	}
}

// OptionalAuth identifies the caller when a token is present and lets
// anonymous requests through. An invalid token is still rejected.
func OptionalAuth(p TokenParser) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if bearer(c) == "" {
			c.Next()
			return
		}
		Auth(p)(c)
	}
}

func ActorFrom(c *ginext.Context) (domain.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return domain.Actor{}, false
	}
	actor, ok := v.(domain.Actor)
	return actor, ok
}

func bearer(c *ginext.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return c.Query("access_token")
}
