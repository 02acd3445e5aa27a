package middleware

import (
	"askhub/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const anonymousIDKey = "anonymous_id"

// ResolveIdentity maps the request to a voter identity: the logged-in user if
// there is one, otherwise a per-browser anonymous token minted into the
// session on first use. The token is stable across requests, so anonymous
// votes dedupe the same way authenticated ones do.
func ResolveIdentity(c *gin.Context) models.Identity {
	if user := CurrentUser(c); user != nil {
		return models.AuthenticatedIdentity(user.ID)
	}

	session := sessions.Default(c)
	if token, ok := session.Get(anonymousIDKey).(string); ok && token != "" {
		return models.AnonymousIdentity(token)
	}

	token := uuid.NewString()
	session.Set(anonymousIDKey, token)
	if err := session.Save(); err != nil {
		// Cookie could not be written; the request still gets a usable
		// identity, it just will not be stable.
		return models.AnonymousIdentity(token)
	}
	return models.AnonymousIdentity(token)
}
