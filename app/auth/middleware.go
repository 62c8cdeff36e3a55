package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/bosko/app/api"
	"github.com/joefazee/bosko/internal/security"
	"github.com/joefazee/bosko/models"
)

const (
	AuthorizationHeaderKey  = "Authorization"
	AuthorizationTypeBearer = "Bearer"

	currentUserKey = "currentUser"
	accessTokenKey = "accessToken"
)

// Middleware verifies the bearer token and stores the caller and the raw
// token in the context.
func Middleware(tokenMaker security.Maker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeaderKey)
		if authHeader == "" {
			api.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		fields := strings.Fields(authHeader)
		if len(fields) < 2 || !strings.EqualFold(fields[0], AuthorizationTypeBearer) {
			api.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		accessToken := fields[1]
		payload, err := tokenMaker.VerifyToken(accessToken)
		if err != nil {
			api.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		c.Set(currentUserKey, UserFromPayload(payload))
		c.Set(accessTokenKey, accessToken)
		c.Next()
	}
}

// UserFromPayload builds the caller from a verified token. The plan tier is
// parsed here once.
func UserFromPayload(p *security.Payload) models.CurrentUser {
	return models.CurrentUser{
		ID:   p.UserID,
		Name: p.UserName,
		Plan: models.PlanInfo{Tier: models.ParsePlanTier(p.Plan)},
	}
}

// CurrentUser returns the caller stored by Middleware.
func CurrentUser(c *gin.Context) (models.CurrentUser, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return models.CurrentUser{}, false
	}
	u, ok := v.(models.CurrentUser)
	return u, ok
}

// AccessToken returns the raw bearer token stored by Middleware.
func AccessToken(c *gin.Context) string {
	return c.GetString(accessTokenKey)
}
