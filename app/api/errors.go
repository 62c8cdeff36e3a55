package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/bosko/app/remote"
	"github.com/joefazee/bosko/models"
)

// WriteError maps err onto the response envelope. Coded errors pick their
// status from the code, backend 4xx responses pass through, and anything else
// coming from the backend is reported as 502.
func WriteError(c *gin.Context, err error) {
	var ce *models.CodedError
	if errors.As(err, &ce) {
		var details interface{}
		if len(ce.Fields) > 0 {
			details = ce.Fields
		}
		ErrorResponse(c, statusForCode(ce.Code), ce.Code, ce.Message, details)
		return
	}

	var he *remote.HTTPError
	if errors.As(err, &he) {
		if he.Status >= 400 && he.Status < 500 {
			ErrorResponse(c, he.Status, "UPSTREAM_REJECTED", he.Message, he.Payload)
			return
		}
		BadGatewayResponse(c, he.Message)
		return
	}

	if errors.Is(err, models.ErrUnauthorized) {
		UnauthorizedResponse(c)
		return
	}

	BadGatewayResponse(c, err.Error())
}

func statusForCode(code string) int {
	switch code {
	case models.CodeValidation:
		return http.StatusBadRequest
	case models.CodeNotEligible, models.CodePlanLimitReached:
		return http.StatusForbidden
	case models.CodeNotFound:
		return http.StatusNotFound
	case models.CodeInvalidTransition:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
