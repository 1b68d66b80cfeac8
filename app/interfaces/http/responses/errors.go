package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"pizzaops.io/admin-dashboard/app/domain/auth"
	"pizzaops.io/admin-dashboard/app/domain/common"
	"pizzaops.io/admin-dashboard/app/domain/order"
	"pizzaops.io/admin-dashboard/app/domain/upload"
)

// StatusFor maps a domain or gateway error to the status the dashboard
// answers with.
func StatusFor(err error) int {
	var validationErr *common.ValidationError
	var uploadErr *upload.Error
	var apiErr *common.ApiError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, order.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, auth.ErrNoSession):
		return http.StatusUnauthorized
	case errors.As(err, &uploadErr):
		return http.StatusBadGateway
	case errors.As(err, &apiErr):
		if apiErr.Status >= http.StatusBadRequest {
			return apiErr.Status
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Abort writes err as an ErrorResponse carrying the user-facing message.
func Abort(reqCtx *gin.Context, code string, err error) {
	body := ErrorResponse{Code: code, Error: common.UserMessage(err)}
	var validationErr *common.ValidationError
	if errors.As(err, &validationErr) {
		body.Fields = validationErr.Fields
	}
	if errors.Is(err, order.ErrInvalidTransition) {
		body.Error = err.Error()
	}
	reqCtx.AbortWithStatusJSON(StatusFor(err), body)
}
