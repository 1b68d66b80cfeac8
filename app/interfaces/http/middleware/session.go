package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"pizzaops.io/admin-dashboard/app/domain/auth"
	"pizzaops.io/admin-dashboard/app/interfaces/http/responses"
)

const UserContextKey = "UserContextKeyEntity"

type SessionSource interface {
	Session() *auth.User
}

// RequireSession rejects requests while nobody is signed in to the backend.
func RequireSession(sessions SessionSource) gin.HandlerFunc {
	return func(reqCtx *gin.Context) {
		user := sessions.Session()
		if user == nil {
			reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
				Code:  "6c1d0f9e-3b0a-4c51-9d53-2f8f3d4b7a21",
				Error: "not signed in",
			})
			return
		}
		reqCtx.Set(UserContextKey, user)
		reqCtx.Next()
	}
}

func UserFromContext(reqCtx *gin.Context) (*auth.User, bool) {
	value, ok := reqCtx.Get(UserContextKey)
	if !ok {
		return nil, false
	}
	user, ok := value.(*auth.User)
	return user, ok
}
