package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"pizzaops.io/admin-dashboard/app/domain/auth"
	"pizzaops.io/admin-dashboard/app/interfaces/http/responses"
)

type AuthRoute struct {
	authService *auth.AuthService
}

func NewAuthRoute(authService *auth.AuthService) *AuthRoute {
	return &AuthRoute{
		authService,
	}
}

func (authRoute *AuthRoute) RegisterRouter(router gin.IRouter) {
	authRouter := router.Group("/auth")
	authRouter.POST("/login", authRoute.Login)
	authRouter.POST("/logout", authRoute.Logout)
	authRouter.GET("/me", authRoute.GetMe)
}

type GetMeResponse struct {
	Object string     `json:"object"`
	User   *auth.User `json:"user"`
}

func (authRoute *AuthRoute) Login(reqCtx *gin.Context) {
	var req auth.LoginRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "bafb54f3-6dc3-42d5-a8e3-0188f7ac5c1d",
			Error: err.Error(),
		})
		return
	}
	user, err := authRoute.authService.Login(reqCtx.Request.Context(), req)
	if err != nil {
		responses.Abort(reqCtx, "154ea6c7-6007-41bf-9adb-c5169c403e10", err)
		return
	}
	reqCtx.JSON(http.StatusOK, GetMeResponse{Object: "me", User: user})
}

func (authRoute *AuthRoute) Logout(reqCtx *gin.Context) {
	if err := authRoute.authService.Logout(reqCtx.Request.Context()); err != nil {
		// the local session is gone either way
		reqCtx.Error(err)
	}
	reqCtx.Status(http.StatusNoContent)
}

// GetMe answers with a null user when nobody is signed in.
func (authRoute *AuthRoute) GetMe(reqCtx *gin.Context) {
	user, err := authRoute.authService.CurrentUser(reqCtx.Request.Context())
	if err != nil {
		responses.Abort(reqCtx, "a6bcf722-c112-425c-b27a-822663ed5aa0", err)
		return
	}
	reqCtx.JSON(http.StatusOK, GetMeResponse{Object: "me", User: user})
}
