package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"pizzaops.io/admin-dashboard/app/domain/auth"
	"pizzaops.io/admin-dashboard/app/interfaces/http/middleware"
	authRoute "pizzaops.io/admin-dashboard/app/interfaces/http/routes/v1/auth"
	"pizzaops.io/admin-dashboard/app/interfaces/http/routes/v1/menu"
	"pizzaops.io/admin-dashboard/app/interfaces/http/routes/v1/notices"
	"pizzaops.io/admin-dashboard/app/interfaces/http/routes/v1/orders"
	"pizzaops.io/admin-dashboard/app/interfaces/http/routes/v1/system"
	"pizzaops.io/admin-dashboard/config"
)

type V1Route struct {
	authService  *auth.AuthService
	authRoute    *authRoute.AuthRoute
	menuRoute    *menu.MenuRoute
	ordersRoute  *orders.OrdersRoute
	noticesRoute *notices.NoticesRoute
	systemRoute  *system.SystemRoute
}

func NewV1Route(
	authService *auth.AuthService,
	authRoute *authRoute.AuthRoute,
	menuRoute *menu.MenuRoute,
	ordersRoute *orders.OrdersRoute,
	noticesRoute *notices.NoticesRoute,
	systemRoute *system.SystemRoute,
) *V1Route {
	return &V1Route{
		authService,
		authRoute,
		menuRoute,
		ordersRoute,
		noticesRoute,
		systemRoute,
	}
}

func (v1Route *V1Route) RegisterRouter(router gin.IRouter) {
	v1Router := router.Group("/v1")
	v1Router.GET("/version", GetVersion)
	v1Route.authRoute.RegisterRouter(v1Router)

	sessionRouter := v1Router.Group("", middleware.RequireSession(v1Route.authService))
	v1Route.menuRoute.RegisterRouter(sessionRouter)
	v1Route.ordersRoute.RegisterRouter(sessionRouter)
	v1Route.noticesRoute.RegisterRouter(sessionRouter)
	v1Route.systemRoute.RegisterRouter(sessionRouter)
}

func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version": config.Version,
	})
}
