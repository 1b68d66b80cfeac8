package menu

import (
	"github.com/gin-gonic/gin"
)

type MenuRoute struct {
	pizzaRoute   *PizzaRoute
	crustRoute   *CrustRoute
	sizeRoute    *SizeRoute
	toppingRoute *ToppingRoute
}

func NewMenuRoute(pizzaRoute *PizzaRoute, crustRoute *CrustRoute, sizeRoute *SizeRoute, toppingRoute *ToppingRoute) *MenuRoute {
	return &MenuRoute{
		pizzaRoute,
		crustRoute,
		sizeRoute,
		toppingRoute,
	}
}

func (menuRoute *MenuRoute) RegisterRouter(router gin.IRouter) {
	menuRouter := router.Group("/menu")
	menuRoute.pizzaRoute.RegisterRouter(menuRouter)
	menuRoute.crustRoute.RegisterRouter(menuRouter)
	menuRoute.sizeRoute.RegisterRouter(menuRouter)
	menuRoute.toppingRoute.RegisterRouter(menuRouter)
}
