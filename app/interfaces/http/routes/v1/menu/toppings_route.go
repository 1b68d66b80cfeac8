package menu

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"pizzaops.io/admin-dashboard/app/domain/query"
	"pizzaops.io/admin-dashboard/app/domain/topping"
	"pizzaops.io/admin-dashboard/app/interfaces/http/responses"
)

type ToppingRoute struct {
	toppingService *topping.ToppingService
}

func NewToppingRoute(toppingService *topping.ToppingService) *ToppingRoute {
	return &ToppingRoute{
		toppingService,
	}
}

func (toppingRoute *ToppingRoute) RegisterRouter(router gin.IRouter) {
	toppingRouter := router.Group("/toppings")
	toppingRouter.GET("", toppingRoute.ListToppings)
	toppingRouter.POST("", toppingRoute.CreateTopping)
	toppingRouter.PUT("/:topping_id", toppingRoute.UpdateTopping)
	toppingRouter.DELETE("/:topping_id", toppingRoute.DeleteTopping)
	toppingRouter.PATCH("/:topping_id/availability", toppingRoute.SetAvailability)
}

func toppingListParams(reqCtx *gin.Context) topping.ListParams {
	return topping.ListParams{
		Name:         reqCtx.Query("name"),
		Category:     topping.Category(reqCtx.Query("category")),
		IsVegetarian: query.OptionalBool(reqCtx.Query("isVegetarian")),
	}
}

func (toppingRoute *ToppingRoute) ListToppings(reqCtx *gin.Context) {
	toppings, err := toppingRoute.toppingService.ListToppings(reqCtx.Request.Context(), toppingListParams(reqCtx))
	if err != nil {
		responses.Abort(reqCtx, "afd71c15-cb23-406b-8413-2cab80460d3f", err)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.OK(toppings))
}

func (toppingRoute *ToppingRoute) CreateTopping(reqCtx *gin.Context) {
	var form topping.Form
	if err := reqCtx.ShouldBind(&form); err != nil {
		badRequest(reqCtx, "9fe13cc1-cea0-41ee-b5b9-ecf1a18ea948", err)
		return
	}
	image, err := readImage(reqCtx)
	if err != nil {
		responses.Abort(reqCtx, "ac0c253a-3db2-462c-9a4b-631e4d3bc6b5", err)
		return
	}
	created, err := toppingRoute.toppingService.CreateTopping(reqCtx.Request.Context(), form, image)
	if err != nil {
		responses.Abort(reqCtx, "6f38067c-d18e-4ca2-b35d-b22528fb0ccc", err)
		return
	}
	reqCtx.JSON(http.StatusCreated, responses.OK(created))
}

func (toppingRoute *ToppingRoute) UpdateTopping(reqCtx *gin.Context) {
	var form topping.Form
	if err := reqCtx.ShouldBind(&form); err != nil {
		badRequest(reqCtx, "fe9a4abb-5904-4710-a90f-3fc441c4ab4a", err)
		return
	}
	image, err := readImage(reqCtx)
	if err != nil {
		responses.Abort(reqCtx, "d4781320-2b03-4a01-bc75-7eca4c5d5b3a", err)
		return
	}
	updated, err := toppingRoute.toppingService.UpdateTopping(reqCtx.Request.Context(), reqCtx.Param("topping_id"), form, image)
	if err != nil {
		responses.Abort(reqCtx, "8ad527ec-f643-4a19-863e-12c9741688db", err)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.OK(updated))
}

func (toppingRoute *ToppingRoute) DeleteTopping(reqCtx *gin.Context) {
	err := toppingRoute.toppingService.DeleteTopping(reqCtx.Request.Context(), toppingListParams(reqCtx), reqCtx.Param("topping_id"))
	if err != nil {
		responses.Abort(reqCtx, "32763ec9-08ad-4b97-a814-d040075d096a", err)
		return
	}
	reqCtx.Status(http.StatusNoContent)
}

func (toppingRoute *ToppingRoute) SetAvailability(reqCtx *gin.Context) {
	var req availabilityRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		badRequest(reqCtx, "d585e569-433e-4c4e-a1f5-9caa2cfe19ed", err)
		return
	}
	updated, err := toppingRoute.toppingService.SetAvailability(reqCtx.Request.Context(), toppingListParams(reqCtx), reqCtx.Param("topping_id"), *req.IsAvailable)
	if err != nil {
		responses.Abort(reqCtx, "127492c5-9731-4c14-994e-1cccd55408c3", err)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.OK(updated))
}
