package menu

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"pizzaops.io/admin-dashboard/app/domain/pizza"
	"pizzaops.io/admin-dashboard/app/domain/query"
	"pizzaops.io/admin-dashboard/app/interfaces/http/responses"
)

type PizzaRoute struct {
	pizzaService *pizza.PizzaService
}

func NewPizzaRoute(pizzaService *pizza.PizzaService) *PizzaRoute {
	return &PizzaRoute{
		pizzaService,
	}
}

func (pizzaRoute *PizzaRoute) RegisterRouter(router gin.IRouter) {
	pizzaRouter := router.Group("/pizzas")
	pizzaRouter.GET("", pizzaRoute.ListPizzas)
	pizzaRouter.POST("", pizzaRoute.CreatePizza)
	pizzaRouter.PUT("/:pizza_id", pizzaRoute.UpdatePizza)
	pizzaRouter.DELETE("/:pizza_id", pizzaRoute.DeletePizza)
	pizzaRouter.PATCH("/:pizza_id/availability", pizzaRoute.SetAvailability)
	pizzaRouter.PATCH("/:pizza_id/featured", pizzaRoute.SetFeatured)
}

// DeletePizzaResponse carries the page the table should move to when the
// deletion emptied the requested one.
type DeletePizzaResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
	Page    *int   `json:"page,omitempty"`
}

func pizzaListParams(reqCtx *gin.Context) (pizza.ListParams, error) {
	pagination, err := query.GetPaginationFromQuery(reqCtx, pizza.DefaultListParams.Pagination)
	if err != nil {
		return pizza.ListParams{}, err
	}
	return pizza.ListParams{
		Pagination:  pagination,
		Name:        reqCtx.Query("name"),
		Category:    pizza.Category(reqCtx.Query("category")),
		IsAvailable: query.OptionalBool(reqCtx.Query("isAvailable")),
		Featured:    query.OptionalBool(reqCtx.Query("featured")),
	}, nil
}

func (pizzaRoute *PizzaRoute) ListPizzas(reqCtx *gin.Context) {
	params, err := pizzaListParams(reqCtx)
	if err != nil {
		badRequest(reqCtx, "ef6e2732-d0b1-48d1-a800-60e061d04b2d", err)
		return
	}
	list, err := pizzaRoute.pizzaService.ListPizzas(reqCtx.Request.Context(), params)
	if err != nil {
		responses.Abort(reqCtx, "f0b22e30-ddfa-42fe-ab82-3532ebafaaef", err)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.ListResponse[pizza.Pizza]{
		Status: responses.ResponseCodeOk,
		Page:   list.Page,
		Limit:  list.Limit,
		Pages:  list.Pages,
		Total:  list.Total,
		Items:  list.Items,
	})
}

func (pizzaRoute *PizzaRoute) CreatePizza(reqCtx *gin.Context) {
	var form pizza.Form
	if err := reqCtx.ShouldBind(&form); err != nil {
		badRequest(reqCtx, "001556cf-3b88-4b21-87b2-c909445f84b1", err)
		return
	}
	image, err := readImage(reqCtx)
	if err != nil {
		responses.Abort(reqCtx, "cc51db7f-6c4b-4dc1-8ed9-dc7fb4db96a4", err)
		return
	}
	created, err := pizzaRoute.pizzaService.CreatePizza(reqCtx.Request.Context(), form, image)
	if err != nil {
		responses.Abort(reqCtx, "d270c092-f40b-42a6-b550-f8839d60b9d6", err)
		return
	}
	reqCtx.JSON(http.StatusCreated, responses.OK(created))
}

func (pizzaRoute *PizzaRoute) UpdatePizza(reqCtx *gin.Context) {
	var form pizza.Form
	if err := reqCtx.ShouldBind(&form); err != nil {
		badRequest(reqCtx, "37ce9037-d4f5-49f3-89e7-a455d21c4522", err)
		return
	}
	image, err := readImage(reqCtx)
	if err != nil {
		responses.Abort(reqCtx, "f91614fd-bf4a-490d-ad6e-b61a6ee9699d", err)
		return
	}
	updated, err := pizzaRoute.pizzaService.UpdatePizza(reqCtx.Request.Context(), reqCtx.Param("pizza_id"), form, image)
	if err != nil {
		responses.Abort(reqCtx, "7fb8e820-ef79-41d2-8b5a-e89ad9d8537d", err)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.OK(updated))
}

// DeletePizza takes the list params of the page the admin is looking at so
// the optimistic removal applies to that cached page.
func (pizzaRoute *PizzaRoute) DeletePizza(reqCtx *gin.Context) {
	params, err := pizzaListParams(reqCtx)
	if err != nil {
		badRequest(reqCtx, "538ff4b0-3f4b-4d96-9370-ae926ac8003a", err)
		return
	}
	pizzaID := reqCtx.Param("pizza_id")
	result := DeletePizzaResponse{ID: pizzaID}
	err = pizzaRoute.pizzaService.DeletePizza(reqCtx.Request.Context(), params, pizzaID, func(page int) {
		result.Page = &page
	})
	if err != nil {
		responses.Abort(reqCtx, "509f9624-b55e-4f65-bc7f-27a57c12262b", err)
		return
	}
	result.Deleted = true
	reqCtx.JSON(http.StatusOK, responses.OK(result))
}

func (pizzaRoute *PizzaRoute) SetAvailability(reqCtx *gin.Context) {
	params, err := pizzaListParams(reqCtx)
	if err != nil {
		badRequest(reqCtx, "6df7488d-d922-4807-a213-df469b8cad1d", err)
		return
	}
	var req availabilityRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		badRequest(reqCtx, "3a5223a3-eb43-4897-9865-afade8a27d6e", err)
		return
	}
	updated, err := pizzaRoute.pizzaService.SetAvailability(reqCtx.Request.Context(), params, reqCtx.Param("pizza_id"), *req.IsAvailable)
	if err != nil {
		responses.Abort(reqCtx, "ab69f97c-6b0b-4b1b-8dd6-e6fbf1246385", err)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.OK(updated))
}

func (pizzaRoute *PizzaRoute) SetFeatured(reqCtx *gin.Context) {
	params, err := pizzaListParams(reqCtx)
	if err != nil {
		badRequest(reqCtx, "ad0c7973-d125-4b00-9632-4b622552c608", err)
		return
	}
	var req featuredRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		badRequest(reqCtx, "879cab51-60b7-4904-8da5-6f59a5e64b77", err)
		return
	}
	updated, err := pizzaRoute.pizzaService.SetFeatured(reqCtx.Request.Context(), params, reqCtx.Param("pizza_id"), *req.Featured)
	if err != nil {
		responses.Abort(reqCtx, "dc774ccb-6ae9-43f8-bf34-2d1d65566f0e", err)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.OK(updated))
}
