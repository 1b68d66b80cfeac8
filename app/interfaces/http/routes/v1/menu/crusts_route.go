package menu

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"pizzaops.io/admin-dashboard/app/domain/crust"
	"pizzaops.io/admin-dashboard/app/interfaces/http/responses"
)

type CrustRoute struct {
	crustService *crust.CrustService
}

func NewCrustRoute(crustService *crust.CrustService) *CrustRoute {
	return &CrustRoute{
		crustService,
	}
}

func (crustRoute *CrustRoute) RegisterRouter(router gin.IRouter) {
	crustRouter := router.Group("/crusts")
	crustRouter.GET("", crustRoute.ListCrusts)
	crustRouter.POST("", crustRoute.CreateCrust)
	crustRouter.PUT("/:crust_id", crustRoute.UpdateCrust)
	crustRouter.DELETE("/:crust_id", crustRoute.DeleteCrust)
	crustRouter.PATCH("/:crust_id/availability", crustRoute.SetAvailability)
}

func (crustRoute *CrustRoute) ListCrusts(reqCtx *gin.Context) {
	crusts, err := crustRoute.crustService.ListCrusts(reqCtx.Request.Context())
	if err != nil {
		responses.Abort(reqCtx, "cc957a53-756c-4230-8860-ee04d9bc0d17", err)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.OK(crusts))
}

func (crustRoute *CrustRoute) CreateCrust(reqCtx *gin.Context) {
	var form crust.Form
	if err := reqCtx.ShouldBind(&form); err != nil {
		badRequest(reqCtx, "3cf8341d-ea62-4a0b-a37f-4bff2b10c1fc", err)
		return
	}
	created, err := crustRoute.crustService.CreateCrust(reqCtx.Request.Context(), form)
	if err != nil {
		responses.Abort(reqCtx, "35ea6c33-16c7-42c3-8bae-039e795c4ad9", err)
		return
	}
	reqCtx.JSON(http.StatusCreated, responses.OK(created))
}

func (crustRoute *CrustRoute) UpdateCrust(reqCtx *gin.Context) {
	var form crust.Form
	if err := reqCtx.ShouldBind(&form); err != nil {
		badRequest(reqCtx, "12367af1-f47c-4d03-a1ba-876c2e8031ce", err)
		return
	}
	updated, err := crustRoute.crustService.UpdateCrust(reqCtx.Request.Context(), reqCtx.Param("crust_id"), form)
	if err != nil {
		responses.Abort(reqCtx, "a254f9e1-786a-400d-918d-5b0923799f92", err)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.OK(updated))
}

func (crustRoute *CrustRoute) DeleteCrust(reqCtx *gin.Context) {
	if err := crustRoute.crustService.DeleteCrust(reqCtx.Request.Context(), reqCtx.Param("crust_id")); err != nil {
		responses.Abort(reqCtx, "ea6b02ae-c74d-4486-8391-ab1351100634", err)
		return
	}
	reqCtx.Status(http.StatusNoContent)
}

func (crustRoute *CrustRoute) SetAvailability(reqCtx *gin.Context) {
	var req availabilityRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		badRequest(reqCtx, "170cad92-48ec-42d0-b038-3204c007dcc2", err)
		return
	}
	updated, err := crustRoute.crustService.SetAvailability(reqCtx.Request.Context(), reqCtx.Param("crust_id"), *req.IsAvailable)
	if err != nil {
		responses.Abort(reqCtx, "0680b5f8-7c01-4ba9-895c-d0a3cd4e5a77", err)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.OK(updated))
}
