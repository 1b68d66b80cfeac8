package menu

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"pizzaops.io/admin-dashboard/app/domain/size"
	"pizzaops.io/admin-dashboard/app/interfaces/http/responses"
)

type SizeRoute struct {
	sizeService *size.SizeService
}

func NewSizeRoute(sizeService *size.SizeService) *SizeRoute {
	return &SizeRoute{
		sizeService,
	}
}

func (sizeRoute *SizeRoute) RegisterRouter(router gin.IRouter) {
	sizeRouter := router.Group("/sizes")
	sizeRouter.GET("", sizeRoute.ListSizes)
	sizeRouter.POST("", sizeRoute.CreateSize)
	sizeRouter.PUT("/:size_id", sizeRoute.UpdateSize)
	sizeRouter.DELETE("/:size_id", sizeRoute.DeleteSize)
	sizeRouter.PATCH("/:size_id/availability", sizeRoute.SetAvailability)
}

func (sizeRoute *SizeRoute) ListSizes(reqCtx *gin.Context) {
	sizes, err := sizeRoute.sizeService.ListSizes(reqCtx.Request.Context())
	if err != nil {
		responses.Abort(reqCtx, "4e2bbbfa-7d17-4e52-b4a8-26c533b72a09", err)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.OK(sizes))
}

func (sizeRoute *SizeRoute) CreateSize(reqCtx *gin.Context) {
	var form size.Form
	if err := reqCtx.ShouldBind(&form); err != nil {
		badRequest(reqCtx, "41f5fd68-8c5e-460c-81bc-5d64692d26cf", err)
		return
	}
	created, err := sizeRoute.sizeService.CreateSize(reqCtx.Request.Context(), form)
	if err != nil {
		responses.Abort(reqCtx, "fc0b5b7c-c482-4fab-9edf-d22737e31596", err)
		return
	}
	reqCtx.JSON(http.StatusCreated, responses.OK(created))
}

func (sizeRoute *SizeRoute) UpdateSize(reqCtx *gin.Context) {
	var form size.Form
	if err := reqCtx.ShouldBind(&form); err != nil {
		badRequest(reqCtx, "dc8ac282-4c43-4028-a551-666463c673e1", err)
		return
	}
	updated, err := sizeRoute.sizeService.UpdateSize(reqCtx.Request.Context(), reqCtx.Param("size_id"), form)
	if err != nil {
		responses.Abort(reqCtx, "cabd0354-d8ee-4a7d-a3ab-380991904ae0", err)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.OK(updated))
}

func (sizeRoute *SizeRoute) DeleteSize(reqCtx *gin.Context) {
	if err := sizeRoute.sizeService.DeleteSize(reqCtx.Request.Context(), reqCtx.Param("size_id")); err != nil {
		responses.Abort(reqCtx, "abf01f2e-8d2f-4078-9c3d-65f2810763cc", err)
		return
	}
	reqCtx.Status(http.StatusNoContent)
}

func (sizeRoute *SizeRoute) SetAvailability(reqCtx *gin.Context) {
	var req availabilityRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		badRequest(reqCtx, "22ec93b0-0a14-462b-9a0d-26a886cacb45", err)
		return
	}
	updated, err := sizeRoute.sizeService.SetAvailability(reqCtx.Request.Context(), reqCtx.Param("size_id"), *req.IsAvailable)
	if err != nil {
		responses.Abort(reqCtx, "e8933376-408d-4e04-bfed-d2c0bf1d7648", err)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.OK(updated))
}
