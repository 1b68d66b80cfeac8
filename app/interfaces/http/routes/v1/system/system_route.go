package system

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"pizzaops.io/admin-dashboard/app/domain/mutation"
	"pizzaops.io/admin-dashboard/app/infrastructure/cache"
	"pizzaops.io/admin-dashboard/app/infrastructure/realtime"
	"pizzaops.io/admin-dashboard/app/interfaces/http/responses"
	"pizzaops.io/admin-dashboard/app/utils/logger"
)

type RealtimeChannel interface {
	Status() realtime.Status
	Send(ctx context.Context, msg realtime.Message) error
}

// SystemRoute exposes the sync layer's own state to operators.
type SystemRoute struct {
	listener   RealtimeChannel
	mutations  *mutation.Coordinator
	queryCache *cache.QueryCache
}

func NewSystemRoute(listener RealtimeChannel, mutations *mutation.Coordinator, queryCache *cache.QueryCache) *SystemRoute {
	return &SystemRoute{
		listener:   listener,
		mutations:  mutations,
		queryCache: queryCache,
	}
}

func (route *SystemRoute) RegisterRouter(router gin.IRouter) {
	systemRouter := router.Group("/system")
	systemRouter.GET("/realtime", route.GetRealtimeStatus)
	systemRouter.POST("/realtime/messages", route.SendRealtimeMessage)
	systemRouter.GET("/mutations", route.GetPendingMutations)
	systemRouter.POST("/cache/invalidate", route.InvalidateCache)
}

type CacheInvalidateRequest struct {
	Resource string `json:"resource" binding:"required"`
}

type CacheInvalidateResponse struct {
	Object   string `json:"object"`
	Status   string `json:"status"`
	Resource string `json:"resource"`
}

func (route *SystemRoute) GetRealtimeStatus(reqCtx *gin.Context) {
	reqCtx.JSON(http.StatusOK, responses.OK(route.listener.Status()))
}

func (route *SystemRoute) SendRealtimeMessage(reqCtx *gin.Context) {
	var msg realtime.Message
	if err := reqCtx.ShouldBindJSON(&msg); err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "1987913f-39c2-46ea-b947-9d421164cb14",
			Error: err.Error(),
		})
		return
	}
	if err := route.listener.Send(reqCtx.Request.Context(), msg); err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, realtime.ErrNotConnected) {
			status = http.StatusConflict
		}
		reqCtx.AbortWithStatusJSON(status, responses.ErrorResponse{
			Code:  "c3956d52-a17b-49b2-b3f6-ddda374746e1",
			Error: err.Error(),
		})
		return
	}
	reqCtx.Status(http.StatusAccepted)
}

func (route *SystemRoute) GetPendingMutations(reqCtx *gin.Context) {
	reqCtx.JSON(http.StatusOK, responses.OK(route.mutations.PendingAll()))
}

// InvalidateCache marks every cached entry of a resource stale.
func (route *SystemRoute) InvalidateCache(reqCtx *gin.Context) {
	var req CacheInvalidateRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "d5f7c3e6-e1fc-49fd-989f-11c6e1aa3154",
			Error: err.Error(),
		})
		return
	}
	route.queryCache.Invalidate(cache.ResourceKey(req.Resource))
	logger.GetLogger().Infof("system: invalidated cache resource %s", req.Resource)

	reqCtx.JSON(http.StatusOK, CacheInvalidateResponse{
		Object:   "cache.invalidation",
		Status:   "ok",
		Resource: req.Resource,
	})
}
