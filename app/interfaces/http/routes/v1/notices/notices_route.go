package notices

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"pizzaops.io/admin-dashboard/app/domain/notice"
	"pizzaops.io/admin-dashboard/app/interfaces/http/responses"
	"pizzaops.io/admin-dashboard/app/interfaces/http/sse"
)

const subscriberBuffer = 16

type NoticesRoute struct {
	center *notice.Center
}

func NewNoticesRoute(center *notice.Center) *NoticesRoute {
	return &NoticesRoute{
		center,
	}
}

func (noticesRoute *NoticesRoute) RegisterRouter(router gin.IRouter) {
	noticesRouter := router.Group("/notices")
	noticesRouter.GET("", noticesRoute.ListNotices)
	noticesRouter.GET("/stream", noticesRoute.StreamNotices)
}

func (noticesRoute *NoticesRoute) ListNotices(reqCtx *gin.Context) {
	reqCtx.JSON(http.StatusOK, responses.OK(noticesRoute.center.Recent()))
}

// StreamNotices pushes every notice published while the client is connected.
func (noticesRoute *NoticesRoute) StreamNotices(reqCtx *gin.Context) {
	ch, cancel := noticesRoute.center.Subscribe(subscriberBuffer)
	defer cancel()

	sse.Prepare(reqCtx)
	ctx := reqCtx.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			if !sse.Emit(reqCtx, string(n.Level), n) {
				return
			}
		}
	}
}
