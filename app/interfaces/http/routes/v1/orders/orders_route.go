package orders

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"pizzaops.io/admin-dashboard/app/domain/order"
	"pizzaops.io/admin-dashboard/app/domain/query"
	"pizzaops.io/admin-dashboard/app/interfaces/http/responses"
	"pizzaops.io/admin-dashboard/app/interfaces/http/sse"
	"pizzaops.io/admin-dashboard/app/utils/functional"
	"pizzaops.io/admin-dashboard/app/utils/logger"
)

const (
	eventOrders = "orders"
	eventError  = "error"
)

type OrdersRoute struct {
	orderService *order.OrderService
}

func NewOrdersRoute(orderService *order.OrderService) *OrdersRoute {
	return &OrdersRoute{
		orderService,
	}
}

func (ordersRoute *OrdersRoute) RegisterRouter(router gin.IRouter) {
	ordersRouter := router.Group("/orders")
	ordersRouter.GET("", ordersRoute.ListOrders)
	ordersRouter.GET("/live", ordersRoute.LiveOrders)
	ordersRouter.GET("/stats/summary", ordersRoute.GetSummary)
	ordersRouter.GET("/stats/monthly-sales", ordersRoute.GetMonthlySales)
	ordersRouter.PATCH("/:order_id/status", ordersRoute.UpdateStatus)
}

// OrderView is an order plus the statuses the admin may move it to next.
type OrderView struct {
	order.Order
	AllowedTransitions []order.OrderStatus `json:"allowedTransitions"`
}

type UpdateStatusRequest struct {
	OrderStatus order.OrderStatus `json:"orderStatus" binding:"required"`
}

func toOrderViews(orders []order.Order) []OrderView {
	return functional.Map(orders, func(o order.Order) OrderView {
		return OrderView{Order: o, AllowedTransitions: order.NextAllowed(o.OrderStatus)}
	})
}

func toListResponse(list *order.OrderList) responses.ListResponse[OrderView] {
	return responses.ListResponse[OrderView]{
		Status: responses.ResponseCodeOk,
		Page:   list.Page,
		Limit:  list.Limit,
		Pages:  list.Pages,
		Total:  list.Total,
		Items:  toOrderViews(list.Items),
	}
}

func orderListParams(reqCtx *gin.Context) (order.ListParams, error) {
	pagination, err := query.GetPaginationFromQuery(reqCtx, order.DefaultListParams.Pagination)
	if err != nil {
		return order.ListParams{}, err
	}
	params := order.ListParams{
		Pagination:    pagination,
		OrderStatus:   order.OrderStatus(reqCtx.Query("orderStatus")),
		PaymentStatus: order.PaymentStatus(reqCtx.Query("paymentStatus")),
		PaymentMethod: order.PaymentMethod(reqCtx.Query("paymentMethod")),
	}
	if params.OrderStatus != "" && !params.OrderStatus.IsValid() {
		return order.ListParams{}, fmt.Errorf("invalid orderStatus %q", params.OrderStatus)
	}
	return params, nil
}

func (ordersRoute *OrdersRoute) ListOrders(reqCtx *gin.Context) {
	params, err := orderListParams(reqCtx)
	if err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "769b9bf5-f2e5-4365-af58-fb1f8134236d",
			Error: err.Error(),
		})
		return
	}
	list, err := ordersRoute.orderService.ListOrders(reqCtx.Request.Context(), params)
	if err != nil {
		responses.Abort(reqCtx, "2606e6d2-1a3d-43fe-b648-d493eee26f22", err)
		return
	}
	reqCtx.JSON(http.StatusOK, toListResponse(list))
}

// LiveOrders streams the order page as server-sent events. A new page is
// pushed whenever a realtime message or a status change invalidates it.
func (ordersRoute *OrdersRoute) LiveOrders(reqCtx *gin.Context) {
	params, err := orderListParams(reqCtx)
	if err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "77000d80-a72f-4451-a561-7762b06b67b0",
			Error: err.Error(),
		})
		return
	}

	ctx, cancel := context.WithCancel(reqCtx.Request.Context())
	defer cancel()

	sse.Prepare(reqCtx)
	ordersRoute.orderService.WatchOrders(ctx, params, func(list *order.OrderList, err error) {
		var ok bool
		if err != nil {
			logger.GetLogger().Warnf("live orders: fetch failed: %v", err)
			ok = sse.Emit(reqCtx, eventError, responses.ErrorResponse{
				Code:  "add19cd2-bfd3-4e7a-b0f9-3fd372b144bd",
				Error: err.Error(),
			})
		} else {
			ok = sse.Emit(reqCtx, eventOrders, toListResponse(list))
		}
		if !ok {
			cancel()
		}
	})
}

func (ordersRoute *OrdersRoute) UpdateStatus(reqCtx *gin.Context) {
	var req UpdateStatusRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "958c5306-89d1-4744-811e-c704cd06e575",
			Error: err.Error(),
		})
		return
	}
	updated, err := ordersRoute.orderService.UpdateStatus(reqCtx.Request.Context(), reqCtx.Param("order_id"), req.OrderStatus)
	if err != nil {
		responses.Abort(reqCtx, "1a512d77-e515-4cd9-b943-228580011277", err)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.OK(OrderView{
		Order:              *updated,
		AllowedTransitions: order.NextAllowed(updated.OrderStatus),
	}))
}

func (ordersRoute *OrdersRoute) GetSummary(reqCtx *gin.Context) {
	summary, err := ordersRoute.orderService.Summary(reqCtx.Request.Context())
	if err != nil {
		responses.Abort(reqCtx, "b1ac9185-d6a3-4f81-be54-531b55b68958", err)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.OK(summary))
}

func (ordersRoute *OrdersRoute) GetMonthlySales(reqCtx *gin.Context) {
	var params order.MonthlySalesParams
	if raw := reqCtx.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil || year < 1 {
			reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
				Code:  "4925eb66-e975-4d92-967a-31254568adbb",
				Error: "invalid year",
			})
			return
		}
		params.Year = year
	}
	sales, err := ordersRoute.orderService.MonthlySales(reqCtx.Request.Context(), params)
	if err != nil {
		responses.Abort(reqCtx, "df9a0e79-321a-4812-9f92-be7b415ef28a", err)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.OK(sales))
}
