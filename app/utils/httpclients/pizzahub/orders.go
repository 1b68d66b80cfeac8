package pizzahub

import (
	"context"
	"net/http"

	"pizzaops.io/admin-dashboard/app/domain/order"
)

func (c *Client) ListOrders(ctx context.Context, params order.ListParams) (*order.OrderList, error) {
	var list order.OrderList
	if err := c.do(ctx, call{method: http.MethodGet, path: "/orders", query: params.Values()}, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

type updateOrderStatusRequest struct {
	OrderStatus order.OrderStatus `json:"orderStatus"`
}

func (c *Client) UpdateOrderStatus(ctx context.Context, orderID string, status order.OrderStatus) (*order.Order, error) {
	var updated order.Order
	err := c.do(ctx, call{
		method: http.MethodPatch,
		path:   pathf("/orders/%s/status", orderID),
		body:   updateOrderStatusRequest{OrderStatus: status},
	}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) OrderSummary(ctx context.Context) (*order.Summary, error) {
	var summary order.Summary
	if err := c.do(ctx, call{method: http.MethodGet, path: "/orders/stats/summary"}, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *Client) MonthlySales(ctx context.Context, params order.MonthlySalesParams) ([]order.MonthlySales, error) {
	sales := make([]order.MonthlySales, 0)
	if err := c.do(ctx, call{method: http.MethodGet, path: "/orders/stats/monthly-sales", query: params.Values()}, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}
