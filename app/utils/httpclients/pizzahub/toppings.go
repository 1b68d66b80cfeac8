package pizzahub

import (
	"context"
	"net/http"

	"pizzaops.io/admin-dashboard/app/domain/topping"
)

func (c *Client) ListToppings(ctx context.Context, params topping.ListParams) ([]topping.Topping, error) {
	toppings := make([]topping.Topping, 0)
	if err := c.do(ctx, call{method: http.MethodGet, path: "/menu/toppings", query: params.Values()}, &toppings); err != nil {
		return nil, err
	}
	return toppings, nil
}

func (c *Client) CreateTopping(ctx context.Context, req topping.WriteRequest) (*topping.Topping, error) {
	return c.writeTopping(ctx, call{method: http.MethodPost, path: "/menu/toppings", body: req})
}

func (c *Client) UpdateTopping(ctx context.Context, toppingID string, req topping.WriteRequest) (*topping.Topping, error) {
	return c.writeTopping(ctx, call{method: http.MethodPatch, path: pathf("/menu/toppings/%s", toppingID), body: req})
}

func (c *Client) DeleteTopping(ctx context.Context, toppingID string) error {
	return c.do(ctx, call{method: http.MethodDelete, path: pathf("/menu/toppings/%s", toppingID)}, nil)
}

func (c *Client) SetToppingAvailability(ctx context.Context, toppingID string, isAvailable bool) (*topping.Topping, error) {
	return c.writeTopping(ctx, call{
		method: http.MethodPatch,
		path:   pathf("/menu/toppings/%s", toppingID),
		body:   map[string]bool{"isAvailable": isAvailable},
	})
}

func (c *Client) writeTopping(ctx context.Context, cl call) (*topping.Topping, error) {
	var result topping.Topping
	if err := c.do(ctx, cl, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
