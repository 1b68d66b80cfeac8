package pizzahub

import (
	"context"
	"net/http"

	"pizzaops.io/admin-dashboard/app/domain/pizza"
)

func (c *Client) ListPizzas(ctx context.Context, params pizza.ListParams) (*pizza.PizzaList, error) {
	var list pizza.PizzaList
	if err := c.do(ctx, call{method: http.MethodGet, path: "/menu/pizzas", query: params.Values()}, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) CreatePizza(ctx context.Context, req pizza.WriteRequest) (*pizza.Pizza, error) {
	return c.writePizza(ctx, call{method: http.MethodPost, path: "/menu/pizzas", body: req})
}

func (c *Client) UpdatePizza(ctx context.Context, pizzaID string, req pizza.WriteRequest) (*pizza.Pizza, error) {
	return c.writePizza(ctx, call{method: http.MethodPatch, path: pathf("/menu/pizzas/%s", pizzaID), body: req})
}

func (c *Client) DeletePizza(ctx context.Context, pizzaID string) error {
	return c.do(ctx, call{method: http.MethodDelete, path: pathf("/menu/pizzas/%s", pizzaID)}, nil)
}

func (c *Client) SetPizzaAvailability(ctx context.Context, pizzaID string, isAvailable bool) (*pizza.Pizza, error) {
	return c.writePizza(ctx, call{
		method: http.MethodPatch,
		path:   pathf("/menu/pizzas/%s", pizzaID),
		body:   map[string]bool{"isAvailable": isAvailable},
	})
}

func (c *Client) SetPizzaFeatured(ctx context.Context, pizzaID string, featured bool) (*pizza.Pizza, error) {
	return c.writePizza(ctx, call{
		method: http.MethodPatch,
		path:   pathf("/menu/pizzas/%s", pizzaID),
		body:   map[string]bool{"featured": featured},
	})
}

func (c *Client) writePizza(ctx context.Context, cl call) (*pizza.Pizza, error) {
	var result pizza.Pizza
	if err := c.do(ctx, cl, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
