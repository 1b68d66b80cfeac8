package pizzahub

import (
	"context"
	"net/http"

	"pizzaops.io/admin-dashboard/app/domain/crust"
)

func (c *Client) ListCrusts(ctx context.Context) ([]crust.Crust, error) {
	crusts := make([]crust.Crust, 0)
	if err := c.do(ctx, call{method: http.MethodGet, path: "/menu/crusts"}, &crusts); err != nil {
		return nil, err
	}
	return crusts, nil
}

func (c *Client) CreateCrust(ctx context.Context, req crust.WriteRequest) (*crust.Crust, error) {
	return c.writeCrust(ctx, call{method: http.MethodPost, path: "/menu/crusts", body: req})
}

func (c *Client) UpdateCrust(ctx context.Context, crustID string, req crust.WriteRequest) (*crust.Crust, error) {
	return c.writeCrust(ctx, call{method: http.MethodPatch, path: pathf("/menu/crusts/%s", crustID), body: req})
}

func (c *Client) DeleteCrust(ctx context.Context, crustID string) error {
	return c.do(ctx, call{method: http.MethodDelete, path: pathf("/menu/crusts/%s", crustID)}, nil)
}

func (c *Client) SetCrustAvailability(ctx context.Context, crustID string, isAvailable bool) (*crust.Crust, error) {
	return c.writeCrust(ctx, call{
		method: http.MethodPatch,
		path:   pathf("/menu/crusts/%s", crustID),
		body:   map[string]bool{"isAvailable": isAvailable},
	})
}

func (c *Client) writeCrust(ctx context.Context, cl call) (*crust.Crust, error) {
	var result crust.Crust
	if err := c.do(ctx, cl, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
