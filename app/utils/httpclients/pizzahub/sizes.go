package pizzahub

import (
	"context"
	"net/http"

	"pizzaops.io/admin-dashboard/app/domain/size"
)

func (c *Client) ListSizes(ctx context.Context) ([]size.Size, error) {
	sizes := make([]size.Size, 0)
	if err := c.do(ctx, call{method: http.MethodGet, path: "/menu/sizes"}, &sizes); err != nil {
		return nil, err
	}
	return sizes, nil
}

func (c *Client) CreateSize(ctx context.Context, form size.Form) (*size.Size, error) {
	return c.writeSize(ctx, call{method: http.MethodPost, path: "/menu/sizes", body: form})
}

func (c *Client) UpdateSize(ctx context.Context, sizeID string, form size.Form) (*size.Size, error) {
	return c.writeSize(ctx, call{method: http.MethodPatch, path: pathf("/menu/sizes/%s", sizeID), body: form})
}

func (c *Client) DeleteSize(ctx context.Context, sizeID string) error {
	return c.do(ctx, call{method: http.MethodDelete, path: pathf("/menu/sizes/%s", sizeID)}, nil)
}

func (c *Client) SetSizeAvailability(ctx context.Context, sizeID string, isAvailable bool) (*size.Size, error) {
	return c.writeSize(ctx, call{
		method: http.MethodPatch,
		path:   pathf("/menu/sizes/%s", sizeID),
		body:   map[string]bool{"isAvailable": isAvailable},
	})
}

func (c *Client) writeSize(ctx context.Context, cl call) (*size.Size, error) {
	var result size.Size
	if err := c.do(ctx, cl, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
