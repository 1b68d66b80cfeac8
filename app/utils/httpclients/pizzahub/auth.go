package pizzahub

import (
	"context"
	"net/http"

	"pizzaops.io/admin-dashboard/app/domain/auth"
	"pizzaops.io/admin-dashboard/app/utils/logger"
)

func (c *Client) Login(ctx context.Context, req auth.LoginRequest) error {
	return c.do(ctx, call{method: http.MethodPost, path: "/auth/login", body: req}, nil)
}

// Me probes the current session. Any failure, including no session, yields nil.
func (c *Client) Me(ctx context.Context) *auth.User {
	var user auth.User
	if err := c.do(ctx, call{method: http.MethodGet, path: "/auth/me"}, &user); err != nil {
		logger.GetLogger().Debugf("pizzahub: no current user: %v", err)
		return nil
	}
	if user.ID == "" {
		return nil
	}
	return &user
}

// Refresh renews the session cookies. It never goes through the refresh-and-retry path.
func (c *Client) Refresh(ctx context.Context) error {
	status, body, err := c.send(ctx, call{method: http.MethodPost, path: "/auth/refresh"})
	if err != nil {
		return err
	}
	if apiErr := decodeError(status, body); apiErr != nil {
		return apiErr
	}
	return nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, call{method: http.MethodPost, path: "/auth/logout"}, nil)
}
