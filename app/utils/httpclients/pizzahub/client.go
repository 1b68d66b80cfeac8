package pizzahub

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
	"pizzaops.io/admin-dashboard/app/domain/common"
	"pizzaops.io/admin-dashboard/app/utils/httpclients"
	"pizzaops.io/admin-dashboard/app/utils/logger"
	"pizzaops.io/admin-dashboard/config/environment_variables"
	"resty.dev/v3"
)

// Client is the typed gateway to the pizza backend. Every backend operation
// the dashboard uses has one method here.
type Client struct {
	rest        *resty.Client
	objectStore *resty.Client
	jar         http.CookieJar
	refreshes   singleflight.Group
}

func NewClient() (*Client, error) {
	jar, err := httpclients.NewCookieJar()
	if err != nil {
		return nil, fmt.Errorf("pizzahub: cookie jar: %w", err)
	}
	return NewClientWithBaseURL(environment_variables.EnvironmentVariables.API_BASE_URL, jar), nil
}

func NewClientWithBaseURL(baseURL string, jar http.CookieJar) *Client {
	rest := httpclients.NewClient("PizzaHubClient")
	rest.SetBaseURL(strings.TrimRight(baseURL, "/"))
	rest.SetCookieJar(jar)
	return &Client{
		rest:        rest,
		objectStore: httpclients.NewClient("ObjectStoreClient"),
		jar:         jar,
	}
}

// CookieJar exposes the session cookies for the realtime dialer.
func (c *Client) CookieJar() http.CookieJar {
	return c.jar
}

type call struct {
	method string
	path   string
	query  url.Values
	body   any
}

// do sends the call and decodes a 2xx body into out. A 401 MISSING_TOKEN
// triggers one session refresh and one replay of the call.
func (c *Client) do(ctx context.Context, cl call, out any) error {
	status, body, err := c.send(ctx, cl)
	if err != nil {
		return err
	}
	apiErr := decodeError(status, body)
	if apiErr != nil && apiErr.IsMissingToken() {
		if refreshErr := c.refreshSession(ctx); refreshErr != nil {
			logger.GetLogger().Warnf("pizzahub: session refresh failed: %v", refreshErr)
			return apiErr
		}
		status, body, err = c.send(ctx, cl)
		if err != nil {
			return err
		}
		apiErr = decodeError(status, body)
	}
	if apiErr != nil {
		return apiErr
	}
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("pizzahub: decode %s %s: %w", cl.method, cl.path, err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, cl call) (int, []byte, error) {
	requestID := uuid.NewString()
	req := c.rest.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetHeader("X-Request-ID", requestID).
		SetDoNotParseResponse(true)
	if cl.body != nil {
		payload, err := json.Marshal(cl.body)
		if err != nil {
			return 0, nil, fmt.Errorf("pizzahub: encode %s %s: %w", cl.method, cl.path, err)
		}
		req.SetHeader("Content-Type", "application/json").SetBody(payload)
	}
	target := cl.path
	if len(cl.query) > 0 {
		target += "?" + cl.query.Encode()
	}

	start := time.Now()
	resp, err := req.Execute(cl.method, target)
	if err != nil {
		return 0, nil, &common.ApiError{Err: err}
	}
	defer resp.RawResponse.Body.Close()
	body, err := io.ReadAll(resp.RawResponse.Body)
	if err != nil {
		return 0, nil, &common.ApiError{Status: resp.StatusCode(), Err: fmt.Errorf("read body: %w", err)}
	}

	logger.GetLogger().WithFields(logrus.Fields{
		"request_id": requestID,
		"method":     cl.method,
		"path":       cl.path,
		"status":     resp.StatusCode(),
		"latency":    time.Since(start).String(),
	}).Debug("pizzahub request")
	return resp.StatusCode(), body, nil
}

type errorBody struct {
	Error   string          `json:"error"`
	Message json.RawMessage `json:"message"`
}

func decodeError(status int, body []byte) *common.ApiError {
	if status < http.StatusBadRequest {
		return nil
	}
	apiErr := &common.ApiError{Status: status}
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return apiErr
	}
	apiErr.Code = parsed.Error
	apiErr.Message = decodeMessage(parsed.Message)
	return apiErr
}

// decodeMessage accepts a string or a list of strings.
func decodeMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return single
	}
	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		return strings.Join(many, "; ")
	}
	return ""
}

// refreshSession coalesces concurrent refreshes into one backend call.
func (c *Client) refreshSession(ctx context.Context) error {
	_, err, _ := c.refreshes.Do("refresh", func() (any, error) {
		return nil, c.Refresh(context.WithoutCancel(ctx))
	})
	return err
}

func pathf(format string, ids ...string) string {
	escaped := make([]any, len(ids))
	for i, id := range ids {
		escaped[i] = url.PathEscape(id)
	}
	return fmt.Sprintf(format, escaped...)
}
