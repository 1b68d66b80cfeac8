package pizzahub

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pizzaops.io/admin-dashboard/app/domain/auth"
	"pizzaops.io/admin-dashboard/app/domain/common"
	"pizzaops.io/admin-dashboard/app/domain/order"
	"pizzaops.io/admin-dashboard/app/domain/pizza"
	"pizzaops.io/admin-dashboard/app/domain/query"
	"pizzaops.io/admin-dashboard/app/domain/upload"
	"pizzaops.io/admin-dashboard/app/utils/httpclients"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	jar, err := httpclients.NewCookieJar()
	require.NoError(t, err)
	return NewClientWithBaseURL(server.URL, jar)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestListPizzasEncodesParamsAndDecodesList(t *testing.T) {
	available := true
	mux := http.NewServeMux()
	mux.HandleFunc("GET /menu/pizzas", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "4", r.URL.Query().Get("limit"))
		assert.Equal(t, "created_at:desc", r.URL.Query().Get("sortBy"))
		assert.Equal(t, "true", r.URL.Query().Get("isAvailable"))
		assert.False(t, r.URL.Query().Has("featured"))
		writeJSON(w, http.StatusOK, map[string]any{
			"items": []map[string]any{{"id": "p1", "name": "Margherita", "basePrice": 199, "isAvailable": true, "category": "veg"}},
			"total": 5, "page": 2, "limit": 4, "pages": 2,
		})
	})
	client := newTestClient(t, mux)

	list, err := client.ListPizzas(context.Background(), pizza.ListParams{
		Pagination:  query.Pagination{Page: 2, Limit: 4, SortBy: "created_at:desc"},
		IsAvailable: &available,
	})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Margherita", list.Items[0].Name)
	assert.Equal(t, float64(199), list.Items[0].BasePrice)
	assert.Equal(t, pizza.CategoryVeg, list.Items[0].Category)
	assert.Equal(t, 2, list.Pages)
}

func TestMissingTokenRefreshesAndRetriesOnce(t *testing.T) {
	var ordersCalls, refreshCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		http.SetCookie(w, &http.Cookie{Name: "accessToken", Value: "renewed", Path: "/"})
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("PATCH /orders/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		ordersCalls.Add(1)
		if cookie, err := r.Cookie("accessToken"); err != nil || cookie.Value != "renewed" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": common.MissingTokenCode, "message": "token missing"})
			return
		}
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "confirmed", body["orderStatus"])
		writeJSON(w, http.StatusOK, map[string]any{"id": r.PathValue("id"), "orderStatus": "confirmed"})
	})
	client := newTestClient(t, mux)

	updated, err := client.UpdateOrderStatus(context.Background(), "o-1", order.OrderStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, "o-1", updated.ID)
	assert.Equal(t, order.OrderStatusConfirmed, updated.OrderStatus)
	assert.Equal(t, int32(2), ordersCalls.Load())
	assert.Equal(t, int32(1), refreshCalls.Load())
}

func TestMissingTokenIsRetriedAtMostOnce(t *testing.T) {
	var ordersCalls, refreshCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("GET /orders", func(w http.ResponseWriter, r *http.Request) {
		ordersCalls.Add(1)
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": common.MissingTokenCode})
	})
	client := newTestClient(t, mux)

	_, err := client.ListOrders(context.Background(), order.DefaultListParams)

	var apiErr *common.ApiError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, int32(2), ordersCalls.Load())
	assert.Equal(t, int32(1), refreshCalls.Load())
}

func TestOtherErrorsAreNotRetried(t *testing.T) {
	testCases := []struct {
		name            string
		status          int
		body            string
		expectedCode    string
		expectedMessage string
	}{
		{
			name:            "401 with another code",
			status:          http.StatusUnauthorized,
			body:            `{"error":"INVALID_TOKEN","message":"token invalid"}`,
			expectedCode:    "INVALID_TOKEN",
			expectedMessage: "token invalid",
		},
		{
			name:            "validation message list",
			status:          http.StatusBadRequest,
			body:            `{"error":"Bad Request","message":["name must be unique","price must be positive"]}`,
			expectedCode:    "Bad Request",
			expectedMessage: "name must be unique; price must be positive",
		},
		{
			name:   "non json body",
			status: http.StatusBadGateway,
			body:   `<html>bad gateway</html>`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var refreshCalls atomic.Int32
			mux := http.NewServeMux()
			mux.HandleFunc("POST /auth/refresh", func(w http.ResponseWriter, r *http.Request) {
				refreshCalls.Add(1)
			})
			mux.HandleFunc("DELETE /menu/pizzas/{id}", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			})
			client := newTestClient(t, mux)

			err := client.DeletePizza(context.Background(), "p-1")

			var apiErr *common.ApiError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tc.status, apiErr.Status)
			assert.Equal(t, tc.expectedCode, apiErr.Code)
			assert.Equal(t, tc.expectedMessage, apiErr.Message)
			assert.Zero(t, refreshCalls.Load())
		})
	}
}

func TestMeReturnsNilOnAnyFailure(t *testing.T) {
	testCases := []struct {
		name     string
		handler  http.HandlerFunc
		expected *auth.User
	}{
		{
			name: "signed in",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, auth.User{ID: "u1", Name: "Asha", Email: "asha@example.com", Role: "admin"})
			},
			expected: &auth.User{ID: "u1", Name: "Asha", Email: "asha@example.com", Role: "admin"},
		},
		{
			name: "unauthorized",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "INVALID_TOKEN"})
			},
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("GET /auth/me", tc.handler)
			client := newTestClient(t, mux)

			assert.Equal(t, tc.expected, client.Me(context.Background()))
		})
	}
}

func TestLoginStoresSessionCookies(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body auth.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "admin@example.com", body.Email)
		http.SetCookie(w, &http.Cookie{Name: "accessToken", Value: "t1", Path: "/"})
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("GET /menu/crusts", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("accessToken")
		require.NoError(t, err)
		assert.Equal(t, "t1", cookie.Value)
		writeJSON(w, http.StatusOK, []map[string]any{{"id": "c1", "name": "Thin", "additionalPrice": 0}})
	})
	client := newTestClient(t, mux)

	require.NoError(t, client.Login(context.Background(), auth.LoginRequest{Email: "admin@example.com", Password: "secret"}))
	crusts, err := client.ListCrusts(context.Background())
	require.NoError(t, err)
	assert.Len(t, crusts, 1)
}

func TestUploadFlow(t *testing.T) {
	objectStore := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "image/png", r.Header.Get("Content-Type"))
		assert.Equal(t, "public-read", r.Header.Get("x-amz-acl"))
		assert.Empty(t, r.Header.Get("Cookie"))
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, []byte("png-bytes"), body)
		w.WriteHeader(http.StatusOK)
	}))
	defer objectStore.Close()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /uploads/presigned-url", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"entity_type": "pizza", "content_type": "image/png"}, body)
		writeJSON(w, http.StatusOK, upload.PresignedURL{UploadURL: objectStore.URL + "/bucket/p.png", FileURL: "https://cdn.example.com/p.png"})
	})
	client := newTestClient(t, mux)

	presigned, err := client.PresignUpload(context.Background(), upload.EntityPizza, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/p.png", presigned.FileURL)
	require.NoError(t, client.PutObject(context.Background(), presigned.UploadURL, "image/png", []byte("png-bytes")))
}

func TestNetworkErrorHasZeroStatus(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()
	jar, _ := httpclients.NewCookieJar()
	client := NewClientWithBaseURL(url, jar)

	_, err := client.ListSizes(context.Background())

	var apiErr *common.ApiError
	require.True(t, errors.As(err, &apiErr))
	assert.Zero(t, apiErr.Status)
	assert.Equal(t, common.GenericErrorMessage, common.UserMessage(err))
}
