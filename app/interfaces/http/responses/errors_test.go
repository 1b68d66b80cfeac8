package responses

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pizzaops.io/admin-dashboard/app/domain/auth"
	"pizzaops.io/admin-dashboard/app/domain/common"
	"pizzaops.io/admin-dashboard/app/domain/order"
	"pizzaops.io/admin-dashboard/app/domain/upload"
)

func TestStatusFor(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "validation", err: &common.ValidationError{Fields: map[string]string{"name": "is required"}}, expected: http.StatusBadRequest},
		{name: "transition", err: order.ValidateTransition(order.OrderStatusDelivered, order.OrderStatusPending), expected: http.StatusConflict},
		{name: "no session", err: fmt.Errorf("login: %w", auth.ErrNoSession), expected: http.StatusUnauthorized},
		{name: "upload", err: &upload.Error{Entity: upload.EntityPizza, Err: errors.New("s3 down")}, expected: http.StatusBadGateway},
		{name: "backend 404", err: &common.ApiError{Status: http.StatusNotFound}, expected: http.StatusNotFound},
		{name: "backend unreachable", err: &common.ApiError{Err: errors.New("dial tcp")}, expected: http.StatusBadGateway},
		{name: "unexpected", err: errors.New("boom"), expected: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, StatusFor(tc.err))
		})
	}
}

func TestAbortIncludesFieldErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	reqCtx, _ := gin.CreateTestContext(recorder)

	Abort(reqCtx, "c0ffee", &common.ValidationError{Fields: map[string]string{"price": "must be at least 1"}})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "c0ffee", body.Code)
	assert.Equal(t, "price must be at least 1", body.Error)
	assert.Equal(t, map[string]string{"price": "must be at least 1"}, body.Fields)
}
