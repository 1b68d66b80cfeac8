package v1_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"pizzaops.io/admin-dashboard/app/domain/auth"
	"pizzaops.io/admin-dashboard/app/domain/common"
	"pizzaops.io/admin-dashboard/app/domain/crust"
	"pizzaops.io/admin-dashboard/app/domain/mutation"
	"pizzaops.io/admin-dashboard/app/domain/notice"
	"pizzaops.io/admin-dashboard/app/domain/order"
	"pizzaops.io/admin-dashboard/app/domain/pizza"
	"pizzaops.io/admin-dashboard/app/domain/query"
	"pizzaops.io/admin-dashboard/app/domain/size"
	"pizzaops.io/admin-dashboard/app/domain/topping"
	"pizzaops.io/admin-dashboard/app/domain/upload"
	"pizzaops.io/admin-dashboard/app/infrastructure/cache"
	"pizzaops.io/admin-dashboard/app/infrastructure/realtime"
	"pizzaops.io/admin-dashboard/app/interfaces/http/responses"
	v1 "pizzaops.io/admin-dashboard/app/interfaces/http/routes/v1"
	authRoute "pizzaops.io/admin-dashboard/app/interfaces/http/routes/v1/auth"
	"pizzaops.io/admin-dashboard/app/interfaces/http/routes/v1/menu"
	"pizzaops.io/admin-dashboard/app/interfaces/http/routes/v1/notices"
	"pizzaops.io/admin-dashboard/app/interfaces/http/routes/v1/orders"
	"pizzaops.io/admin-dashboard/app/interfaces/http/routes/v1/system"
	"pizzaops.io/admin-dashboard/app/mocks/authmock"
	"pizzaops.io/admin-dashboard/app/mocks/crustmock"
	"pizzaops.io/admin-dashboard/app/mocks/ordermock"
	"pizzaops.io/admin-dashboard/app/mocks/pizzamock"
	"pizzaops.io/admin-dashboard/app/mocks/sizemock"
	"pizzaops.io/admin-dashboard/app/mocks/toppingmock"
	"pizzaops.io/admin-dashboard/app/mocks/uploadmock"
)

type fakeChannel struct {
	status  realtime.Status
	sendErr error
	sent    []realtime.Message
}

func (f *fakeChannel) Status() realtime.Status { return f.status }

func (f *fakeChannel) Send(ctx context.Context, msg realtime.Message) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, msg)
	return nil
}

type fixture struct {
	authGateway  *authmock.MockAuthGateway
	pizzaGateway *pizzamock.MockPizzaGateway
	orderGateway *ordermock.MockOrderGateway
	uploader     *uploadmock.MockUploader
	cache        *cache.QueryCache
	notices      *notice.Center
	mutations    *mutation.Coordinator
	channel      *fakeChannel
	engine       *gin.Engine
}

func newFixture(t *testing.T) fixture {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	qc := cache.NewQueryCache(&cache.NoOpCacheService{})
	center := notice.NewCenter()
	mutations := mutation.NewCoordinator(qc, center)

	f := fixture{
		authGateway:  authmock.NewMockAuthGateway(ctrl),
		pizzaGateway: pizzamock.NewMockPizzaGateway(ctrl),
		orderGateway: ordermock.NewMockOrderGateway(ctrl),
		uploader:     uploadmock.NewMockUploader(ctrl),
		cache:        qc,
		notices:      center,
		mutations:    mutations,
		channel:      &fakeChannel{status: realtime.Status{State: realtime.StateDisconnected}},
		engine:       gin.New(),
	}

	authService := auth.NewAuthService(f.authGateway, qc, mutations)
	menuRoute := menu.NewMenuRoute(
		menu.NewPizzaRoute(pizza.NewService(f.pizzaGateway, f.uploader, qc, mutations)),
		menu.NewCrustRoute(crust.NewService(crustmock.NewMockCrustGateway(ctrl), qc, mutations)),
		menu.NewSizeRoute(size.NewService(sizemock.NewMockSizeGateway(ctrl), qc, mutations)),
		menu.NewToppingRoute(topping.NewService(toppingmock.NewMockToppingGateway(ctrl), f.uploader, qc, mutations)),
	)
	route := v1.NewV1Route(
		authService,
		authRoute.NewAuthRoute(authService),
		menuRoute,
		orders.NewOrdersRoute(order.NewService(f.orderGateway, qc, mutations)),
		notices.NewNoticesRoute(center),
		system.NewSystemRoute(f.channel, mutations, qc),
	)
	route.RegisterRouter(f.engine.Group("/api"))
	return f
}

func (f fixture) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	f.engine.ServeHTTP(recorder, req)
	return recorder
}

func (f fixture) login(t *testing.T) {
	t.Helper()
	f.authGateway.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil)
	f.authGateway.EXPECT().Me(gomock.Any()).Return(&auth.User{ID: "u1", Email: "admin@example.com", Role: "admin"})
	recorder := f.do(http.MethodPost, "/api/v1/auth/login", auth.LoginRequest{Email: "admin@example.com", Password: "secret"})
	require.Equal(t, http.StatusOK, recorder.Code)
}

func decode[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &out))
	return out
}

func TestVersionIsPublic(t *testing.T) {
	f := newFixture(t)

	recorder := f.do(http.MethodGet, "/api/v1/version", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "version")
}

func TestSessionRoutesRequireLogin(t *testing.T) {
	f := newFixture(t)

	for _, path := range []string{"/api/v1/orders", "/api/v1/menu/pizzas", "/api/v1/notices", "/api/v1/system/realtime"} {
		t.Run(path, func(t *testing.T) {
			recorder := f.do(http.MethodGet, path, nil)
			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		})
	}
}

func TestLoginFailureSurfacesBackendMessage(t *testing.T) {
	f := newFixture(t)
	f.authGateway.EXPECT().Login(gomock.Any(), gomock.Any()).Return(&common.ApiError{Status: http.StatusUnauthorized, Message: "Invalid credentials"})

	recorder := f.do(http.MethodPost, "/api/v1/auth/login", auth.LoginRequest{Email: "admin@example.com", Password: "wrong"})

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "Invalid credentials", decode[responses.ErrorResponse](t, recorder).Error)
	recent := f.notices.Recent()
	require.Len(t, recent, 1)
	assert.Equal(t, notice.LevelError, recent[0].Level)
}

func TestLoginValidation(t *testing.T) {
	f := newFixture(t)

	recorder := f.do(http.MethodPost, "/api/v1/auth/login", auth.LoginRequest{Email: "not-an-email"})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	body := decode[responses.ErrorResponse](t, recorder)
	assert.Contains(t, body.Fields, "email")
	assert.Contains(t, body.Fields, "password")
}

func TestLogoutEndsSession(t *testing.T) {
	f := newFixture(t)
	f.login(t)
	f.authGateway.EXPECT().Logout(gomock.Any()).Return(nil)

	assert.Equal(t, http.StatusNoContent, f.do(http.MethodPost, "/api/v1/auth/logout", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, "/api/v1/orders", nil).Code)
}

func TestListOrdersIncludesAllowedTransitions(t *testing.T) {
	f := newFixture(t)
	f.login(t)
	f.orderGateway.EXPECT().ListOrders(gomock.Any(), order.DefaultListParams).Return(&order.OrderList{
		Items: []order.Order{
			{ID: "o1", OrderStatus: order.OrderStatusPending},
			{ID: "o2", OrderStatus: order.OrderStatusDelivered},
		},
		Total: 2, Page: 1, Limit: 5, Pages: 1,
	}, nil)

	recorder := f.do(http.MethodGet, "/api/v1/orders", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	body := decode[responses.ListResponse[orders.OrderView]](t, recorder)
	require.Len(t, body.Items, 2)
	assert.Equal(t, []order.OrderStatus{order.OrderStatusConfirmed, order.OrderStatusCancelled}, body.Items[0].AllowedTransitions)
	assert.Empty(t, body.Items[1].AllowedTransitions)
	assert.Equal(t, 2, body.Total)
}

func TestListOrdersRejectsBadQuery(t *testing.T) {
	f := newFixture(t)
	f.login(t)

	for _, path := range []string{"/api/v1/orders?page=0", "/api/v1/orders?orderStatus=lost", "/api/v1/orders/stats/monthly-sales?year=abc"} {
		t.Run(path, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, path, nil).Code)
		})
	}
}

func TestUpdateStatusRejectsForbiddenMoveWithoutCallingBackend(t *testing.T) {
	f := newFixture(t)
	f.login(t)
	f.orderGateway.EXPECT().ListOrders(gomock.Any(), order.DefaultListParams).Return(&order.OrderList{
		Items: []order.Order{{ID: "o1", OrderStatus: order.OrderStatusDelivered}},
		Total: 1, Page: 1, Limit: 5, Pages: 1,
	}, nil)
	require.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/v1/orders", nil).Code)

	recorder := f.do(http.MethodPatch, "/api/v1/orders/o1/status", orders.UpdateStatusRequest{OrderStatus: order.OrderStatusCancelled})

	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Contains(t, decode[responses.ErrorResponse](t, recorder).Error, "invalid order status transition")
}

func TestUpdateStatusSucceeds(t *testing.T) {
	f := newFixture(t)
	f.login(t)
	f.orderGateway.EXPECT().UpdateOrderStatus(gomock.Any(), "o1", order.OrderStatusConfirmed).
		Return(&order.Order{ID: "o1", OrderStatus: order.OrderStatusConfirmed}, nil)

	recorder := f.do(http.MethodPatch, "/api/v1/orders/o1/status", orders.UpdateStatusRequest{OrderStatus: order.OrderStatusConfirmed})

	require.Equal(t, http.StatusOK, recorder.Code)
	body := decode[responses.GeneralResponse[orders.OrderView]](t, recorder)
	assert.Equal(t, []order.OrderStatus{order.OrderStatusPreparing, order.OrderStatusCancelled}, body.Result.AllowedTransitions)
	assert.Equal(t, order.StatusUpdatedMessage, f.notices.Recent()[len(f.notices.Recent())-1].Message)
}

func TestDeleteLastPizzaOnPageMovesBack(t *testing.T) {
	f := newFixture(t)
	f.login(t)
	page2 := pizza.ListParams{Pagination: query.Pagination{Page: 2, Limit: 4, SortBy: "created_at:desc"}}
	f.pizzaGateway.EXPECT().ListPizzas(gomock.Any(), page2).Return(&pizza.PizzaList{
		Items: []pizza.Pizza{{ID: "p5", Name: "Farmhouse"}},
		Total: 5, Page: 2, Limit: 4, Pages: 2,
	}, nil)
	f.pizzaGateway.EXPECT().DeletePizza(gomock.Any(), "p5").Return(nil)
	require.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/v1/menu/pizzas?page=2", nil).Code)

	recorder := f.do(http.MethodDelete, "/api/v1/menu/pizzas/p5?page=2", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	body := decode[responses.GeneralResponse[menu.DeletePizzaResponse]](t, recorder)
	assert.True(t, body.Result.Deleted)
	require.NotNil(t, body.Result.Page)
	assert.Equal(t, 1, *body.Result.Page)
}

func TestCreatePizzaWithImage(t *testing.T) {
	f := newFixture(t)
	f.login(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("name", "Margherita"))
	require.NoError(t, writer.WriteField("description", "Tomato, mozzarella, basil"))
	require.NoError(t, writer.WriteField("basePrice", "199"))
	require.NoError(t, writer.WriteField("category", "veg"))
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="m.png"`)
	header.Set("Content-Type", "image/png")
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	f.uploader.EXPECT().Upload(gomock.Any(), upload.EntityPizza, &upload.File{Name: "m.png", ContentType: "image/png", Data: []byte("png-bytes")}).
		Return("https://cdn.example.com/m.png", nil)
	f.pizzaGateway.EXPECT().CreatePizza(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req pizza.WriteRequest) (*pizza.Pizza, error) {
		assert.Equal(t, "https://cdn.example.com/m.png", req.ImageURL)
		assert.Equal(t, float64(199), req.BasePrice)
		return &pizza.Pizza{ID: "p1", Name: req.Name, ImageURL: req.ImageURL}, nil
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/menu/pizzas", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	recorder := httptest.NewRecorder()
	f.engine.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusCreated, recorder.Code)
	body := decode[responses.GeneralResponse[pizza.Pizza]](t, recorder)
	assert.Equal(t, "p1", body.Result.ID)
}

func TestCreatePizzaValidationFields(t *testing.T) {
	f := newFixture(t)
	f.login(t)

	recorder := f.do(http.MethodPost, "/api/v1/menu/pizzas", pizza.Form{Name: "Margherita", Category: "vegan"})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	body := decode[responses.ErrorResponse](t, recorder)
	assert.Contains(t, body.Fields, "category")
}

func TestToggleRequiresFlag(t *testing.T) {
	f := newFixture(t)
	f.login(t)

	recorder := f.do(http.MethodPatch, "/api/v1/menu/pizzas/p1/featured", map[string]any{})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRecentNotices(t *testing.T) {
	f := newFixture(t)
	f.login(t)
	f.notices.Info("Order #12 was delayed")

	recorder := f.do(http.MethodGet, "/api/v1/notices", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	body := decode[responses.GeneralResponse[[]notice.Notice]](t, recorder)
	require.NotEmpty(t, body.Result)
	assert.Equal(t, "Order #12 was delayed", body.Result[len(body.Result)-1].Message)
}

func TestSendRealtimeMessage(t *testing.T) {
	testCases := []struct {
		name     string
		sendErr  error
		expected int
	}{
		{name: "connected", expected: http.StatusAccepted},
		{name: "not connected", sendErr: realtime.ErrNotConnected, expected: http.StatusConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.login(t)
			f.channel.sendErr = tc.sendErr

			recorder := f.do(http.MethodPost, "/api/v1/system/realtime/messages", realtime.Message{Type: realtime.MessageOrderCreated, Message: "ping"})

			assert.Equal(t, tc.expected, recorder.Code)
		})
	}
}

func TestInvalidateCacheMarksResourceStale(t *testing.T) {
	f := newFixture(t)
	f.login(t)
	key := order.ListKey(order.DefaultListParams)
	f.cache.Write(key, &order.OrderList{})
	require.Equal(t, cache.StatusFresh, f.cache.State(key).Status)

	recorder := f.do(http.MethodPost, "/api/v1/system/cache/invalidate", system.CacheInvalidateRequest{Resource: cache.ResourceOrders})

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, cache.StatusStale, f.cache.State(key).Status)
}

func TestPendingMutationsIsEmptyWhenIdle(t *testing.T) {
	f := newFixture(t)
	f.login(t)

	recorder := f.do(http.MethodGet, "/api/v1/system/mutations", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, decode[responses.GeneralResponse[map[string]int]](t, recorder).Result)
}
