package order

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"pizzaops.io/admin-dashboard/app/domain/mutation"
	"pizzaops.io/admin-dashboard/app/infrastructure/cache"
	"pizzaops.io/admin-dashboard/app/utils/functional"
)

const StatusUpdatedMessage = "updated order-status"

type OrderGateway interface {
	ListOrders(ctx context.Context, params ListParams) (*OrderList, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status OrderStatus) (*Order, error)
	OrderSummary(ctx context.Context) (*Summary, error)
	MonthlySales(ctx context.Context, params MonthlySalesParams) ([]MonthlySales, error)
}

type OrderService struct {
	gateway   OrderGateway
	cache     *cache.QueryCache
	mutations *mutation.Coordinator
}

func NewService(gateway OrderGateway, queryCache *cache.QueryCache, mutations *mutation.Coordinator) *OrderService {
	return &OrderService{
		gateway:   gateway,
		cache:     queryCache,
		mutations: mutations,
	}
}

func ListKey(params ListParams) cache.Key {
	return cache.NewKey(cache.ResourceOrders, params.Values())
}

func SummaryKey() cache.Key {
	return cache.NewKey(cache.ResourceOrderStats, url.Values{"view": {"summary"}})
}

func MonthlySalesKey(params MonthlySalesParams) cache.Key {
	values := params.Values()
	values.Set("view", "monthly-sales")
	return cache.NewKey(cache.ResourceOrderStats, values)
}

func (s *OrderService) ListOrders(ctx context.Context, params ListParams) (*OrderList, error) {
	return cache.Ensure(ctx, s.cache, ListKey(params), func(ctx context.Context) (*OrderList, error) {
		return s.gateway.ListOrders(ctx, params)
	})
}

func (s *OrderService) Summary(ctx context.Context) (*Summary, error) {
	return cache.Ensure(ctx, s.cache, SummaryKey(), s.gateway.OrderSummary)
}

func (s *OrderService) MonthlySales(ctx context.Context, params MonthlySalesParams) ([]MonthlySales, error) {
	return cache.Ensure(ctx, s.cache, MonthlySalesKey(params), func(ctx context.Context) ([]MonthlySales, error) {
		return s.gateway.MonthlySales(ctx, params)
	})
}

// CachedStatus looks orderID up in the fresh cached order pages. When several
// fresh pages hold the order the most recently written one wins. Stale pages
// are ignored since they may predate a status change.
func (s *OrderService) CachedStatus(orderID string) (OrderStatus, bool) {
	var status OrderStatus
	var latest time.Time
	found := false
	s.cache.Range(cache.ResourceKey(cache.ResourceOrders), func(st cache.State) bool {
		if st.Status != cache.StatusFresh {
			return true
		}
		list, ok := st.Value.(*OrderList)
		if !ok || list == nil {
			return true
		}
		o, ok := functional.Find(list.Items, func(o Order) bool { return o.ID == orderID })
		if ok && (!found || st.UpdatedAt.After(latest)) {
			status, latest, found = o.OrderStatus, st.UpdatedAt, true
		}
		return true
	})
	return status, found
}

// UpdateStatus moves an order to next. A move the lifecycle forbids is
// rejected before the backend is called; when the order is not cached the
// backend has the final say.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, next OrderStatus) (*Order, error) {
	if !next.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, next)
	}
	if current, ok := s.CachedStatus(orderID); ok {
		if err := ValidateTransition(current, next); err != nil {
			return nil, err
		}
	}
	return mutation.RunPlain(ctx, s.mutations, mutation.Plain[*Order]{
		Resource: cache.ResourceOrders,
		Invalidate: []cache.Key{
			cache.ResourceKey(cache.ResourceOrders),
			cache.ResourceKey(cache.ResourceOrderStats),
		},
		Request: func(ctx context.Context) (*Order, error) {
			return s.gateway.UpdateOrderStatus(ctx, orderID, next)
		},
		SuccessMessage: StatusUpdatedMessage,
	})
}

// WatchOrders delivers the order page for params now and again after every
// change until ctx is done.
func (s *OrderService) WatchOrders(ctx context.Context, params ListParams, onChange func(*OrderList, error)) {
	cache.Watch(ctx, s.cache, ListKey(params), func(ctx context.Context) (*OrderList, error) {
		return s.gateway.ListOrders(ctx, params)
	}, onChange)
}
