package crust

import (
	"context"

	"pizzaops.io/admin-dashboard/app/domain/common"
	"pizzaops.io/admin-dashboard/app/domain/mutation"
	"pizzaops.io/admin-dashboard/app/domain/query"
	"pizzaops.io/admin-dashboard/app/infrastructure/cache"
)

const (
	CreatedMessage = "new crust added"
	UpdatedMessage = "crust update successful"
)

type CrustGateway interface {
	ListCrusts(ctx context.Context) ([]Crust, error)
	CreateCrust(ctx context.Context, req WriteRequest) (*Crust, error)
	UpdateCrust(ctx context.Context, crustID string, req WriteRequest) (*Crust, error)
	DeleteCrust(ctx context.Context, crustID string) error
	SetCrustAvailability(ctx context.Context, crustID string, isAvailable bool) (*Crust, error)
}

type CrustService struct {
	gateway   CrustGateway
	cache     *cache.QueryCache
	mutations *mutation.Coordinator
}

func NewService(gateway CrustGateway, queryCache *cache.QueryCache, mutations *mutation.Coordinator) *CrustService {
	return &CrustService{gateway: gateway, cache: queryCache, mutations: mutations}
}

func ListKey() cache.Key {
	return cache.ResourceKey(cache.ResourceCrusts)
}

func (s *CrustService) ListCrusts(ctx context.Context) ([]Crust, error) {
	return cache.Ensure(ctx, s.cache, ListKey(), s.gateway.ListCrusts)
}

func (s *CrustService) CreateCrust(ctx context.Context, form Form) (*Crust, error) {
	if err := common.Validate(form); err != nil {
		return nil, err
	}
	return mutation.RunPlain(ctx, s.mutations, mutation.Plain[*Crust]{
		Resource: cache.ResourceCrusts,
		Request: func(ctx context.Context) (*Crust, error) {
			return s.gateway.CreateCrust(ctx, form.Request())
		},
		SuccessMessage: CreatedMessage,
	})
}

func (s *CrustService) UpdateCrust(ctx context.Context, crustID string, form Form) (*Crust, error) {
	if err := common.Validate(form); err != nil {
		return nil, err
	}
	return mutation.RunPlain(ctx, s.mutations, mutation.Plain[*Crust]{
		Resource: cache.ResourceCrusts,
		Request: func(ctx context.Context) (*Crust, error) {
			return s.gateway.UpdateCrust(ctx, crustID, form.Request())
		},
		SuccessMessage: UpdatedMessage,
	})
}

func (s *CrustService) DeleteCrust(ctx context.Context, crustID string) error {
	_, err := mutation.RunOptimistic(ctx, s.mutations, mutation.Optimistic[[]Crust, struct{}]{
		Key: ListKey(),
		Apply: func(old []Crust) []Crust {
			return query.RemoveItems(old, func(c Crust) bool { return c.ID == crustID })
		},
		Request: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.gateway.DeleteCrust(ctx, crustID)
		},
	})
	return err
}

func (s *CrustService) SetAvailability(ctx context.Context, crustID string, isAvailable bool) (*Crust, error) {
	return mutation.RunOptimistic(ctx, s.mutations, mutation.Optimistic[[]Crust, *Crust]{
		Key: ListKey(),
		Apply: func(old []Crust) []Crust {
			return query.ReplaceItems(old, func(c Crust) bool { return c.ID == crustID }, func(c Crust) Crust {
				c.IsAvailable = isAvailable
				return c
			})
		},
		Request: func(ctx context.Context) (*Crust, error) {
			return s.gateway.SetCrustAvailability(ctx, crustID, isAvailable)
		},
	})
}
