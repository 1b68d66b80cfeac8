package size

import (
	"context"

	"pizzaops.io/admin-dashboard/app/domain/common"
	"pizzaops.io/admin-dashboard/app/domain/mutation"
	"pizzaops.io/admin-dashboard/app/domain/query"
	"pizzaops.io/admin-dashboard/app/infrastructure/cache"
)

const (
	CreatedMessage = "new size added"
	UpdatedMessage = "Size update successful"
)

type SizeGateway interface {
	ListSizes(ctx context.Context) ([]Size, error)
	CreateSize(ctx context.Context, form Form) (*Size, error)
	UpdateSize(ctx context.Context, sizeID string, form Form) (*Size, error)
	DeleteSize(ctx context.Context, sizeID string) error
	SetSizeAvailability(ctx context.Context, sizeID string, isAvailable bool) (*Size, error)
}

type SizeService struct {
	gateway   SizeGateway
	cache     *cache.QueryCache
	mutations *mutation.Coordinator
}

func NewService(gateway SizeGateway, queryCache *cache.QueryCache, mutations *mutation.Coordinator) *SizeService {
	return &SizeService{gateway: gateway, cache: queryCache, mutations: mutations}
}

func ListKey() cache.Key {
	return cache.ResourceKey(cache.ResourceSizes)
}

func (s *SizeService) ListSizes(ctx context.Context) ([]Size, error) {
	return cache.Ensure(ctx, s.cache, ListKey(), s.gateway.ListSizes)
}

func (s *SizeService) CreateSize(ctx context.Context, form Form) (*Size, error) {
	if err := common.Validate(form); err != nil {
		return nil, err
	}
	return mutation.RunPlain(ctx, s.mutations, mutation.Plain[*Size]{
		Resource: cache.ResourceSizes,
		Request: func(ctx context.Context) (*Size, error) {
			return s.gateway.CreateSize(ctx, form)
		},
		SuccessMessage: CreatedMessage,
	})
}

func (s *SizeService) UpdateSize(ctx context.Context, sizeID string, form Form) (*Size, error) {
	if err := common.Validate(form); err != nil {
		return nil, err
	}
	return mutation.RunPlain(ctx, s.mutations, mutation.Plain[*Size]{
		Resource: cache.ResourceSizes,
		Request: func(ctx context.Context) (*Size, error) {
			return s.gateway.UpdateSize(ctx, sizeID, form)
		},
		SuccessMessage: UpdatedMessage,
	})
}

func (s *SizeService) DeleteSize(ctx context.Context, sizeID string) error {
	_, err := mutation.RunOptimistic(ctx, s.mutations, mutation.Optimistic[[]Size, struct{}]{
		Key: ListKey(),
		Apply: func(old []Size) []Size {
			return query.RemoveItems(old, func(sz Size) bool { return sz.ID == sizeID })
		},
		Request: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.gateway.DeleteSize(ctx, sizeID)
		},
	})
	return err
}

func (s *SizeService) SetAvailability(ctx context.Context, sizeID string, isAvailable bool) (*Size, error) {
	return mutation.RunOptimistic(ctx, s.mutations, mutation.Optimistic[[]Size, *Size]{
		Key: ListKey(),
		Apply: func(old []Size) []Size {
			return query.ReplaceItems(old, func(sz Size) bool { return sz.ID == sizeID }, func(sz Size) Size {
				sz.IsAvailable = isAvailable
				return sz
			})
		},
		Request: func(ctx context.Context) (*Size, error) {
			return s.gateway.SetSizeAvailability(ctx, sizeID, isAvailable)
		},
	})
}
