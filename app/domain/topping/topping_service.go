package topping

import (
	"context"

	"pizzaops.io/admin-dashboard/app/domain/common"
	"pizzaops.io/admin-dashboard/app/domain/mutation"
	"pizzaops.io/admin-dashboard/app/domain/query"
	"pizzaops.io/admin-dashboard/app/domain/upload"
	"pizzaops.io/admin-dashboard/app/infrastructure/cache"
)

const (
	CreatedMessage = "new topping added"
	UpdatedMessage = "topping update successful"
)

type ToppingGateway interface {
	ListToppings(ctx context.Context, params ListParams) ([]Topping, error)
	CreateTopping(ctx context.Context, req WriteRequest) (*Topping, error)
	UpdateTopping(ctx context.Context, toppingID string, req WriteRequest) (*Topping, error)
	DeleteTopping(ctx context.Context, toppingID string) error
	SetToppingAvailability(ctx context.Context, toppingID string, isAvailable bool) (*Topping, error)
}

type ToppingService struct {
	gateway   ToppingGateway
	uploader  upload.Uploader
	cache     *cache.QueryCache
	mutations *mutation.Coordinator
}

func NewService(gateway ToppingGateway, uploader upload.Uploader, queryCache *cache.QueryCache, mutations *mutation.Coordinator) *ToppingService {
	return &ToppingService{
		gateway:   gateway,
		uploader:  uploader,
		cache:     queryCache,
		mutations: mutations,
	}
}

func ListKey(params ListParams) cache.Key {
	return cache.NewKey(cache.ResourceToppings, params.Values())
}

func (s *ToppingService) ListToppings(ctx context.Context, params ListParams) ([]Topping, error) {
	return cache.Ensure(ctx, s.cache, ListKey(params), func(ctx context.Context) ([]Topping, error) {
		return s.gateway.ListToppings(ctx, params)
	})
}

func (s *ToppingService) CreateTopping(ctx context.Context, form Form, image *upload.File) (*Topping, error) {
	return s.write(ctx, form, image, CreatedMessage, func(ctx context.Context, req WriteRequest) (*Topping, error) {
		return s.gateway.CreateTopping(ctx, req)
	})
}

func (s *ToppingService) UpdateTopping(ctx context.Context, toppingID string, form Form, image *upload.File) (*Topping, error) {
	return s.write(ctx, form, image, UpdatedMessage, func(ctx context.Context, req WriteRequest) (*Topping, error) {
		return s.gateway.UpdateTopping(ctx, toppingID, req)
	})
}

func (s *ToppingService) write(ctx context.Context, form Form, image *upload.File, success string, send func(context.Context, WriteRequest) (*Topping, error)) (*Topping, error) {
	if err := common.Validate(form); err != nil {
		return nil, err
	}
	imageURL, err := s.uploader.Upload(ctx, upload.EntityTopping, image)
	if err != nil {
		return nil, err
	}
	return mutation.RunPlain(ctx, s.mutations, mutation.Plain[*Topping]{
		Resource: cache.ResourceToppings,
		Request: func(ctx context.Context) (*Topping, error) {
			return send(ctx, form.Request(imageURL))
		},
		SuccessMessage: success,
	})
}

func (s *ToppingService) DeleteTopping(ctx context.Context, params ListParams, toppingID string) error {
	_, err := mutation.RunOptimistic(ctx, s.mutations, mutation.Optimistic[[]Topping, struct{}]{
		Key: ListKey(params),
		Apply: func(old []Topping) []Topping {
			return query.RemoveItems(old, func(t Topping) bool { return t.ID == toppingID })
		},
		Request: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.gateway.DeleteTopping(ctx, toppingID)
		},
	})
	return err
}

func (s *ToppingService) SetAvailability(ctx context.Context, params ListParams, toppingID string, isAvailable bool) (*Topping, error) {
	return mutation.RunOptimistic(ctx, s.mutations, mutation.Optimistic[[]Topping, *Topping]{
		Key: ListKey(params),
		Apply: func(old []Topping) []Topping {
			return query.ReplaceItems(old, func(t Topping) bool { return t.ID == toppingID }, func(t Topping) Topping {
				t.IsAvailable = isAvailable
				return t
			})
		},
		Request: func(ctx context.Context) (*Topping, error) {
			return s.gateway.SetToppingAvailability(ctx, toppingID, isAvailable)
		},
	})
}
