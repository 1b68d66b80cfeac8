package pizza

import (
	"context"

	"pizzaops.io/admin-dashboard/app/domain/common"
	"pizzaops.io/admin-dashboard/app/domain/mutation"
	"pizzaops.io/admin-dashboard/app/domain/upload"
	"pizzaops.io/admin-dashboard/app/infrastructure/cache"
)

const (
	CreatedMessage = "new pizza added"
	UpdatedMessage = "pizza update successful"
)

type PizzaGateway interface {
	ListPizzas(ctx context.Context, params ListParams) (*PizzaList, error)
	CreatePizza(ctx context.Context, req WriteRequest) (*Pizza, error)
	UpdatePizza(ctx context.Context, pizzaID string, req WriteRequest) (*Pizza, error)
	DeletePizza(ctx context.Context, pizzaID string) error
	SetPizzaAvailability(ctx context.Context, pizzaID string, isAvailable bool) (*Pizza, error)
	SetPizzaFeatured(ctx context.Context, pizzaID string, featured bool) (*Pizza, error)
}

type PizzaService struct {
	gateway   PizzaGateway
	uploader  upload.Uploader
	cache     *cache.QueryCache
	mutations *mutation.Coordinator
}

func NewService(gateway PizzaGateway, uploader upload.Uploader, queryCache *cache.QueryCache, mutations *mutation.Coordinator) *PizzaService {
	return &PizzaService{
		gateway:   gateway,
		uploader:  uploader,
		cache:     queryCache,
		mutations: mutations,
	}
}

func ListKey(params ListParams) cache.Key {
	return cache.NewKey(cache.ResourcePizzas, params.Values())
}

func (s *PizzaService) ListPizzas(ctx context.Context, params ListParams) (*PizzaList, error) {
	return cache.Ensure(ctx, s.cache, ListKey(params), func(ctx context.Context) (*PizzaList, error) {
		return s.gateway.ListPizzas(ctx, params)
	})
}

// CreatePizza validates the form, uploads the optional image and creates the pizza.
func (s *PizzaService) CreatePizza(ctx context.Context, form Form, image *upload.File) (*Pizza, error) {
	if err := common.Validate(form); err != nil {
		return nil, err
	}
	imageURL, err := s.uploader.Upload(ctx, upload.EntityPizza, image)
	if err != nil {
		return nil, err
	}
	return mutation.RunPlain(ctx, s.mutations, mutation.Plain[*Pizza]{
		Resource: cache.ResourcePizzas,
		Request: func(ctx context.Context) (*Pizza, error) {
			return s.gateway.CreatePizza(ctx, form.Request(imageURL))
		},
		SuccessMessage: CreatedMessage,
	})
}

// UpdatePizza keeps the stored image when image is nil.
func (s *PizzaService) UpdatePizza(ctx context.Context, pizzaID string, form Form, image *upload.File) (*Pizza, error) {
	if err := common.Validate(form); err != nil {
		return nil, err
	}
	imageURL, err := s.uploader.Upload(ctx, upload.EntityPizza, image)
	if err != nil {
		return nil, err
	}
	return mutation.RunPlain(ctx, s.mutations, mutation.Plain[*Pizza]{
		Resource: cache.ResourcePizzas,
		Request: func(ctx context.Context) (*Pizza, error) {
			return s.gateway.UpdatePizza(ctx, pizzaID, form.Request(imageURL))
		},
		SuccessMessage: UpdatedMessage,
	})
}

// DeletePizza removes the pizza from the cached page at once. When that
// empties a page past the first, onPageEmptied is called with the page to
// show instead before the request is sent.
func (s *PizzaService) DeletePizza(ctx context.Context, params ListParams, pizzaID string, onPageEmptied func(page int)) error {
	_, err := mutation.RunOptimistic(ctx, s.mutations, mutation.Optimistic[*PizzaList, struct{}]{
		Key: ListKey(params),
		Apply: func(old *PizzaList) *PizzaList {
			return old.Without(func(p Pizza) bool { return p.ID == pizzaID })
		},
		OnApplied: func(updated *PizzaList) {
			if onPageEmptied != nil && params.Page > 1 && len(updated.Items) == 0 {
				onPageEmptied(params.Page - 1)
			}
		},
		Request: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.gateway.DeletePizza(ctx, pizzaID)
		},
	})
	return err
}

func (s *PizzaService) SetAvailability(ctx context.Context, params ListParams, pizzaID string, isAvailable bool) (*Pizza, error) {
	return s.toggle(ctx, params, pizzaID, func(p Pizza) Pizza {
		p.IsAvailable = isAvailable
		return p
	}, func(ctx context.Context) (*Pizza, error) {
		return s.gateway.SetPizzaAvailability(ctx, pizzaID, isAvailable)
	})
}

func (s *PizzaService) SetFeatured(ctx context.Context, params ListParams, pizzaID string, featured bool) (*Pizza, error) {
	return s.toggle(ctx, params, pizzaID, func(p Pizza) Pizza {
		p.Featured = featured
		return p
	}, func(ctx context.Context) (*Pizza, error) {
		return s.gateway.SetPizzaFeatured(ctx, pizzaID, featured)
	})
}

func (s *PizzaService) toggle(ctx context.Context, params ListParams, pizzaID string, set func(Pizza) Pizza, request func(ctx context.Context) (*Pizza, error)) (*Pizza, error) {
	return mutation.RunOptimistic(ctx, s.mutations, mutation.Optimistic[*PizzaList, *Pizza]{
		Key: ListKey(params),
		Apply: func(old *PizzaList) *PizzaList {
			return old.Replace(func(p Pizza) bool { return p.ID == pizzaID }, set)
		},
		Request: request,
	})
}
