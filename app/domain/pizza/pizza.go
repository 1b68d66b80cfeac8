package pizza

import (
	"net/url"

	"pizzaops.io/admin-dashboard/app/domain/query"
	"pizzaops.io/admin-dashboard/app/domain/topping"
)

type Category string

const (
	CategoryVeg    Category = "veg"
	CategoryNonVeg Category = "non_veg"
)

type Pizza struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	BasePrice       float64           `json:"basePrice"`
	ImageURL        string            `json:"imageUrl"`
	IsAvailable     bool              `json:"isAvailable"`
	Featured        bool              `json:"featured"`
	Category        Category          `json:"category"`
	DefaultToppings []topping.Topping `json:"defaultToppings"`
	CreatedAt       string            `json:"createdAt"`
	UpdatedAt       string            `json:"updatedAt"`
}

type PizzaList = query.ListResponse[Pizza]

type Form struct {
	Name              string   `json:"name" form:"name" validate:"required,max=255"`
	Description       string   `json:"description" form:"description" validate:"required"`
	BasePrice         float64  `json:"basePrice" form:"basePrice" validate:"gte=1"`
	Category          Category `json:"category" form:"category" validate:"oneof=veg non_veg"`
	DefaultToppingIDs []string `json:"defaultToppingIds" form:"defaultToppingIds"`
}

// WriteRequest is the create/update body sent to the backend.
type WriteRequest struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	BasePrice         float64  `json:"basePrice"`
	Category          Category `json:"category"`
	DefaultToppingIDs []string `json:"defaultToppingIds"`
	ImageURL          string   `json:"imageUrl,omitempty"`
}

func (f Form) Request(imageURL string) WriteRequest {
	ids := f.DefaultToppingIDs
	if ids == nil {
		ids = []string{}
	}
	return WriteRequest{
		Name:              f.Name,
		Description:       f.Description,
		BasePrice:         f.BasePrice,
		Category:          f.Category,
		DefaultToppingIDs: ids,
		ImageURL:          imageURL,
	}
}

type ListParams struct {
	query.Pagination
	Name        string
	Category    Category
	IsAvailable *bool
	Featured    *bool
}

var DefaultListParams = ListParams{Pagination: query.Pagination{Page: 1, Limit: 4, SortBy: "created_at:desc"}}

func (p ListParams) Values() url.Values {
	values := url.Values{}
	p.Pagination.Encode(values)
	query.SetString(values, "name", p.Name)
	query.SetString(values, "category", string(p.Category))
	query.SetBool(values, "isAvailable", p.IsAvailable)
	query.SetBool(values, "featured", p.Featured)
	return values
}
