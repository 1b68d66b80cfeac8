package topping

import (
	"net/url"

	"pizzaops.io/admin-dashboard/app/domain/query"
)

type Category string

const (
	CategoryVegetable Category = "vegetable"
	CategoryMeat      Category = "meat"
	CategoryCheese    Category = "cheese"
	CategorySauce     Category = "sauce"
	CategorySeasoning Category = "seasoning"
)

// Type is the form-side name for the backend's isVegetarian flag.
type Type string

const (
	TypeVeg    Type = "veg"
	TypeNonVeg Type = "non_veg"
)

type Topping struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Price        float64  `json:"price"`
	Category     Category `json:"category"`
	IsVegetarian bool     `json:"isVegetarian"`
	ImageURL     string   `json:"imageUrl"`
	IsAvailable  bool     `json:"isAvailable"`
	CreatedAt    string   `json:"createdAt"`
}

type Form struct {
	Name        string   `json:"name" form:"name" validate:"required,max=100"`
	Price       float64  `json:"price" form:"price" validate:"gte=1"`
	Description string   `json:"description" form:"description"`
	Category    Category `json:"category" form:"category" validate:"oneof=vegetable meat cheese sauce seasoning"`
	Type        Type     `json:"type" form:"type" validate:"oneof=veg non_veg"`
}

// WriteRequest is the create/update body sent to the backend.
type WriteRequest struct {
	Name         string   `json:"name"`
	Price        float64  `json:"price"`
	Description  string   `json:"description,omitempty"`
	Category     Category `json:"category"`
	IsVegetarian bool     `json:"isVegetarian"`
	ImageURL     string   `json:"imageUrl,omitempty"`
}

func (f Form) Request(imageURL string) WriteRequest {
	return WriteRequest{
		Name:         f.Name,
		Price:        f.Price,
		Description:  f.Description,
		Category:     f.Category,
		IsVegetarian: f.Type == TypeVeg,
		ImageURL:     imageURL,
	}
}

type ListParams struct {
	Name         string
	Category     Category
	IsVegetarian *bool
}

func (p ListParams) Values() url.Values {
	values := url.Values{}
	query.SetString(values, "name", p.Name)
	query.SetString(values, "category", string(p.Category))
	query.SetBool(values, "isVegetarian", p.IsVegetarian)
	return values
}
