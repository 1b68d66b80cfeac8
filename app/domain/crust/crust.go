package crust

type Crust struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	AdditionalPrice float64 `json:"additionalPrice"`
	IsAvailable     bool    `json:"isAvailable"`
	SortOrder       int     `json:"sortOrder"`
	CreatedAt       string  `json:"createdAt"`
}

type Form struct {
	Name        string  `json:"name" form:"name" validate:"required,max=100"`
	Description string  `json:"description" form:"description"`
	Price       float64 `json:"price" form:"price" validate:"gte=0"`
	SortOrder   int     `json:"sortOrder" form:"sortOrder" validate:"gte=1"`
}

type WriteRequest struct {
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	AdditionalPrice float64 `json:"additionalPrice"`
	SortOrder       int     `json:"sortOrder"`
}

func (f Form) Request() WriteRequest {
	return WriteRequest{
		Name:            f.Name,
		Description:     f.Description,
		AdditionalPrice: f.Price,
		SortOrder:       f.SortOrder,
	}
}
