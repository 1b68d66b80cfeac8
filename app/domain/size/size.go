package size

type Size struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	DisplayName string  `json:"displayName"`
	Multiplier  float64 `json:"multiplier"`
	SortOrder   int     `json:"sortOrder"`
	IsAvailable bool    `json:"isAvailable"`
	CreatedAt   string  `json:"createdAt"`
}

// Form doubles as the backend write body; the field names already match.
type Form struct {
	Name        string  `json:"name" form:"name" validate:"required,max=50"`
	DisplayName string  `json:"displayName" form:"displayName" validate:"required,max=100"`
	Multiplier  float64 `json:"multiplier" form:"multiplier" validate:"gte=1"`
	SortOrder   int     `json:"sortOrder" form:"sortOrder" validate:"gte=1"`
}
