package query

// ListResponse is the backend's paginated list envelope.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

// Without returns a copy with every item matching drop removed and the totals adjusted.
func (l *ListResponse[T]) Without(drop func(T) bool) *ListResponse[T] {
	if l == nil {
		return nil
	}
	items := make([]T, 0, len(l.Items))
	for _, item := range l.Items {
		if !drop(item) {
			items = append(items, item)
		}
	}
	removed := len(l.Items) - len(items)
	out := *l
	out.Items = items
	out.Total = max(l.Total-removed, 0)
	if out.Limit > 0 {
		out.Pages = (out.Total + out.Limit - 1) / out.Limit
	}
	return &out
}

// Replace returns a copy where every item matching match is passed through update.
func (l *ListResponse[T]) Replace(match func(T) bool, update func(T) T) *ListResponse[T] {
	if l == nil {
		return nil
	}
	out := *l
	out.Items = ReplaceItems(l.Items, match, update)
	return &out
}

// ReplaceItems is the slice form of ListResponse.Replace. The input slice is not modified.
func ReplaceItems[T any](items []T, match func(T) bool, update func(T) T) []T {
	result := make([]T, len(items))
	for i, item := range items {
		if match(item) {
			item = update(item)
		}
		result[i] = item
	}
	return result
}

// RemoveItems returns a new slice without the items matching drop.
func RemoveItems[T any](items []T, drop func(T) bool) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if !drop(item) {
			result = append(result, item)
		}
	}
	return result
}
