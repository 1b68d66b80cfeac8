package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Sort is the backend's "field:direction" ordering.
type Sort struct {
	Field     string
	Direction SortDirection
}

func ParseSort(raw string) (Sort, error) {
	field, dir, ok := strings.Cut(raw, ":")
	if !ok || field == "" {
		return Sort{}, fmt.Errorf("invalid sortBy %q", raw)
	}
	direction := SortDirection(strings.ToLower(dir))
	if direction != SortAsc && direction != SortDesc {
		return Sort{}, fmt.Errorf("invalid sort direction %q", dir)
	}
	return Sort{Field: field, Direction: direction}, nil
}

func (s Sort) String() string {
	if s.Field == "" {
		return ""
	}
	return s.Field + ":" + string(s.Direction)
}

type Pagination struct {
	Page   int
	Limit  int
	SortBy string
}

// Encode writes the pagination fields into values, skipping zero values.
func (p Pagination) Encode(values url.Values) {
	if p.Page > 0 {
		values.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		values.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.SortBy != "" {
		values.Set("sortBy", p.SortBy)
	}
}

func GetPaginationFromQuery(reqCtx *gin.Context, defaults Pagination) (Pagination, error) {
	result := defaults
	if raw := reqCtx.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return Pagination{}, fmt.Errorf("invalid page number")
		}
		result.Page = page
	}
	if raw := reqCtx.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return Pagination{}, fmt.Errorf("invalid limit number")
		}
		result.Limit = limit
	}
	if raw := reqCtx.Query("sortBy"); raw != "" {
		sort, err := ParseSort(raw)
		if err != nil {
			return Pagination{}, err
		}
		result.SortBy = sort.String()
	}
	return result, nil
}

// SetString sets key when value is non-empty.
func SetString(values url.Values, key string, value string) {
	if value != "" {
		values.Set(key, value)
	}
}

// SetBool sets key when value is non-nil.
func SetBool(values url.Values, key string, value *bool) {
	if value != nil {
		values.Set(key, strconv.FormatBool(*value))
	}
}

// OptionalBool parses a "true"/"false" query value; anything else is treated as unset.
func OptionalBool(raw string) *bool {
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &b
}
