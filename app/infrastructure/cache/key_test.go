package cache

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewKeyIsOrderIndependent(t *testing.T) {
	a := url.Values{}
	a.Set("page", "1")
	a.Set("limit", "4")
	a.Set("sortBy", "created_at:desc")
	b := url.Values{}
	b.Set("sortBy", "created_at:desc")
	b.Set("limit", "4")
	b.Set("page", "1")

	assert.Equal(t, NewKey(ResourcePizzas, a), NewKey(ResourcePizzas, b))
	assert.Equal(t, "pizzas?limit=4&page=1&sortBy=created_at%3Adesc", NewKey(ResourcePizzas, a).String())
}

func TestKeyMatches(t *testing.T) {
	page1 := NewKey(ResourcePizzas, url.Values{"page": {"1"}})
	page2 := NewKey(ResourcePizzas, url.Values{"page": {"2"}})

	testCases := []struct {
		name     string
		prefix   Key
		target   Key
		expected bool
	}{
		{name: "bare matches variant", prefix: ResourceKey(ResourcePizzas), target: page1, expected: true},
		{name: "bare matches bare", prefix: ResourceKey(ResourceCrusts), target: ResourceKey(ResourceCrusts), expected: true},
		{name: "exact match", prefix: page1, target: page1, expected: true},
		{name: "other params", prefix: page1, target: page2, expected: false},
		{name: "other resource", prefix: ResourceKey(ResourceOrders), target: page1, expected: false},
		{name: "variant does not match bare", prefix: page1, target: ResourceKey(ResourcePizzas), expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.prefix.Matches(tc.target))
		})
	}
}

func TestEmptyParamsYieldBareKey(t *testing.T) {
	assert.Equal(t, ResourceKey(ResourceCrusts), NewKey(ResourceCrusts, nil))
	assert.Equal(t, ResourceKey(ResourceCrusts), NewKey(ResourceCrusts, url.Values{}))
}
