package cache

import "net/url"

// Key identifies one cached query: the resource plus the canonical encoding
// of every parameter that affects the response.
type Key struct {
	Resource string
	Params   string
}

// NewKey builds a key from a resource and its request parameters. url.Values
// encodes with sorted keys, so equal parameter sets always yield equal keys.
func NewKey(resource string, params url.Values) Key {
	if len(params) == 0 {
		return Key{Resource: resource}
	}
	return Key{Resource: resource, Params: params.Encode()}
}

// ResourceKey is the bare resource key. As a prefix it matches every
// parameterized variant of the resource.
func ResourceKey(resource string) Key {
	return Key{Resource: resource}
}

func (k Key) String() string {
	if k.Params == "" {
		return k.Resource
	}
	return k.Resource + "?" + k.Params
}

// Matches reports whether target falls under k when k is used as a prefix.
func (k Key) Matches(target Key) bool {
	if k.Resource != target.Resource {
		return false
	}
	return k.Params == "" || k.Params == target.Params
}

// Bare returns the resource-only prefix of k.
func (k Key) Bare() Key {
	return Key{Resource: k.Resource}
}
