package cache

const (
	CacheVersion     = "v1"
	PersistKeyPrefix = "pizzaops:" + CacheVersion + ":query:"
)

// Resource names, the first segment of every query key.
const (
	ResourceMe         = "me"
	ResourcePizzas     = "pizzas"
	ResourceCrusts     = "crusts"
	ResourceSizes      = "sizes"
	ResourceToppings   = "toppings"
	ResourceOrders     = "orders"
	ResourceOrderStats = "order-stats"
)
