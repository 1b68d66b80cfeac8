package infrastructure

import (
	"net/http"

	"github.com/google/wire"
	"pizzaops.io/admin-dashboard/app/domain/auth"
	"pizzaops.io/admin-dashboard/app/domain/crust"
	"pizzaops.io/admin-dashboard/app/domain/healthcheck"
	"pizzaops.io/admin-dashboard/app/domain/order"
	"pizzaops.io/admin-dashboard/app/domain/pizza"
	"pizzaops.io/admin-dashboard/app/domain/size"
	"pizzaops.io/admin-dashboard/app/domain/topping"
	"pizzaops.io/admin-dashboard/app/domain/upload"
	"pizzaops.io/admin-dashboard/app/infrastructure/cache"
	"pizzaops.io/admin-dashboard/app/infrastructure/realtime"
	"pizzaops.io/admin-dashboard/app/utils/httpclients/pizzahub"
)

// ProvideCookieJar shares the REST session cookies with the websocket dialer.
func ProvideCookieJar(client *pizzahub.Client) http.CookieJar {
	return client.CookieJar()
}

var InfrastructureProvider = wire.NewSet(
	cache.NewCacheService,
	cache.NewQueryCache,
	pizzahub.NewClient,
	ProvideCookieJar,
	wire.Bind(new(auth.AuthGateway), new(*pizzahub.Client)),
	wire.Bind(new(pizza.PizzaGateway), new(*pizzahub.Client)),
	wire.Bind(new(crust.CrustGateway), new(*pizzahub.Client)),
	wire.Bind(new(size.SizeGateway), new(*pizzahub.Client)),
	wire.Bind(new(topping.ToppingGateway), new(*pizzahub.Client)),
	wire.Bind(new(order.OrderGateway), new(*pizzahub.Client)),
	wire.Bind(new(upload.Gateway), new(*pizzahub.Client)),
	realtime.NewListener,
	wire.Bind(new(healthcheck.RealtimeListener), new(*realtime.Listener)),
)
