package routes

import (
	"github.com/google/wire"
	"pizzaops.io/admin-dashboard/app/infrastructure/realtime"
	v1 "pizzaops.io/admin-dashboard/app/interfaces/http/routes/v1"
	"pizzaops.io/admin-dashboard/app/interfaces/http/routes/v1/auth"
	"pizzaops.io/admin-dashboard/app/interfaces/http/routes/v1/menu"
	"pizzaops.io/admin-dashboard/app/interfaces/http/routes/v1/notices"
	"pizzaops.io/admin-dashboard/app/interfaces/http/routes/v1/orders"
	"pizzaops.io/admin-dashboard/app/interfaces/http/routes/v1/system"
)

var RouteProvider = wire.NewSet(
	auth.NewAuthRoute,
	menu.NewPizzaRoute,
	menu.NewCrustRoute,
	menu.NewSizeRoute,
	menu.NewToppingRoute,
	menu.NewMenuRoute,
	orders.NewOrdersRoute,
	notices.NewNoticesRoute,
	system.NewSystemRoute,
	wire.Bind(new(system.RealtimeChannel), new(*realtime.Listener)),
	v1.NewV1Route,
)
