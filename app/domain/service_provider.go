package domain

import (
	"github.com/google/wire"
	"pizzaops.io/admin-dashboard/app/domain/auth"
	"pizzaops.io/admin-dashboard/app/domain/cron"
	"pizzaops.io/admin-dashboard/app/domain/crust"
	"pizzaops.io/admin-dashboard/app/domain/healthcheck"
	"pizzaops.io/admin-dashboard/app/domain/mutation"
	"pizzaops.io/admin-dashboard/app/domain/notice"
	"pizzaops.io/admin-dashboard/app/domain/order"
	"pizzaops.io/admin-dashboard/app/domain/pizza"
	"pizzaops.io/admin-dashboard/app/domain/size"
	"pizzaops.io/admin-dashboard/app/domain/topping"
	"pizzaops.io/admin-dashboard/app/domain/upload"
)

var ServiceProvider = wire.NewSet(
	notice.NewCenter,
	wire.Bind(new(notice.Notifier), new(*notice.Center)),
	mutation.NewCoordinator,
	upload.NewService,
	wire.Bind(new(upload.Uploader), new(*upload.UploadService)),
	auth.NewAuthService,
	pizza.NewService,
	crust.NewService,
	size.NewService,
	topping.NewService,
	order.NewService,
	cron.NewService,
	wire.Bind(new(cron.SessionRefresher), new(*auth.AuthService)),
	healthcheck.NewService,
)
