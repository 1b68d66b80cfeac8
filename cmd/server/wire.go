//go:build wireinject

package main

import (
	"github.com/google/wire"
	"pizzaops.io/admin-dashboard/app/domain"
	"pizzaops.io/admin-dashboard/app/infrastructure"
	"pizzaops.io/admin-dashboard/app/interfaces/http"
	"pizzaops.io/admin-dashboard/app/interfaces/http/routes"
)

func CreateApplication() (*Application, error) {
	wire.Build(
		infrastructure.InfrastructureProvider,
		domain.ServiceProvider,
		routes.RouteProvider,
		http.NewHttpServer,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
