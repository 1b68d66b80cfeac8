package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"pizzaops.io/admin-dashboard/app/domain/healthcheck"
	"pizzaops.io/admin-dashboard/app/interfaces/http/middleware"
	v1 "pizzaops.io/admin-dashboard/app/interfaces/http/routes/v1"
	"pizzaops.io/admin-dashboard/app/utils/logger"
	"pizzaops.io/admin-dashboard/config/environment_variables"
)

type HttpServer struct {
	engine      *gin.Engine
	v1Route     *v1.V1Route
	healthcheck *healthcheck.HealthcheckCrontabService
}

func NewHttpServer(v1Route *v1.V1Route, healthcheckService *healthcheck.HealthcheckCrontabService) *HttpServer {
	gin.SetMode(gin.ReleaseMode)
	server := HttpServer{
		engine:      gin.New(),
		v1Route:     v1Route,
		healthcheck: healthcheckService,
	}
	server.engine.Use(middleware.CORS())
	server.engine.Use(middleware.LoggerMiddleware(logger.GetLogger()))
	server.engine.Use(gin.Recovery())
	server.engine.GET("/health-check", server.healthCheck)
	server.v1Route.RegisterRouter(server.engine.Group("/api"))
	return &server
}

func (httpServer *HttpServer) healthCheck(c *gin.Context) {
	report := httpServer.healthcheck.Report(c.Request.Context())
	status := http.StatusOK
	if !report.Healthy {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, report)
}

func (httpServer *HttpServer) Handler() http.Handler {
	return httpServer.engine
}

func (httpServer *HttpServer) Run() error {
	port := environment_variables.EnvironmentVariables.HTTP_PORT
	if err := httpServer.engine.Run(fmt.Sprintf(":%d", port)); err != nil {
		return err
	}
	return nil
}
