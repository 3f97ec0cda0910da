package api

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
