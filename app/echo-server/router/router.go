package router

import (
	"github.com/ashlia0420/Laptop-Recommendation/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRecommendRoutes(api *echo.Group, handler *rest.RecommendHandler) {
	api.POST("/recommend", handler.Recommend)
}

func SetupSystemRoutes(e *echo.Echo, handler *rest.SystemHandler) {
	e.GET("/health", handler.Health)
	e.GET("/debug", handler.Debug)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
