package handlers

import (
	"context"
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"net/http"
	"time"
	"ulascansenturk/kachelmann-weather/internal/service"
	"ulascansenturk/kachelmann-weather/pkg/kachelmann"
)

type WeatherHandler struct {
	weatherService service.WeatherService
	timeout        time.Duration
}

func NewWeatherHandler(weatherService service.WeatherService, timeout time.Duration) *WeatherHandler {
	return &WeatherHandler{
		weatherService: weatherService,
		timeout:        timeout,
	}
}

// NewRouter builds the gateway engine with every weather route registered.
func NewRouter(h *WeatherHandler) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())

	router.NoRoute(func(c *gin.Context) {
		respondWithError(c, http.StatusNotFound, "not found")
	})
	router.NoMethod(func(c *gin.Context) {
		respondWithError(c, http.StatusMethodNotAllowed, "method not allowed")
	})

	router.GET("/ping", h.Ping)
	h.Register(router.Group("/v1"))

	return router
}

func (h *WeatherHandler) Register(r gin.IRouter) {
	r.GET("/current", h.product(service.ProductCurrent))
	r.GET("/forecast/3day", h.product(service.ProductForecast3Day))
	r.GET("/forecast/trend14days", h.product(service.ProductTrend14Day))
	r.GET("/forecast/standard/:timesteps", h.product(service.ProductStandardForecast))
	r.GET("/forecast/advanced/:timesteps", h.product(service.ProductAdvancedForecast))
	r.GET("/stations", h.product(service.ProductStations))
	r.GET("/stations/:id/latest", h.product(service.ProductStationLatest))
	r.GET("/stations/:id/observations/:timesteps", h.product(service.ProductStationObservations))
	r.GET("/astronomy", h.product(service.ProductAstronomy))
}

func (h *WeatherHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{Message: "pong"})
}

func (h *WeatherHandler) product(p service.Product) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := service.Query{
			Product:   p,
			Units:     kachelmann.Units(c.Query("units")),
			Timesteps: kachelmann.Timestep(c.Param("timesteps")),
			StationID: c.Param("id"),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
		defer cancel()

		data, err := h.weatherService.Fetch(ctx, q)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				log.Debug().Err(err).Str("product", string(p)).Msg("client went away before weather data arrived")
			} else {
				log.Error().Err(err).Str("product", string(p)).Msg("failed to get weather data")
			}
			respondWithServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, data)
	}
}
