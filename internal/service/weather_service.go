package service

import (
	"context"
	"errors"
	"fmt"
	"ulascansenturk/kachelmann-weather/pkg/kachelmann"
)

var ErrUnknownProduct = errors.New("unknown product")

// Product names one KachelmannWetter endpoint exposed by the gateway.
type Product string

const (
	ProductCurrent             Product = "current"
	ProductForecast3Day        Product = "forecast_3day"
	ProductTrend14Day          Product = "trend_14day"
	ProductStandardForecast    Product = "forecast_standard"
	ProductAdvancedForecast    Product = "forecast_advanced"
	ProductStations            Product = "stations"
	ProductStationLatest       Product = "station_latest"
	ProductStationObservations Product = "station_observations"
	ProductAstronomy           Product = "astronomy"
)

// Query describes a single gateway request. Units is optional and only
// applies to this request.
type Query struct {
	Product   Product
	Units     kachelmann.Units
	Timesteps kachelmann.Timestep
	StationID string
}

type WeatherService interface {
	Fetch(ctx context.Context, q Query) (*kachelmann.Payload, error)
}

type weatherService struct {
	client *kachelmann.Client
}

func NewWeatherService(client *kachelmann.Client) WeatherService {
	return &weatherService{
		client: client,
	}
}

func (s *weatherService) Fetch(ctx context.Context, q Query) (*kachelmann.Payload, error) {
	client := s.client
	if q.Units != "" && q.Units != client.Units() {
		var err error
		client, err = s.client.ForUnits(q.Units)
		if err != nil {
			return nil, err
		}
	}

	switch q.Product {
	case ProductCurrent:
		return client.CurrentConditions(ctx)
	case ProductForecast3Day:
		return client.Forecast3Day(ctx)
	case ProductTrend14Day:
		return client.Trend14Day(ctx)
	case ProductStandardForecast:
		return client.StandardForecast(ctx, q.Timesteps)
	case ProductAdvancedForecast:
		return client.AdvancedForecast(ctx, q.Timesteps)
	case ProductStations:
		return client.SearchStations(ctx)
	case ProductStationLatest:
		return client.StationLatest(ctx, q.StationID)
	case ProductStationObservations:
		return client.StationObservations(ctx, q.StationID, q.Timesteps)
	case ProductAstronomy:
		return client.Astronomy(ctx)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProduct, q.Product)
	}
}
