package kachelmann

import (
	"fmt"
	"github.com/yosida95/uritemplate/v3"
	"strconv"
)

// Sample request: https://api.kachelmannwetter.com/v02/current/47.38/8.54?units=metric
const DefaultBaseURL = "https://api.kachelmannwetter.com/v02/"

type Endpoint string

const (
	EndpointCurrent             Endpoint = "current"
	EndpointForecast3Day        Endpoint = "forecast_3day"
	EndpointTrend14Day          Endpoint = "trend_14day"
	EndpointForecastStandard    Endpoint = "forecast_standard"
	EndpointForecastAdvanced    Endpoint = "forecast_advanced"
	EndpointStationSearch       Endpoint = "station_search"
	EndpointStationLatest       Endpoint = "station_latest"
	EndpointStationObservations Endpoint = "station_observations"
	EndpointAstronomy           Endpoint = "astronomy"
)

var urlTemplates = map[Endpoint]*uritemplate.Template{
	EndpointCurrent:             uritemplate.MustNew("current/{lat}/{lon}?units={units}"),
	EndpointForecast3Day:        uritemplate.MustNew("forecast/{lat}/{lon}/3day?units={units}"),
	EndpointTrend14Day:          uritemplate.MustNew("forecast/{lat}/{lon}/trend14days?units={units}"),
	EndpointForecastStandard:    uritemplate.MustNew("forecast/{lat}/{lon}/standard/{timeSteps}?units={units}"),
	EndpointForecastAdvanced:    uritemplate.MustNew("forecast/{lat}/{lon}/advanced/{timeSteps}?units={units}"),
	EndpointStationSearch:       uritemplate.MustNew("station/search/{lat}/{lon}"),
	EndpointStationLatest:       uritemplate.MustNew("station/{stationId}/observations/latest?units={units}"),
	EndpointStationObservations: uritemplate.MustNew("station/{stationId}/observations/{timeSteps}?units={units}"),
	EndpointAstronomy:           uritemplate.MustNew("tools/astronomy/{lat}/{lon}"),
}

// Params maps template placeholders to their values.
type Params map[string]string

func coordinateParams(latitude, longitude float64) Params {
	return Params{
		"lat": strconv.FormatFloat(latitude, 'f', -1, 64),
		"lon": strconv.FormatFloat(longitude, 'f', -1, 64),
	}
}

// ConstructURL expands the template registered for endpoint and prepends baseURL.
// Values are percent-encoded except for RFC 3986 unreserved characters.
func ConstructURL(baseURL string, endpoint Endpoint, params Params) (string, error) {
	tmpl, ok := urlTemplates[endpoint]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownEndpoint, endpoint)
	}

	values := uritemplate.Values{}
	for _, name := range tmpl.Varnames() {
		value, ok := params[name]
		if !ok {
			return "", fmt.Errorf("endpoint %s: %w: %s", endpoint, ErrMissingParam, name)
		}
		values.Set(name, uritemplate.String(value))
	}

	expanded, err := tmpl.Expand(values)
	if err != nil {
		return "", fmt.Errorf("endpoint %s: %w", endpoint, err)
	}
	return baseURL + expanded, nil
}
