package kachelmann

import (
	"context"
	"fmt"
	"github.com/rs/zerolog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

const defaultTimeout = 10 * time.Second

type Option func(*Client)

func WithCoordinates(latitude, longitude float64) Option {
	return func(c *Client) {
		c.latitude = latitude
		c.longitude = longitude
		c.hasCoordinates = true
	}
}

func WithUnits(units Units) Option {
	return func(c *Client) {
		c.units = units
	}
}

// WithHTTPClient replaces the default *http.Client. A nil client is ignored.
func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *Client) {
		if httpClient == nil {
			return
		}
		if hc, ok := httpClient.(*http.Client); ok && hc == nil {
			return
		}
		c.httpClient = httpClient
	}
}

// WithBaseURL overrides DefaultBaseURL. A trailing slash is added if missing.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		c.baseURL = baseURL
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// Client talks to the KachelmannWetter API with a single API key.
// Every method performs at most one request. A Client is safe for concurrent use.
type Client struct {
	apiKey         string
	latitude       float64
	longitude      float64
	hasCoordinates bool
	baseURL        string
	header         http.Header
	httpClient     HTTPClient
	logger         zerolog.Logger

	mu    sync.RWMutex
	units Units
}

func New(apiKey string, opts ...Option) (*Client, error) {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		units:      Metric,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if !ValidAPIKey(c.apiKey) {
		return nil, invalid("api key", "", fmt.Errorf("%w: must be a %d-character hexadecimal string", ErrInvalidCredential, APIKeyLength))
	}
	if c.hasCoordinates && !ValidCoordinates(c.latitude, c.longitude) {
		return nil, invalid("coordinates", formatCoordinates(c.latitude, c.longitude), ErrInvalidCoordinates)
	}
	if !ValidUnits(c.units) {
		return nil, invalid("units", string(c.units), ErrInvalidUnits)
	}

	c.header = newHeader(c.apiKey)

	return c, nil
}

// ForUnits returns a Client sharing this client's configuration and
// connection but using different units.
func (c *Client) ForUnits(units Units) (*Client, error) {
	if !ValidUnits(units) {
		return nil, invalid("units", string(units), ErrInvalidUnits)
	}
	return &Client{
		apiKey:         c.apiKey,
		latitude:       c.latitude,
		longitude:      c.longitude,
		hasCoordinates: c.hasCoordinates,
		baseURL:        c.baseURL,
		header:         c.header,
		httpClient:     c.httpClient,
		logger:         c.logger,
		units:          units,
	}, nil
}

func (c *Client) Units() Units {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.units
}

func (c *Client) SetUnits(units Units) error {
	if !ValidUnits(units) {
		return invalid("units", string(units), ErrInvalidUnits)
	}
	c.mu.Lock()
	c.units = units
	c.mu.Unlock()
	return nil
}

// Coordinates reports the configured location; ok is false when none was set.
func (c *Client) Coordinates() (latitude, longitude float64, ok bool) {
	return c.latitude, c.longitude, c.hasCoordinates
}

// Header returns a copy of the headers sent with every request.
func (c *Client) Header() http.Header {
	return c.header.Clone()
}

func (c *Client) CurrentConditions(ctx context.Context) (*Payload, error) {
	return c.locationRequest(ctx, EndpointCurrent, nil)
}

func (c *Client) Forecast3Day(ctx context.Context) (*Payload, error) {
	return c.locationRequest(ctx, EndpointForecast3Day, nil)
}

func (c *Client) Trend14Day(ctx context.Context) (*Payload, error) {
	return c.locationRequest(ctx, EndpointTrend14Day, nil)
}

func (c *Client) StandardForecast(ctx context.Context, timesteps Timestep) (*Payload, error) {
	if !ValidForecastTimesteps(timesteps) {
		return nil, invalid("forecast timesteps", string(timesteps), ErrInvalidTimestep)
	}
	return c.locationRequest(ctx, EndpointForecastStandard, Params{"timeSteps": string(timesteps)})
}

func (c *Client) AdvancedForecast(ctx context.Context, timesteps Timestep) (*Payload, error) {
	if !ValidForecastTimesteps(timesteps) {
		return nil, invalid("forecast timesteps", string(timesteps), ErrInvalidTimestep)
	}
	return c.locationRequest(ctx, EndpointForecastAdvanced, Params{"timeSteps": string(timesteps)})
}

// SearchStations lists observation stations near the configured location.
func (c *Client) SearchStations(ctx context.Context) (*Payload, error) {
	return c.locationRequest(ctx, EndpointStationSearch, nil)
}

func (c *Client) StationLatest(ctx context.Context, stationID string) (*Payload, error) {
	if strings.TrimSpace(stationID) == "" {
		return nil, invalid("station id", stationID, ErrInvalidStation)
	}
	return c.request(ctx, EndpointStationLatest, Params{"stationId": stationID})
}

func (c *Client) StationObservations(ctx context.Context, stationID string, timesteps Timestep) (*Payload, error) {
	if strings.TrimSpace(stationID) == "" {
		return nil, invalid("station id", stationID, ErrInvalidStation)
	}
	if !ValidObservationsTimesteps(timesteps) {
		return nil, invalid("observation timesteps", string(timesteps), ErrInvalidTimestep)
	}
	return c.request(ctx, EndpointStationObservations, Params{
		"stationId": stationID,
		"timeSteps": string(timesteps),
	})
}

func (c *Client) Astronomy(ctx context.Context) (*Payload, error) {
	return c.locationRequest(ctx, EndpointAstronomy, nil)
}

func (c *Client) locationRequest(ctx context.Context, endpoint Endpoint, extra Params) (*Payload, error) {
	if !c.hasCoordinates {
		return nil, fmt.Errorf("%s: %w", endpoint, ErrMissingCoordinates)
	}

	params := coordinateParams(c.latitude, c.longitude)
	for k, v := range extra {
		params[k] = v
	}
	return c.request(ctx, endpoint, params)
}

func (c *Client) request(ctx context.Context, endpoint Endpoint, params Params) (*Payload, error) {
	if params == nil {
		params = Params{}
	}
	params["units"] = string(c.Units())

	url, err := ConstructURL(c.baseURL, endpoint, params)
	if err != nil {
		return nil, err
	}

	payload, err := c.getData(ctx, url)
	if err != nil {
		return nil, err
	}

	return payload.Strip(excludedKeys[endpoint]), nil
}

func formatCoordinates(latitude, longitude float64) string {
	return strconv.FormatFloat(latitude, 'f', -1, 64) + "," + strconv.FormatFloat(longitude, 'f', -1, 64)
}
