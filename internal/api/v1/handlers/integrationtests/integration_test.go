package integration_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
	"ulascansenturk/kachelmann-weather/internal/api/v1/handlers"
	"ulascansenturk/kachelmann-weather/internal/service"
	"ulascansenturk/kachelmann-weather/pkg/kachelmann"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var apiKey = strings.Repeat("0a", 64)

type upstream struct {
	server *httptest.Server

	mu       sync.Mutex
	requests []*http.Request
}

func (u *upstream) record(r *http.Request) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.requests = append(u.requests, r)
}

func (u *upstream) count() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.requests)
}

type testSetup struct {
	router   *gin.Engine
	upstream *upstream
}

func init() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	gin.SetMode(gin.TestMode)
}

func setupTest(t *testing.T, handler http.HandlerFunc) *testSetup {
	t.Helper()

	up := &upstream{}
	up.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		up.record(r)
		if r.Header.Get("X-API-Key") != apiKey {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		handler(w, r)
	}))
	t.Cleanup(up.server.Close)

	client, err := kachelmann.New(apiKey,
		kachelmann.WithBaseURL(up.server.URL+"/v02/"),
		kachelmann.WithCoordinates(52.52, 13.405),
		kachelmann.WithHTTPClient(up.server.Client()),
		kachelmann.WithLogger(log.Logger),
	)
	require.NoError(t, err)

	weatherService := service.NewWeatherService(client)
	weatherHandler := handlers.NewWeatherHandler(weatherService, 2*time.Second)

	return &testSetup{
		router:   handlers.NewRouter(weatherHandler),
		upstream: up,
	}
}

func (ts *testSetup) get(target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	recorder := httptest.NewRecorder()
	ts.router.ServeHTTP(recorder, req)
	return recorder
}

func TestCurrentConditionsEndToEnd(t *testing.T) {
	ts := setupTest(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v02/current/52.52/13.405", r.URL.Path)
		assert.Equal(t, "imperial", r.URL.Query().Get("units"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(`{"lat":52.52,"lon":13.405,"data":{"temp":68.2,"weatherSymbol":"cloudy"}}`))
	})

	recorder := ts.get("/v1/current?units=imperial")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"lat":52.52,"lon":13.405,"data":{"temp":68.2,"weatherSymbol":"cloudy"}}`, recorder.Body.String())
	assert.Equal(t, 1, ts.upstream.count())
}

func TestInvalidTimestepNeverReachesUpstream(t *testing.T) {
	ts := setupTest(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected upstream request %s", r.URL)
	})

	recorder := ts.get("/v1/forecast/advanced/2h")

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var response handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	require.Len(t, response.Errors, 1)
	assert.Contains(t, response.Errors[0].Detail, "2h")
	assert.Equal(t, 0, ts.upstream.count())
}

func TestUpstreamServerError(t *testing.T) {
	ts := setupTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"boom"}`))
	})

	recorder := ts.get("/v1/stations/A123/observations/1h")

	require.Equal(t, http.StatusBadGateway, recorder.Code)

	var response handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "UPSTREAM_ERROR", response.Errors[0].Code)
	assert.Contains(t, response.Errors[0].Detail, "500")
}

func TestUpstreamRejectsKey(t *testing.T) {
	up := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid key"}`))
	}))
	defer up.Close()

	client, err := kachelmann.New(apiKey,
		kachelmann.WithBaseURL(up.URL),
		kachelmann.WithCoordinates(0, 0),
		kachelmann.WithHTTPClient(up.Client()),
	)
	require.NoError(t, err)

	router := handlers.NewRouter(handlers.NewWeatherHandler(service.NewWeatherService(client), time.Second))
	req := httptest.NewRequest(http.MethodGet, "/v1/astronomy", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusBadGateway, recorder.Code)

	var response handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "UPSTREAM_UNAUTHORIZED", response.Errors[0].Code)
}

func TestConcurrentRequestsWithDifferentUnits(t *testing.T) {
	ts := setupTest(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"units": r.URL.Query().Get("units")})
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		units := "metric"
		if i%2 == 1 {
			units = "imperial"
		}

		wg.Add(1)
		go func(units string) {
			defer wg.Done()
			recorder := ts.get("/v1/forecast/3day?units=" + units)
			assert.Equal(t, http.StatusOK, recorder.Code)
			assert.JSONEq(t, `{"units":"`+units+`"}`, recorder.Body.String())
		}(units)
	}
	wg.Wait()

	assert.Equal(t, 20, ts.upstream.count())
}

func TestUpstreamRequestsExceeded(t *testing.T) {
	ts := setupTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "120")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"requests exceeded"}`))
	})

	recorder := ts.get("/v1/stations/A123/latest")

	require.Equal(t, http.StatusTooManyRequests, recorder.Code)

	var response handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	require.Len(t, response.Errors, 1)
	assert.Equal(t, "UPSTREAM_REQUESTS_EXCEEDED", response.Errors[0].Code)
	assert.Equal(t, 1, ts.upstream.count())
}
