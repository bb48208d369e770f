package handlers

import (
	"context"
	"errors"
	"fmt"
	"github.com/gin-gonic/gin"
	"net/http"
	"ulascansenturk/kachelmann-weather/internal/service"
	"ulascansenturk/kachelmann-weather/pkg/kachelmann"
)

const (
	codeUpstreamUnauthorized     = "UPSTREAM_UNAUTHORIZED"
	codeUpstreamRequestsExceeded = "UPSTREAM_REQUESTS_EXCEEDED"
)

// StatusClientClosedRequest is the non-standard nginx status for a request
// the caller abandoned before the upstream answered.
const StatusClientClosedRequest = 499

func respondWithError(c *gin.Context, code int, message string) {
	respondWithErrorCode(c, code, "", message)
}

func respondWithErrorCode(c *gin.Context, code int, errorCode, message string) {
	defaultCode := "INTERNAL_ERROR"
	title := "Internal Server Error"

	switch code {
	case http.StatusBadRequest:
		defaultCode = "BAD_REQUEST"
		title = "Bad Request"
	case http.StatusNotFound:
		defaultCode = "NOT_FOUND"
		title = "Not Found"
	case http.StatusMethodNotAllowed:
		defaultCode = "METHOD_NOT_ALLOWED"
		title = "Method Not Allowed"
	case http.StatusTooManyRequests:
		defaultCode = "TOO_MANY_REQUESTS"
		title = "Too Many Requests"
	case StatusClientClosedRequest:
		defaultCode = "CLIENT_CLOSED_REQUEST"
		title = "Client Closed Request"
	case http.StatusBadGateway:
		defaultCode = "UPSTREAM_ERROR"
		title = "Bad Gateway"
	case http.StatusGatewayTimeout:
		defaultCode = "GATEWAY_TIMEOUT"
		title = "Gateway Timeout"
	}

	if errorCode == "" {
		errorCode = defaultCode
	}

	c.AbortWithStatusJSON(code, ErrorResponse{
		Errors: []Error{
			{
				Code:   errorCode,
				Detail: message,
				Status: code,
				Title:  title,
			},
		},
	})
}

// respondWithServiceError maps client and upstream failures onto gateway statuses.
func respondWithServiceError(c *gin.Context, err error) {
	var (
		validationErr *kachelmann.ValidationError
		apiErr        *kachelmann.APIError
	)

	switch {
	case errors.As(err, &validationErr),
		errors.Is(err, kachelmann.ErrMissingCoordinates),
		errors.Is(err, service.ErrUnknownProduct):
		respondWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, kachelmann.ErrAuthentication):
		respondWithErrorCode(c, http.StatusBadGateway, codeUpstreamUnauthorized, "upstream rejected the configured API key")
	case errors.Is(err, kachelmann.ErrRequestsExceeded):
		respondWithErrorCode(c, http.StatusTooManyRequests, codeUpstreamRequestsExceeded, "upstream request limit exceeded")
	case errors.As(err, &apiErr):
		respondWithError(c, http.StatusBadGateway, fmt.Sprintf("upstream returned status %d", apiErr.StatusCode))
	case errors.Is(err, context.Canceled):
		respondWithError(c, StatusClientClosedRequest, "request canceled")
	case errors.Is(err, context.DeadlineExceeded):
		respondWithError(c, http.StatusGatewayTimeout, "failed to get weather data: "+err.Error())
	default:
		respondWithError(c, http.StatusInternalServerError, "failed to get weather data: "+err.Error())
	}
}
