package kachelmann

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

const (
	headerAccept = "Accept"
	headerAPIKey = "X-API-Key"
)

// HTTPClient is the connection collaborator. *http.Client satisfies it and
// is expected to be safe for concurrent use.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func newHeader(apiKey string) http.Header {
	h := make(http.Header, 2)
	h.Set(headerAccept, "application/json")
	h.Set(headerAPIKey, apiKey)
	return h
}

func (c *Client) getData(ctx context.Context, url string) (*Payload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header = c.header.Clone()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to KachelmannWetter failed: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode == http.StatusUnauthorized {
		c.logger.Warn().Str("path", req.URL.Path).Msg("KachelmannWetter rejected the API key")
		return nil, &AuthenticationError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode, Body: body}
		if payload, decodeErr := ParsePayload(body); decodeErr == nil {
			apiErr.Payload = payload
		}
		if resp.StatusCode == http.StatusTooManyRequests {
			c.logger.Warn().
				Str("path", req.URL.Path).
				Str("retry_after", resp.Header.Get("Retry-After")).
				Msg("KachelmannWetter request limit exceeded")
			return nil, apiErr
		}
		c.logger.Warn().
			Str("path", req.URL.Path).
			Int("status", resp.StatusCode).
			Msg("KachelmannWetter returned an error")
		return nil, apiErr
	}

	payload, err := ParsePayload(body)
	if err != nil {
		return nil, fmt.Errorf("KachelmannWetter returned malformed JSON: %w", err)
	}

	c.logger.Debug().
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Str("kind", payload.Kind().String()).
		Msg("data retrieved")

	return payload, nil
}
