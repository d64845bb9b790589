package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.trai.ch/repute/internal/build"
	"go.trai.ch/repute/internal/core/domain"
	"go.trai.ch/repute/internal/core/ports"
	"go.trai.ch/zerr"
)

const maxResponseBytes = 4 << 20

// envelope is the shape of every 2xx response body.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

// errorBody holds the fields a non-2xx body may use to describe the failure.
type errorBody struct {
	Error   json.RawMessage `json:"error"`
	Message string          `json:"message"`
}

// get requests path and decodes the envelope's data into out.
// Every failure leaves through normalize.
func (c *Client) get(ctx context.Context, resource, path string, query url.Values, out any) error {
	ctx, span := c.tracer.Start(ctx, "repute.api "+resource, ports.WithAttribute("http.path", path))
	defer span.End()

	start := time.Now()
	status, body, err := c.roundTrip(ctx, path, query)
	c.metrics.ObserveRequest(resource, status, time.Since(start))
	if status != 0 {
		span.SetAttribute("http.status_code", status)
	}

	if err == nil {
		err = decode(body, out)
	}
	if err != nil {
		err = normalize(ctx, status, body, err)
		if !domain.IsCancelled(err) {
			span.RecordError(err)
		}
		return err
	}
	return nil
}

var errNon2xx = errors.New("non-2xx response")

func (c *Client) roundTrip(ctx context.Context, path string, query url.Values) (int, []byte, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", build.UserAgent())

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, nil, err
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return resp.StatusCode, body, errNon2xx
	}
	return resp.StatusCode, body, nil
}

func decode(body []byte, out any) error {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrDecodeResponse, "invalid response envelope"), "cause", err.Error())
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return zerr.Wrap(domain.ErrDecodeResponse, "response envelope has no data")
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrDecodeResponse, "invalid response data"), "cause", err.Error())
	}
	return nil
}

// normalize is the single point where request failures become typed errors.
//
// An aborted context becomes ErrRequestCancelled. A non-2xx status becomes an
// APIError carrying the status and raw body. Anything without a response,
// including a deadline, becomes an APIError with no status. Decoding failures
// of a 2xx body pass through unchanged.
func normalize(ctx context.Context, status int, body []byte, err error) error {
	switch {
	case errors.Is(ctx.Err(), context.Canceled):
		return zerr.Wrap(domain.ErrRequestCancelled, context.Canceled.Error())
	case errors.Is(err, errNon2xx):
		return domain.NewRemoteError(status, remoteMessage(body), body)
	case errors.Is(err, domain.ErrDecodeResponse):
		return err
	default:
		return domain.NewTransportError(err)
	}
}

// remoteMessage extracts a human-readable message from an error body.
// It returns "" when the body carries none.
func remoteMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	if len(eb.Error) > 0 {
		var s string
		if err := json.Unmarshal(eb.Error, &s); err == nil && s != "" {
			return s
		}
		var nested struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(eb.Error, &nested); err == nil && nested.Message != "" {
			return nested.Message
		}
	}
	return eb.Message
}
