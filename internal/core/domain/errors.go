package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingAPIKey is returned when a client or widget is constructed without an API key.
	ErrMissingAPIKey = zerr.New("api key is required")

	// ErrMissingAddress is returned when a widget is constructed without an address.
	ErrMissingAddress = zerr.New("address is required")

	// ErrInvalidBaseURL is returned when the configured base URL cannot be parsed.
	ErrInvalidBaseURL = zerr.New("invalid base url")

	// ErrContainerNotFound is returned when a mount target does not resolve to a container.
	ErrContainerNotFound = zerr.New("container not found")

	// ErrNotMounted is returned when a lifecycle operation other than mount is called on an unmounted widget.
	ErrNotMounted = zerr.New("widget is not mounted")

	// ErrAlreadyMounted is returned when mount is called on a widget that is already mounted.
	ErrAlreadyMounted = zerr.New("widget is already mounted")

	// ErrRemoteRequest is the cause of every API error that carries an HTTP status code.
	ErrRemoteRequest = zerr.New("reputation api request failed")

	// ErrTransport is the cause of every API error where no response was received.
	ErrTransport = zerr.New("reputation api unreachable")

	// ErrRequestCancelled is returned when an in-flight request is aborted through its context.
	ErrRequestCancelled = zerr.New("request cancelled")

	// ErrDecodeResponse is returned when a 2xx response body is not a valid envelope.
	ErrDecodeResponse = zerr.New("failed to decode api response")

	// ErrUnknownWidgetKind is returned when a widget kind is not one of reputation, badge, profile or category.
	ErrUnknownWidgetKind = zerr.New("unknown widget kind")

	// ErrUnknownResource is returned when a plain resource name cannot be mapped to an endpoint.
	ErrUnknownResource = zerr.New("unknown resource")

	// ErrInvalidTheme is returned when a theme is not one of light, dark or auto.
	ErrInvalidTheme = zerr.New("invalid theme, expected 'light', 'dark' or 'auto'")

	// ErrMissingResourceKey is returned when a category or badge lookup is missing its key.
	ErrMissingResourceKey = zerr.New("resource key is required")

	// ErrConfigReadFailed is returned when the settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the settings file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidCacheTTL is returned when the configured cache TTL is not a positive duration.
	ErrInvalidCacheTTL = zerr.New("invalid cache ttl")

	// ErrRenderFailed is returned when a widget component fails to render.
	ErrRenderFailed = zerr.New("failed to render widget")

	// ErrWidgetsFailed is returned when a render finished with at least one widget in the error phase.
	ErrWidgetsFailed = zerr.New("one or more widgets failed to load")

	// ErrWatchFailed is returned when the settings watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch config file")
)
