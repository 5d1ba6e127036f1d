package formapi

import "log/slog"

// Option configures an API.
type Option func(*API)

// WithLogger sets the logger used for request-level failures. Nil loggers
// are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(a *API) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithMaxBodySize limits request bodies to n bytes. Non-positive values keep
// the default of 1 MiB.
func WithMaxBodySize(n int64) Option {
	return func(a *API) {
		if n > 0 {
			a.maxBodySize = n
		}
	}
}
