package router

import "log/slog"

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the logger used to report route registration.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}
