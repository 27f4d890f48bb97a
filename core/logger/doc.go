// Package logger builds slog loggers and provides attribute helpers used
// across the server.
//
//	log := logger.New(
//		logger.WithProduction("phosphor"),
//		logger.WithContextExtractors(server.RequestIDExtractor),
//	)
//	log.Info("request completed",
//		logger.Method("GET"),
//		logger.Route("/status"),
//		logger.StatusCode(200),
//	)
//
// Attribute helpers return an empty slog.Attr for zero inputs, which slog
// drops, so they can be passed without nil checks.
package logger
