// Package health provides route handlers for service health probes.
//
// Handlers:
//   - Liveness: process is running, no dependency checks
//   - Readiness: every dependency check passes, 503 otherwise
//   - NoContent: 204 for high-frequency pings
//
// Usage:
//
//	r.Route("/health/live").Get(health.Liveness, router.Schemas{Response: health.StatusSchema()})
//	r.Route("/health/ready").Get(health.Readiness(log, db.PingContext), router.Schemas{Response: health.StatusSchema()})
//	r.Route("/ping").Get(health.NoContent)
//
// Dependency checks follow the func(context.Context) error signature.
package health
