// Package server runs routers over HTTP.
//
// Handler is the request pipeline. For each request it:
//
//  1. resolves the route with router.Match on the escaped path (404 if none),
//  2. parses the query string into map[string]string, last value wins,
//  3. validates the query against the route's query schema,
//  4. reads and decodes the JSON body and validates it against the body schema,
//  5. calls the handler, recovering panics,
//  6. validates the result against the response schema,
//  7. writes 204 for a nil result or 200 with a JSON body.
//
// Failures at any step are rendered with response.WriteError. Query and body
// schema failures are 400 validation errors ("query_parse_error",
// "body_parse_error") carrying the issue tree; a response that fails its
// schema is a 500 whose details are only logged.
//
// Each request also gets an X-Request-ID header, an OpenTelemetry span named
// "METHOD /route/{pattern}", an access log record and, with WithMetrics,
// Prometheus observations.
//
//	h := server.NewHandler(r,
//		server.WithRequestLogger(log),
//		server.WithMetrics(metrics),
//		server.WithMaxBodyBytes(1<<20),
//	)
//
// Server wraps http.Server with graceful shutdown. Run returns a function
// suitable for errgroup:
//
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, h))
//	return g.Wait()
//
// Config reads SERVER_ADDR, SERVER_READ_TIMEOUT, SERVER_WRITE_TIMEOUT,
// SERVER_IDLE_TIMEOUT, SERVER_SHUTDOWN_TIMEOUT, SERVER_MAX_HEADER_BYTES,
// SERVER_MAX_BODY_BYTES and the optional SERVER_TLS_CERT_FILE and
// SERVER_TLS_KEY_FILE.
package server
