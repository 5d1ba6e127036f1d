// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reuses an incoming X-Request-ID header when it is up to 128
// letters, digits, '_' or '-' and generates a fresh UUIDv4 otherwise. The id is echoed back in the
// response header and stored in the request context:
//
//	h := requestid.Middleware(mux)
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		id := requestid.FromContext(r.Context())
//	}
//
// LoggerExtractor plugs the id into records logged with the request context:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	log.InfoContext(r.Context(), "handled") // ... request_id=6f1c1b3e-...
package requestid
