// Package formapi exposes named validators over HTTP.
//
// Routes:
//
//	GET  /health                 200 "ALIVE"
//	GET  /forms                  {"data": ["contact", "signup"]}
//	POST /forms/{form}/validate  {"data": {"valid": false, "errors": {"zip": ["..."]}}}
//
// The validate endpoint accepts a flat JSON object, a url-encoded form or a
// multipart form. It answers 200 when every field is clean and 422 when any
// field failed. Unknown forms return 404, undecodable bodies 400 and
// misconfigured forms 500; the latter is also logged with the request id.
//
// Every request passes through requestid.Middleware, so failures logged with
// the request context carry the X-Request-ID:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	api := formapi.New(forms, formapi.WithLogger(log))
//	http.ListenAndServe(":8080", api.Handler())
package formapi
