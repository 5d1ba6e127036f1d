// Package logger builds *slog.Logger instances for fieldcheck services and
// keeps attribute names consistent across packages.
//
// New takes functional options: output format (text or json), level, static
// attributes, per-environment presets, and ContextExtractor callbacks that
// copy request-scoped values (such as the request id) from the context into
// every record logged with the *Context methods.
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "fieldcheck"),
//	    logger.WithContextExtractors(formapi.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "form validated", logger.Form("signup"), logger.Field("zip"))
//
// Attribute helpers that take an error or id return an empty slog.Attr for
// zero input, which slog drops, so call sites need no nil checks.
package logger
