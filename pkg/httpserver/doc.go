// Package httpserver runs an http.Handler with graceful shutdown.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// Run blocks until the context is cancelled, the process receives SIGINT or
// SIGTERM, or Shutdown is called from another goroutine. Startup failures are
// wrapped in ErrStart and shutdown failures in ErrShutdown.
package httpserver
