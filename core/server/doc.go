// Package server provides an HTTP server wrapper with graceful shutdown,
// sane default timeouts and functional options.
//
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//
//	if err := srv.Run(ctx, mux); err != nil {
//		log.Fatal(err)
//	}
//
// Run blocks until the context is cancelled, then drains in-flight requests
// within the configured shutdown timeout.
package server
