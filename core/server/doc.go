// Package server provides an HTTP server wrapper with graceful shutdown
// and environment-based configuration.
//
// The Run method integrates with errgroup for coordinated lifecycle
// management across multiple long-running components:
//
//	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, mux))
//	return g.Wait()
package server
