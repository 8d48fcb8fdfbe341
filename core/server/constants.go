package server

import "time"

// Defaults applied by New when no option overrides them.
const (
	// DefaultReadTimeout bounds reading the full request, header and body.
	DefaultReadTimeout = 15 * time.Second

	// DefaultWriteTimeout bounds writing the response.
	DefaultWriteTimeout = 15 * time.Second

	// DefaultIdleTimeout closes keep-alive connections that stay quiet.
	DefaultIdleTimeout = 60 * time.Second

	// DefaultShutdownTimeout is how long in-flight requests get to finish
	// during graceful shutdown.
	DefaultShutdownTimeout = 30 * time.Second

	// DefaultMaxHeaderBytes caps request header size.
	DefaultMaxHeaderBytes = 1 << 20 // 1 MB
)
