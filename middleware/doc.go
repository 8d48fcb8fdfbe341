// Package middleware provides typed HTTP middleware for the router's
// generic handler chain: request IDs, client IP extraction, structured
// request logging, rate limiting, and security headers.
package middleware
