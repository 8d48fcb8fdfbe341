// Package health provides liveness and readiness probe handlers for
// orchestrated deployments.
package health
