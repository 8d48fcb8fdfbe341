// Package redis provides Redis client initialization with retry logic and
// health checking.
//
// Connect validates the connection URL, retries transient failures, and
// verifies connectivity with a ping before returning the client. Healthcheck
// returns a probe function for readiness endpoints:
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	readiness := health.Readiness[*app.Context](log, redis.Healthcheck(client))
package redis
