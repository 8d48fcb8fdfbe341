package redis

import "errors"

// Sentinel errors returned by Connect and Healthcheck. Check with
// errors.Is when deciding whether a failure is worth retrying.
var (
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")
	ErrRedisNotReady                = errors.New("redis did not become ready within the given time period")
	ErrEmptyConnectionURL           = errors.New("empty redis connection URL")
	ErrHealthcheckFailed            = errors.New("redis healthcheck failed")
)
