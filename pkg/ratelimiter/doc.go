// Package ratelimiter provides token bucket rate limiting with pluggable
// storage backends.
//
// The bucket holds a fixed capacity of tokens, refilled at a constant rate.
// Requests consume tokens and are denied when the balance goes negative,
// which allows short bursts while enforcing the average rate.
//
// Basic setup:
//
//	store := ratelimiter.NewMemoryStore()
//
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       10,
//		RefillRate:     10,
//		RefillInterval: time.Minute,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := limiter.Allow(ctx, clientIP)
//	if err != nil {
//		return err
//	}
//	if !result.Allowed() {
//		// deny with Retry-After = result.RetryAfter()
//	}
//
// For multi-instance deployments, back the limiter with Redis so all
// replicas share bucket state:
//
//	store := ratelimiter.NewRedis(redisClient)
package ratelimiter
