package repository

import "time"

// ResultCache stores serialized simulation outputs keyed by their inputs.
// Implementations must be safe for concurrent use.
type ResultCache interface {
	Get(key string) (string, bool)
	Set(key string, value string, ttl time.Duration) error
}
