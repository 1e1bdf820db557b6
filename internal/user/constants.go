package user

import "time"

// Password policy
const (
	MinPasswordLength = 8
)

// Cache configuration
const (
	CacheSize = 1024
	CacheTTL  = 5 * time.Minute
)
