package database

import "time"

// Connection pool defaults
const (
	DefaultMaxConnections  = 10
	DefaultMinConnections  = 2
	DefaultMaxConnLifetime = time.Hour
	DefaultMaxConnIdleTime = 30 * time.Minute
	DefaultPingTimeout     = 5 * time.Second
)
