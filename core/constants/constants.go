package constants

import "time"

// Request handling
const (
	DefaultTimeout      = 10 * time.Second
	HeaderRequestID     = "X-Request-ID"
	ContextRequestID    = "request_id"
	RequestIDLength     = 7
	ShutdownGracePeriod = 15 * time.Second
)

// Database pool tuning
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
	DatabaseSSLMode         = "disable"
)

// Event date handling. Inbound dates are UTC in EventDateLayout.
const (
	EventDateLayout = "2006.01.02 15:04"
)
