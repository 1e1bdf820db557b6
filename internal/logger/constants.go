package logger

// Service Configuration Values
const (
	DefaultServiceName = "campuslife"
	DefaultVersion     = "dev"
)

// Log Format String Values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)
