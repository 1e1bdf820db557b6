package config

// Default configuration values
const (
	DefaultTimezone       = "UTC"
	DefaultTokenTTL       = "168h" // one week of campus sessions
	DefaultMaxUploadBytes = 10 << 20
	DefaultITunesBaseURL  = "https://itunes.apple.com"
)
