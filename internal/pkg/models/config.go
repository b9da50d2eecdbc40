package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	Telemetry TelemetryConfig
	Geocode   GeocodeConfig
	Poller    PollerConfig
	Logger    LoggerConfig
	APIKeys   APIKeyConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// TelemetryConfig points at the device-telemetry provider
type TelemetryConfig struct {
	BaseURL     string
	Token       string
	ChannelID   string
	MaxRetries  int
	DeviceIdent []string // idents of devices to poll
}

// GeocodeConfig points at the reverse-geocoding provider
type GeocodeConfig struct {
	BaseURL string
	APIKey  string
}

// PollerConfig controls the background polling loops
type PollerConfig struct {
	TelemetryInterval int // seconds between telemetry fetches per device
	GeofenceInterval  int // seconds between classifier ticks
	ActivityCooldown  int // seconds before an unchanged activity log is re-persisted
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// APIKeyConfig holds keys for service-to-service calls
type APIKeyConfig struct {
	Dashboard string
}
