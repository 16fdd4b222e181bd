package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	NSQ      NSQConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
	Routing  RoutingConfig
	Cache    CacheConfig
	Jobs     JobsConfig
	APIKeys  APIKeysConfig
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
	// CalculateRateLimit caps calculation triggers per client per minute, 0 disables it
	CalculateRateLimit int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
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

// NSQConfig contains NSQ connection configuration, used when JobsConfig.Transport is "nsq"
type NSQConfig struct {
	NSQDAddress      string
	LookupdAddresses []string
	Channel          string
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	LogsEnabled bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// BackendKind selects the routing backend implementation
type BackendKind string

const (
	// BackendLocal is a self-hosted OSRM instance
	BackendLocal BackendKind = "local"
	// BackendExternal is the metered OpenRouteService API
	BackendExternal BackendKind = "external"
)

// RoutingConfig contains routing backend configuration
type RoutingConfig struct {
	Backend         BackendKind
	OSRMBaseURL     string
	ORSBaseURL      string
	ORSAPIKey       string
	TimeoutSeconds  int
	DefaultProfile  string
	BreakerFailures int
	BreakerCooldown int // seconds
}

// CacheConfig contains segment cache configuration
type CacheConfig struct {
	Enabled  bool
	Driver   string // "redis" or "memory"
	TTLHours int
}

// JobsConfig contains background calculation configuration
type JobsConfig struct {
	AsyncCalculation bool
	Transport        string // "nats" or "nsq"
	Workers          int
	MaxAttempts      int
	RetryDelay       int // seconds
	LockTTL          int // seconds
}

// APIKeysConfig contains keys accepted on internal endpoints
type APIKeysConfig struct {
	Internal string
}
