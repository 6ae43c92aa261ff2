package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	JWT       JWTConfig
	NewRelic  NewRelicConfig
	Logger    LoggerConfig
	Places    PlacesConfig
	Detection DetectionConfig
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

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// NewRelicConfig contains New Relic observability configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains structured logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// PlacesConfig locates the place definitions document
type PlacesConfig struct {
	File string
}

// DetectionConfig holds every tunable of the detection pipeline. Defaults
// live in config.InitConfig so no detector carries hard-coded thresholds
// of its own.
type DetectionConfig struct {
	StationaryMaxMps  float64
	WalkingMaxMps     float64
	SegmentGapMinutes int
	Golf              ActivityRuleConfig
	DogWalk           ActivityRuleConfig
}

// ActivityRuleConfig holds the per-activity filter and scoring parameters
type ActivityRuleConfig struct {
	GapToleranceMinutes int
	MinDurationMinutes  int
	ExpectedMinMinutes  int
	ExpectedMaxMinutes  int
	// Start-of-session hour-of-day window; both -1 disables the check
	EarliestStartHour int
	LatestStartHour   int
}
