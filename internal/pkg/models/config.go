package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	OTP      OTPConfig
	SMTP     SMTPConfig
	Twilio   TwilioConfig
	Services ServicesConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
	APIKey   APIKeyConfig
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

// OTPConfig contains one-time-code issuance policy
type OTPConfig struct {
	TTLMinutes     int // challenge lifetime
	MaxAttempts    int // wrong codes tolerated per challenge
	PINMaxFailures int // wrong PINs tolerated before lockout
	PINLockMinutes int // lockout duration after repeated wrong PINs
}

// SMTPConfig contains SMTP settings for the email channel
type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	SenderEmail string
}

// TwilioConfig contains Twilio settings for the SMS channel
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

// ServicesConfig contains URLs for collaborator services
type ServicesConfig struct {
	ProfileServiceURL string
}

// NewRelicConfig contains New Relic observability configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// APIKeyConfig contains keys for service-to-service endpoints
type APIKeyConfig struct {
	AdminAPIKey string
}
