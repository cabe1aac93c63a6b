package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Chain      ChainConfig      `yaml:"chain"`
	Settlement SettlementConfig `yaml:"settlement"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
// WriteTimeout must outlive the chain confirmation timeout, otherwise a
// confirmed contribution could be applied after the client was cut off.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"40s"`
	// WriteRateLimit caps mutating API requests per caller per minute.
	WriteRateLimit int `yaml:"write_rate_limit" env:"SERVER_WRITE_RATE_LIMIT" env-default:"60"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	// StatementTimeout bounds every statement, including time spent waiting
	// on an invoice row lock.
	StatementTimeout time.Duration `yaml:"statement_timeout" env:"DATABASE_STATEMENT_TIMEOUT" env-default:"15s"`
	ApplicationName  string        `yaml:"application_name"  env:"DATABASE_APPLICATION_NAME"  env-default:"cotravel-settlement"`
	// LockTimeout bounds the wait for an invoice row lock inside a settlement
	// transaction.
	LockTimeout time.Duration `yaml:"lock_timeout" env:"DATABASE_LOCK_TIMEOUT" env-default:"5s"`
}

// AuthConfig holds access token verification settings. Tokens are issued by
// the wallet login service; this process only verifies them.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"cotravel"`
}

// ChainConfig holds Soroban RPC and confirmation polling settings.
type ChainConfig struct {
	RPCURL              string        `yaml:"rpc_url"              env:"SOROBAN_RPC_URL"              env-default:"https://soroban-testnet.stellar.org"`
	ContractID          string        `yaml:"contract_id"          env:"SOROBAN_CONTRACT_ID"          env-required:"true"`
	NetworkPassphrase   string        `yaml:"network_passphrase"   env:"SOROBAN_NETWORK_PASSPHRASE"   env-default:"Test SDF Network ; September 2015"`
	HTTPTimeout         time.Duration `yaml:"http_timeout"         env:"SOROBAN_HTTP_TIMEOUT"         env-default:"10s"`
	PollAttempts        int           `yaml:"poll_attempts"        env:"SOROBAN_POLL_ATTEMPTS"        env-default:"30"`
	PollInterval        time.Duration `yaml:"poll_interval"        env:"SOROBAN_POLL_INTERVAL"        env-default:"1s"`
	ConfirmationTimeout time.Duration `yaml:"confirmation_timeout" env:"SOROBAN_CONFIRMATION_TIMEOUT" env-default:"35s"`
}

// SettlementConfig holds coordinator settings.
type SettlementConfig struct {
	DefaultPageSize int `yaml:"default_page_size" env:"SETTLEMENT_DEFAULT_PAGE_SIZE" env-default:"20"`
	MaxPageSize     int `yaml:"max_page_size"     env:"SETTLEMENT_MAX_PAGE_SIZE"     env-default:"100"`
	ReplayBatchSize int `yaml:"replay_batch_size" env:"SETTLEMENT_REPLAY_BATCH_SIZE" env-default:"50"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
