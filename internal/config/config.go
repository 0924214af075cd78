package config

import "time"

// Default configuration values.
const (
	defaultServiceName     = "estimator"
	defaultServiceVersion  = "1.0.0"
	defaultServicePort     = 8082
	defaultTopK            = 7
	defaultMinConfidence   = 0.25
	defaultCandidateLimit  = 50
	defaultRateLimitRPS    = 50
	defaultCatalogDriver   = "sqlite"
	defaultSQLitePath      = "csi_data.db"
	defaultDBHost          = "localhost"
	defaultDBPort          = 5432
	defaultDBUser          = "postgres"
	defaultDBName          = "estimator"
	defaultDBSSLMode       = "disable"
	defaultDBMaxConns      = 25
	defaultDBMaxIdleConns  = 5
	defaultESURL           = "http://localhost:9200"
	defaultESIndex         = "csi_items"
	defaultESTimeoutSec    = 30
	defaultLogLevel        = "info"
	defaultReadTimeoutSec  = 30
	defaultWriteTimeoutSec = 60
)

// Config holds all configuration for the estimator service.
type Config struct {
	Service Service `yaml:"service"`
	Catalog Catalog `yaml:"catalog"`
	Search  Search  `yaml:"search"`
	Logging Logging `yaml:"logging"`
}

// Service holds service-level configuration.
type Service struct {
	Name         string        `yaml:"name"`
	Version      string        `yaml:"version"`
	Port         int           `env:"ESTIMATOR_PORT" yaml:"port"`
	Debug        bool          `env:"APP_DEBUG"      yaml:"debug"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	RateLimitRPS int           `env:"ESTIMATOR_RATE_LIMIT_RPS" yaml:"rate_limit_rps"`
}

// Catalog holds line-item catalog backend configuration.
// Driver selects the backing store: "sqlite", "postgres" or "elasticsearch".
type Catalog struct {
	Driver       string        `env:"CATALOG_DRIVER"      yaml:"driver"`
	SQLitePath   string        `env:"CATALOG_SQLITE_PATH" yaml:"sqlite_path"`
	Host         string        `env:"POSTGRES_HOST"       yaml:"host"`
	Port         int           `env:"POSTGRES_PORT"       yaml:"port"`
	User         string        `env:"POSTGRES_USER"       yaml:"user"`
	Password     string        `env:"POSTGRES_PASSWORD"   yaml:"password"`
	Database     string        `env:"POSTGRES_DB"         yaml:"database"`
	SSLMode      string        `env:"POSTGRES_SSLMODE"    yaml:"sslmode"`
	MaxConns     int           `yaml:"max_connections"`
	MaxIdleConns int           `yaml:"max_idle_connections"`
	ESURL        string        `env:"ELASTICSEARCH_URL" yaml:"elasticsearch_url"`
	ESIndex      string        `yaml:"elasticsearch_index"`
	ESTimeout    time.Duration `yaml:"elasticsearch_timeout"`
	ESUsername   string        `yaml:"elasticsearch_username"`
	ESPassword   string        `yaml:"elasticsearch_password"`
}

// Search holds scoring and ranking settings.
type Search struct {
	TopK           int     `yaml:"top_k"`
	MinConfidence  float64 `yaml:"min_confidence"`
	CandidateLimit int     `yaml:"candidate_limit"`
}

// Logging holds logging configuration.
type Logging struct {
	Level       string `env:"LOG_LEVEL" yaml:"level"`
	Development bool   `yaml:"development"`
}

func setDefaults(cfg *Config) {
	setServiceDefaults(&cfg.Service)
	setCatalogDefaults(&cfg.Catalog)
	setSearchDefaults(&cfg.Search)
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaultLogLevel
	}
}

func setServiceDefaults(s *Service) {
	if s.Name == "" {
		s.Name = defaultServiceName
	}
	if s.Version == "" {
		s.Version = defaultServiceVersion
	}
	if s.Port == 0 {
		s.Port = defaultServicePort
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = defaultReadTimeoutSec * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = defaultWriteTimeoutSec * time.Second
	}
	if s.RateLimitRPS == 0 {
		s.RateLimitRPS = defaultRateLimitRPS
	}
}

func setCatalogDefaults(c *Catalog) {
	if c.Driver == "" {
		c.Driver = defaultCatalogDriver
	}
	if c.SQLitePath == "" {
		c.SQLitePath = defaultSQLitePath
	}
	if c.Host == "" {
		c.Host = defaultDBHost
	}
	if c.Port == 0 {
		c.Port = defaultDBPort
	}
	if c.User == "" {
		c.User = defaultDBUser
	}
	if c.Database == "" {
		c.Database = defaultDBName
	}
	if c.SSLMode == "" {
		c.SSLMode = defaultDBSSLMode
	}
	if c.MaxConns == 0 {
		c.MaxConns = defaultDBMaxConns
	}
	if c.MaxIdleConns == 0 {
		c.MaxIdleConns = defaultDBMaxIdleConns
	}
	if c.ESURL == "" {
		c.ESURL = defaultESURL
	}
	if c.ESIndex == "" {
		c.ESIndex = defaultESIndex
	}
	if c.ESTimeout == 0 {
		c.ESTimeout = defaultESTimeoutSec * time.Second
	}
}

func setSearchDefaults(s *Search) {
	if s.TopK == 0 {
		s.TopK = defaultTopK
	}
	if s.MinConfidence == 0 {
		s.MinConfidence = defaultMinConfidence
	}
	if s.CandidateLimit == 0 {
		s.CandidateLimit = defaultCandidateLimit
	}
}
