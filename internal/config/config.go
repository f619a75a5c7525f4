package config

import (
	"flag"
	"regexp"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	IdentityClaims   = "claims"
	IdentityUserInfo = "userinfo"

	DefaultDatabaseDSN = "file:stuff.db?_pragma=foreign_keys(1)"
)

type Config struct {
	// Server-side settings
	DatabaseDSN    string  `env:"DATABASE_URI"`
	AuthSecret     string  `env:"AUTH_SECRET"`
	JWTIssuer      string  `env:"JWT_ISSUER"`
	JWTAudience    string  `env:"JWT_AUDIENCE"`
	IdentityMode   string  `env:"IDENTITY_MODE"`
	UserInfoURL    string  `env:"USERINFO_URL"`
	Environment    string  `env:"APP_ENV"`
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"20"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"40"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL string `env:"-"`
	TokenFile string `env:"TOKEN_FILE"`
	Version   bool   `env:"-"` // show client version and exit (flag only)
}

var hostPortRe = regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (postgres:// или sqlite)")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для проверки подписи JWT")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "address of the StuffKeeper server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	// Client flags
	flag.StringVar(&cfg.TokenFile, "token-file", cfg.TokenFile, "path to bearer token file (client)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.AuthSecret == "" {
		c.AuthSecret = "dev-secret-key"
	}
	if c.DatabaseDSN == "" {
		c.DatabaseDSN = DefaultDatabaseDSN
	}

	c.Environment = strings.ToLower(strings.TrimSpace(c.Environment))
	if c.Environment != EnvProduction {
		c.Environment = EnvDevelopment
	}

	c.IdentityMode = strings.ToLower(strings.TrimSpace(c.IdentityMode))
	if c.IdentityMode != IdentityUserInfo {
		c.IdentityMode = IdentityClaims
	}

	if c.RateLimitBurst < 1 && c.RateLimitRPS > 0 {
		c.RateLimitBurst = 1
	}

	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	if !hostPortRe.MatchString(c.BaseURL) {
		c.BaseURL = "localhost:8081"
	}

	if c.EnableHTTPS {
		c.ServerURL = "https://" + c.BaseURL
	} else {
		c.ServerURL = "http://" + c.BaseURL
	}
}

// IsProduction сообщает, нужно ли скрывать тексты ошибок от клиентов.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}
