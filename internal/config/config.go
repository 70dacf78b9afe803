package config

import (
	"flag"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"SessionGuard/internal/session"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
)

type Config struct {
	// Web host settings
	BackendURL   string `env:"BACKEND_URL"`
	CookieSecure bool   `env:"COOKIE_SECURE"`

	// Shared settings
	BaseURL     string   `env:"BASE_URL"`
	EnableHTTPS bool     `env:"ENABLE_HTTPS"`
	LoginPath   string   `env:"LOGIN_PATH"`
	PublicPaths []string `env:"PUBLIC_PATHS" envSeparator:","`

	// Client-side settings
	ServerURL    string `env:"-"`
	TokenStore   string `env:"TOKEN_STORE"`
	TokenDir     string `env:"TOKEN_DIR"`
	ClientDBPath string `env:"CLIENT_DB_PATH"`
	Version      bool   `env:"-"` // show client version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// флаги работают ТОЛЬКО если переменные из env не заданы
	// Web host flags
	flag.StringVar(&cfg.BackendURL, "backend", cfg.BackendURL, "URL API-бэкенда, на который проксируется /api/*")
	flag.BoolVar(&cfg.CookieSecure, "cookie-secure", cfg.CookieSecure, "ставить Secure на cookie с токеном")
	// Shared flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "address of the web host (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	flag.StringVar(&cfg.LoginPath, "login-path", cfg.LoginPath, "путь страницы входа")
	flag.Func("public", "comma separated list of pages open without a token", func(s string) error {
		cfg.PublicPaths = splitPaths(s)
		return nil
	})
	// Client flags
	flag.StringVar(&cfg.TokenStore, "token-store", cfg.TokenStore, "token storage backend: file | sqlite")
	flag.StringVar(&cfg.TokenDir, "token-dir", cfg.TokenDir, "directory of the file token store")
	flag.StringVar(&cfg.ClientDBPath, "client-db", cfg.ClientDBPath, "path to client SQLite DB")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

var hostPortRe = regexp.MustCompile(`^[A-Za-z0-9\.\-]*:\d{1,5}$`)

func (cfg *Config) applyDefaults() {
	// BaseURL: только "address:port" (без схемы и пути), иначе дефолт
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8080"
	}
	host := cfg.BaseURL
	if strings.HasPrefix(host, ":") {
		host = "localhost" + host
	}
	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + host
	} else {
		cfg.ServerURL = "http://" + host
	}

	if u, err := url.Parse(cfg.BackendURL); err != nil || u.Scheme == "" || u.Host == "" {
		cfg.BackendURL = "http://localhost:8000"
	}

	if cfg.LoginPath == "" || !strings.HasPrefix(cfg.LoginPath, "/") {
		cfg.LoginPath = session.DefaultLoginPath
	}
	if len(cfg.PublicPaths) == 0 {
		cfg.PublicPaths = []string{session.RootPath, cfg.LoginPath}
	}

	switch cfg.TokenStore {
	case StoreFile, StoreSQLite:
	default:
		cfg.TokenStore = StoreFile
	}

	// Fill client defaults if empty
	cfgDir, _ := os.UserConfigDir()
	if cfg.TokenDir == "" {
		cfg.TokenDir = filepath.Join(cfgDir, "SessionGuard")
	}
	if cfg.ClientDBPath == "" {
		cfg.ClientDBPath = filepath.Join(cfgDir, "SessionGuard", "session.sqlite")
	}
}

// Gate собирает политику доступа к страницам из настроек.
func (cfg *Config) Gate() session.Gate {
	return session.Gate{LoginPath: cfg.LoginPath, PublicPaths: cfg.PublicPaths}
}

func splitPaths(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
