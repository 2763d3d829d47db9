package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"
	defaultPort       = 2370
	defaultEnv        = "development"
	defaultDBHost     = "127.0.0.1"
	defaultDBPort     = 3306
	defaultDBName     = "flightfolio"
	defaultCharset    = "utf8mb4"
	defaultRedisURL   = "redis://localhost:6379/0"
)

// Load reads and normalizes the YAML config file. A missing file yields the
// development defaults so a fresh checkout boots without ceremony.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	normalize(cfg)
	return cfg, nil
}

func normalize(cfg *AppConfig) {
	if cfg.Port <= 0 {
		cfg.Port = defaultPort
	}
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = defaultEnv
	}
	cfg.Env = strings.ToLower(strings.TrimSpace(cfg.Env))
	if cfg.RedisURL == "" {
		cfg.RedisURL = defaultRedisURL
	}
	if cfg.DSN == "" {
		cfg.DSN = buildDSN(cfg.Database)
	}
	if cfg.Paths.Logs == "" {
		cfg.Paths.Logs = "logs"
	}
}

func buildDSN(db DatabaseRuntimeConfig) string {
	host := db.Host
	if host == "" {
		host = defaultDBHost
	}
	port := db.Port
	if port <= 0 {
		port = defaultDBPort
	}
	user := db.User
	if user == "" {
		user = "root"
	}
	name := db.Name
	if name == "" {
		name = defaultDBName
	}
	charset := db.Charset
	if charset == "" {
		charset = defaultCharset
	}
	loc := db.Loc
	if loc == "" {
		loc = "Local"
	}
	cred := user
	if db.Password != "" {
		cred = user + ":" + db.Password
	}
	return fmt.Sprintf("%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=%s",
		cred, host, port, name, charset, loc)
}

// DefaultFullConfig returns the settings document used before anything is saved.
func DefaultFullConfig() *FullConfig {
	return &FullConfig{
		Site: SiteOptions{Title: "Flightfolio"},
		MapOptions: MapOptions{
			CanvasWidth:   2000,
			CanvasHeight:  1000,
			ArcSegments:   64,
			MaxArcHeight:  80,
			Background:    "#0B1220",
			GraticuleStep: 30,
		},
		ImportOptions: ImportOptions{MaxRows: 5000},
		AI:            AIConfig{EnableImportAssist: true},
	}
}
