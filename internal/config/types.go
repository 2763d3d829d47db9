package config

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int                   `yaml:"port"`
	DSN            string                `yaml:"dsn"` // MySQL DSN
	RedisURL       string                `yaml:"redis_url"`
	Database       DatabaseRuntimeConfig `yaml:"database"`
	Env            string                `yaml:"env"` // "development" | "production"
	Paths          RuntimePathsConfig    `yaml:"paths"`
	AllowedOrigins []string              `yaml:"allowed_origins"`
	JWTSecret      string                `yaml:"jwt_secret"`
}

// DatabaseRuntimeConfig assembles a DSN from parts when dsn is not given verbatim.
type DatabaseRuntimeConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Charset  string `yaml:"charset"`
	Loc      string `yaml:"loc"`
}

type RuntimePathsConfig struct {
	Logs   string `yaml:"logs"`
	Static string `yaml:"static"`
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool { return c.Env != "production" }

// FullConfig is the settings document stored in the database
// (options table, key="configs"). Editable at runtime through the API.
type FullConfig struct {
	Site          SiteOptions   `json:"site"`
	MapOptions    MapOptions    `json:"map_options"`
	ImportOptions ImportOptions `json:"import_options"`
	S3Options     S3Options     `json:"s3_options"`
	AI            AIConfig      `json:"ai"`
}

type SiteOptions struct {
	Title  string `json:"title"`
	WebURL string `json:"web_url"`
}

// MapOptions controls the server-side map renderer.
type MapOptions struct {
	CanvasWidth   int     `json:"canvas_width"`
	CanvasHeight  int     `json:"canvas_height"`
	ArcSegments   int     `json:"arc_segments"`
	MaxArcHeight  float64 `json:"max_arc_height"`
	Background    string  `json:"background"`
	GraticuleStep float64 `json:"graticule_step"`
}

type ImportOptions struct {
	MaxRows int `json:"max_rows"`
}

type S3Options struct {
	Endpoint        string `json:"endpoint"`
	AccessKeyID     string `json:"access_key_id"`
	SecretAccessKey string `json:"secret_access_key"`
	Bucket          string `json:"bucket"`
	Region          string `json:"region"`
	CustomDomain    string `json:"custom_domain"`
	PathStyleAccess bool   `json:"path_style_access"`
}

type AIConfig struct {
	Providers          []AIProvider       `json:"providers"`
	ColumnMappingModel *AIModelAssignment `json:"column_mapping_model,omitempty"`
	EnableImportAssist bool               `json:"enable_import_assist"`
}

type AIModelAssignment struct {
	ProviderID string `json:"provider_id"`
	Model      string `json:"model"`
}

type AIProvider struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"` // OpenAI | OpenAI-Compatible | Anthropic
	APIKey       string `json:"api_key"`
	Endpoint     string `json:"endpoint,omitempty"`
	DefaultModel string `json:"default_model"`
	Enabled      bool   `json:"enabled"`
}

// DefaultMapOptions fills unset renderer settings.
func (m MapOptions) Normalized() MapOptions {
	if m.CanvasWidth <= 0 {
		m.CanvasWidth = 2000
	}
	if m.CanvasHeight <= 0 {
		m.CanvasHeight = 1000
	}
	if m.ArcSegments <= 0 {
		m.ArcSegments = 64
	}
	if m.MaxArcHeight <= 0 {
		m.MaxArcHeight = 80
	}
	if m.Background == "" {
		m.Background = "#0B1220"
	}
	if m.GraticuleStep <= 0 {
		m.GraticuleStep = 30
	}
	return m
}
