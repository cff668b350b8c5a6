package contract

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/huangsam/talentview/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 50
	MaxResultLimit     = 1000
	DefaultPrecision   = 1
	DefaultCacheTTL    = 30 * time.Second
	DefaultHTTPTimeout = 15 * time.Second
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// StatusWildcard matches every collaborator status.
const StatusWildcard = "all"

// Config holds the runtime configuration for the dashboard commands.
// This struct remains the "final, validated" config.
type Config struct {
	APIBaseURL string
	APIToken   string // Please use env var as this is plaintext
	Cycle      string

	Search       string
	StatusFilter string // "all" or one of the collaborator status buckets
	Band         schema.PerformanceBand
	Sort         schema.SortOrder
	Category     string // talent matrix cell label filter

	SubordinateID string

	ResultLimit int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)
	UseColors   bool

	CacheTTL    time.Duration
	HTTPTimeout time.Duration

	SnapshotBackend   schema.DatabaseBackend
	SnapshotDBConnect string // Please use env var as this is plaintext
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	APIBaseURL string `mapstructure:"api-url"`
	APIToken   string `mapstructure:"api-token"`
	Cycle      string `mapstructure:"cycle"`

	Search   string `mapstructure:"search"`
	Status   string `mapstructure:"status"`
	Band     string `mapstructure:"band"`
	Sort     string `mapstructure:"sort"`
	Category string `mapstructure:"category"`

	Subordinate string `mapstructure:"subordinate"`

	Limit      int    `mapstructure:"limit"`
	Precision  int    `mapstructure:"precision"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Width      int    `mapstructure:"width"`
	Color      string `mapstructure:"color"`

	CacheTTL    string `mapstructure:"cache-ttl"`
	HTTPTimeout string `mapstructure:"timeout"`

	SnapshotBackend   string `mapstructure:"snapshot-backend"`
	SnapshotDBConnect string `mapstructure:"snapshot-db-connect"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processAPIInputs(cfg, input); err != nil {
		return err
	}
	if err := processDurations(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfig(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all non-API related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.Search = input.Search
	cfg.Category = input.Category
	cfg.SubordinateID = strings.TrimSpace(input.Subordinate)
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.Cycle = strings.TrimSpace(input.Cycle)

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Status Filter Validation ---
	status := strings.ToLower(strings.TrimSpace(input.Status))
	switch schema.CollaboratorStatus(status) {
	case schema.HighStatus, schema.MediumStatus, schema.LowStatus:
		cfg.StatusFilter = status
	default:
		if status != "" && status != StatusWildcard {
			return fmt.Errorf("invalid status '%s'. must be high, medium, low, all", input.Status)
		}
		cfg.StatusFilter = StatusWildcard
	}

	// --- 3. Band Validation ---
	cfg.Band = schema.PerformanceBand(strings.ToLower(input.Band))
	if _, ok := schema.ValidPerformanceBands[cfg.Band]; !ok {
		return fmt.Errorf("invalid band '%s'. must be high, medium, low, all", input.Band)
	}

	// --- 4. Sort Validation ---
	cfg.Sort = schema.SortOrder(strings.ToLower(input.Sort))
	if _, ok := schema.ValidSortOrders[cfg.Sort]; !ok {
		return fmt.Errorf("invalid sort '%s'. must be alphabetical, highest_score, lowest_score", input.Sort)
	}

	// --- 5. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", cfg.Output)
	}

	return nil
}

// processAPIInputs validates the API endpoint configuration.
func processAPIInputs(cfg *Config, input *ConfigRawInput) error {
	base := strings.TrimRight(strings.TrimSpace(input.APIBaseURL), "/")
	if base == "" {
		return fmt.Errorf("api-url is required (flag --api-url, env TALENTVIEW_API_URL, or config file)")
	}
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid api-url '%s'. expected absolute URL like https://api.example.com", input.APIBaseURL)
	}
	cfg.APIBaseURL = base
	cfg.APIToken = input.APIToken
	return nil
}

// processDurations parses cache TTL and HTTP timeout.
func processDurations(cfg *Config, input *ConfigRawInput) error {
	cfg.CacheTTL = DefaultCacheTTL
	if input.CacheTTL != "" {
		d, err := time.ParseDuration(input.CacheTTL)
		if err != nil {
			return fmt.Errorf("invalid cache-ttl '%s': %w", input.CacheTTL, err)
		}
		if d < 0 {
			return fmt.Errorf("cache-ttl cannot be negative (received %s)", d)
		}
		cfg.CacheTTL = d
	}

	cfg.HTTPTimeout = DefaultHTTPTimeout
	if input.HTTPTimeout != "" {
		d, err := time.ParseDuration(input.HTTPTimeout)
		if err != nil {
			return fmt.Errorf("invalid timeout '%s': %w", input.HTTPTimeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("timeout must be positive (received %s)", d)
		}
		cfg.HTTPTimeout = d
	}

	return nil
}

// validateBackendConfig validates the snapshot backend configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.SnapshotBackend = schema.DatabaseBackend(strings.ToLower(input.SnapshotBackend))
	if cfg.SnapshotBackend == "" {
		// Empty means tracking disabled; no further validation needed.
		return nil
	}
	if _, ok := schema.ValidDatabaseBackends[cfg.SnapshotBackend]; !ok {
		return fmt.Errorf("invalid snapshot backend '%s'. must be sqlite, mysql, postgresql, none", input.SnapshotBackend)
	}
	cfg.SnapshotDBConnect = input.SnapshotDBConnect
	return ValidateDatabaseConnectionString(cfg.SnapshotBackend, cfg.SnapshotDBConnect)
}

// ValidateDatabaseConnectionString validates the format of database
// connection strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("snapshot-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("snapshot-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// GetSnapshotDBFilePath returns the path to the SQLite DB file for snapshot storage.
func GetSnapshotDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".talentview_snapshots.db"
	}
	return filepath.Join(homeDir, ".talentview_snapshots.db")
}
