package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string          `toml:"environment"` // "development" or "production"
	Storage     StorageConfig   `toml:"storage"`
	Logging     LoggingConfig   `toml:"logging"`
	Edgar       EdgarConfig     `toml:"edgar"`
	MarketData  MarketDataConfig `toml:"market_data"`
	Cache       CacheConfig     `toml:"cache"`
	Analysis    AnalysisConfig  `toml:"analysis"`
	Rules       RulesConfig     `toml:"rules"`
	Export      ExportConfig    `toml:"export"`
	Watchlist   WatchlistConfig `toml:"watchlist"`
}

type StorageConfig struct {
	Badger BadgerConfig `toml:"badger"`
}

// BadgerConfig represents BadgerDB-specific configuration
type BadgerConfig struct {
	Path           string `toml:"path" validate:"required"` // Database directory path
	ResetOnStartup bool   `toml:"reset_on_startup"`         // Delete database on startup for clean test runs
}

type LoggingConfig struct {
	Level  string   `toml:"level" validate:"oneof=debug info warn error"` // "debug", "info", "warn", "error"
	Format string   `toml:"format"`                                      // "json" or "text"
	Output []string `toml:"output"`                                      // "stdout", "file"
	Audit  string   `toml:"audit"`                                       // Audit trail file path (JSONL), empty disables file output
}

// EdgarConfig contains SEC EDGAR access configuration.
// The SEC requires a User-Agent identifying the caller with a contact address
// and caps automated traffic at 10 requests per second.
type EdgarConfig struct {
	UserAgent      string        `toml:"user_agent" validate:"required"`
	RateLimit      int           `toml:"rate_limit" validate:"min=1,max=10"` // Requests per second
	RequestTimeout time.Duration `toml:"request_timeout"`
}

// MarketDataConfig contains the financial data provider configuration.
type MarketDataConfig struct {
	APIKey         string        `toml:"api_key"`
	Exchange       string        `toml:"exchange"`  // Symbol suffix, e.g. "US" for AAPL.US
	Benchmark      string        `toml:"benchmark"` // Benchmark index symbol for relative performance
	RateLimit      int           `toml:"rate_limit" validate:"min=1"`
	RequestTimeout time.Duration `toml:"request_timeout"`
}

// CacheConfig controls TTL-based expiry of fetched data.
type CacheConfig struct {
	TTLDays int `toml:"ttl_days" validate:"min=1"` // Entries older than this are treated as absent
}

// AnalysisConfig controls the evidence extraction engine.
type AnalysisConfig struct {
	NLPEnabled     bool `toml:"nlp_enabled"`     // Use the NLP-backed sentence classifier
	CandidateLimit int  `toml:"candidate_limit"` // Max candidate sentences before falling back to pattern matching
	ContextWindow  int  `toml:"context_window"`  // Characters of surrounding context kept per finding
}

// RulesConfig points at an optional YAML overrides file for threshold
// ladders and keyword banks. Built-in defaults apply when empty.
type RulesConfig struct {
	Path string `toml:"path"`
}

// ExportConfig controls report output.
type ExportConfig struct {
	Dir     string   `toml:"dir"`
	Formats []string `toml:"formats"` // "csv", "markdown", "html", "pdf"
}

// WatchlistConfig holds the tickers scored in watch mode.
type WatchlistConfig struct {
	Tickers  []string `toml:"tickers"`
	Schedule string   `toml:"schedule"` // Cron expression, empty disables watch mode
}

// NewDefaultConfig creates a configuration with default values.
// Technical parameters are hardcoded here for production stability.
// Only user-facing settings should be exposed in gauntlet.toml.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Storage: StorageConfig{
			Badger: BadgerConfig{
				Path: "./data",
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: []string{"stdout", "file"},
			Audit:  "./logs/audit.jsonl",
		},
		Edgar: EdgarConfig{
			UserAgent:      "gauntlet research tool admin@example.com",
			RateLimit:      10, // SEC fair-access ceiling
			RequestTimeout: 30 * time.Second,
		},
		MarketData: MarketDataConfig{
			APIKey:         "", // User must provide API key in config file
			Exchange:       "US",
			Benchmark:      "GSPC.INDX",
			RateLimit:      10,
			RequestTimeout: 30 * time.Second,
		},
		Cache: CacheConfig{
			TTLDays: 15,
		},
		Analysis: AnalysisConfig{
			NLPEnabled:     true,
			CandidateLimit: 100,
			ContextWindow:  100,
		},
		Rules: RulesConfig{
			Path: "",
		},
		Export: ExportConfig{
			Dir:     "./reports",
			Formats: []string{"csv", "markdown"},
		},
		Watchlist: WatchlistConfig{
			Tickers:  nil,
			Schedule: "",
		},
	}
}

// LoadFromFile loads configuration with priority: default -> file -> env -> CLI
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files with priority:
// default -> file1 -> file2 -> ... -> env -> CLI. Later files override
// earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		// Unmarshal into config (merges with existing values, later values override)
		err = toml.Unmarshal(data, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the configuration against struct validation tags.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("GAUNTLET_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	// Storage configuration
	if badgerPath := os.Getenv("GAUNTLET_BADGER_PATH"); badgerPath != "" {
		config.Storage.Badger.Path = badgerPath
	}

	// Logging configuration
	if level := os.Getenv("GAUNTLET_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if format := os.Getenv("GAUNTLET_LOG_FORMAT"); format != "" {
		config.Logging.Format = format
	}
	if output := os.Getenv("GAUNTLET_LOG_OUTPUT"); output != "" {
		outputs := []string{}
		for _, o := range strings.Split(output, ",") {
			trimmed := strings.TrimSpace(o)
			if trimmed != "" {
				outputs = append(outputs, trimmed)
			}
		}
		if len(outputs) > 0 {
			config.Logging.Output = outputs
		}
	}
	if audit := os.Getenv("GAUNTLET_AUDIT_LOG"); audit != "" {
		config.Logging.Audit = audit
	}

	// EDGAR configuration
	if userAgent := os.Getenv("GAUNTLET_EDGAR_USER_AGENT"); userAgent != "" {
		config.Edgar.UserAgent = userAgent
	}
	if rateLimit := os.Getenv("GAUNTLET_EDGAR_RATE_LIMIT"); rateLimit != "" {
		if rl, err := strconv.Atoi(rateLimit); err == nil {
			config.Edgar.RateLimit = rl
		}
	}
	if timeout := os.Getenv("GAUNTLET_EDGAR_REQUEST_TIMEOUT"); timeout != "" {
		if rt, err := time.ParseDuration(timeout); err == nil {
			config.Edgar.RequestTimeout = rt
		}
	}

	// Market data configuration
	if apiKey := os.Getenv("GAUNTLET_MARKET_DATA_API_KEY"); apiKey != "" {
		config.MarketData.APIKey = apiKey
	}
	if exchange := os.Getenv("GAUNTLET_MARKET_DATA_EXCHANGE"); exchange != "" {
		config.MarketData.Exchange = exchange
	}
	if benchmark := os.Getenv("GAUNTLET_MARKET_DATA_BENCHMARK"); benchmark != "" {
		config.MarketData.Benchmark = benchmark
	}
	if rateLimit := os.Getenv("GAUNTLET_MARKET_DATA_RATE_LIMIT"); rateLimit != "" {
		if rl, err := strconv.Atoi(rateLimit); err == nil {
			config.MarketData.RateLimit = rl
		}
	}

	// Cache configuration
	if ttlDays := os.Getenv("GAUNTLET_CACHE_TTL_DAYS"); ttlDays != "" {
		if d, err := strconv.Atoi(ttlDays); err == nil && d > 0 {
			config.Cache.TTLDays = d
		}
	}

	// Analysis configuration
	if nlpEnabled := os.Getenv("GAUNTLET_ANALYSIS_NLP_ENABLED"); nlpEnabled != "" {
		if ne, err := strconv.ParseBool(nlpEnabled); err == nil {
			config.Analysis.NLPEnabled = ne
		}
	}
	if candidateLimit := os.Getenv("GAUNTLET_ANALYSIS_CANDIDATE_LIMIT"); candidateLimit != "" {
		if cl, err := strconv.Atoi(candidateLimit); err == nil && cl > 0 {
			config.Analysis.CandidateLimit = cl
		}
	}

	// Rules configuration
	if rulesPath := os.Getenv("GAUNTLET_RULES_PATH"); rulesPath != "" {
		config.Rules.Path = rulesPath
	}

	// Export configuration
	if exportDir := os.Getenv("GAUNTLET_EXPORT_DIR"); exportDir != "" {
		config.Export.Dir = exportDir
	}
	if formats := os.Getenv("GAUNTLET_EXPORT_FORMATS"); formats != "" {
		parsed := []string{}
		for _, f := range strings.Split(formats, ",") {
			trimmed := strings.TrimSpace(f)
			if trimmed != "" {
				parsed = append(parsed, trimmed)
			}
		}
		if len(parsed) > 0 {
			config.Export.Formats = parsed
		}
	}

	// Watchlist configuration
	if tickers := os.Getenv("GAUNTLET_WATCHLIST_TICKERS"); tickers != "" {
		parsed := []string{}
		for _, t := range strings.Split(tickers, ",") {
			trimmed := strings.TrimSpace(t)
			if trimmed != "" {
				parsed = append(parsed, trimmed)
			}
		}
		if len(parsed) > 0 {
			config.Watchlist.Tickers = parsed
		}
	}
	if schedule := os.Getenv("GAUNTLET_WATCHLIST_SCHEDULE"); schedule != "" {
		config.Watchlist.Schedule = schedule
	}
}

// ApplyFlagOverrides applies command-line flag overrides (highest priority)
func ApplyFlagOverrides(config *Config, tickers []string, schedule string, exportDir string) {
	if len(tickers) > 0 {
		config.Watchlist.Tickers = tickers
	}
	if schedule != "" {
		config.Watchlist.Schedule = schedule
	}
	if exportDir != "" {
		config.Export.Dir = exportDir
	}
}

// CacheTTL returns the configured cache expiry as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLDays) * 24 * time.Hour
}
