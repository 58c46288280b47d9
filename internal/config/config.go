package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"explorergen/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Source     SourceConfig
	Output     OutputConfig
	Generation GenerationConfig
	Server     ServerConfig
	Params     ParamsConfig
}

// SourceConfig selects where dimension sheets are read from
type SourceConfig struct {
	Driver  string // gsheets | workbook
	Dir     string // workbook root directory
	Format  string // csv | json, gsheets only
	Timeout time.Duration
	BaseURL string
}

// OutputConfig selects where generated explorers are written
type OutputConfig struct {
	Driver    string // file | s3
	Dir       string
	Bucket    string
	Prefix    string
	Region    string
	Endpoint  string
	PathStyle bool
	// Static credentials; empty uses the AWS default chain.
	AccessKeyID     string
	SecretAccessKey string
}

// GenerationConfig holds run settings
type GenerationConfig struct {
	Parallelism int
	Explorers   []string
	MetricsFile string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// ParamsConfig overrides the shared explorer constants. Zero values keep the
// built-in defaults.
type ParamsConfig struct {
	Tolerance         int `yaml:"tolerance"`
	ConsumptionSpells int `yaml:"consumption_spells"`
	IncomeSpells      int `yaml:"income_spells"`
	MapTargetTime     int `yaml:"map_target_time"`
}

// fileConfig is the shape of the optional YAML file.
type fileConfig struct {
	Params    ParamsConfig `yaml:"params"`
	Explorers []string     `yaml:"explorers"`
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Source:     *loadSourceConfig(),
		Output:     *loadOutputConfig(),
		Generation: *loadGenerationConfig(),
		Server:     *loadServerConfig(),
	}

	if path := os.Getenv("EXPLORERGEN_CONFIG"); path != "" {
		fc, err := loadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load configuration file")
		}
		config.Params = fc.Params
		if len(config.Generation.Explorers) == 0 {
			config.Generation.Explorers = fc.Explorers
		}
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithCode(errors.CodeConfigInvalid, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, errors.Wrapf(errors.WithCode(errors.CodeConfigInvalid, err), "parsing %s", path)
	}
	return &fc, nil
}

func loadSourceConfig() *SourceConfig {
	return &SourceConfig{
		Driver:  getEnvOrDefault("SOURCE_DRIVER", "gsheets"),
		Dir:     getEnvOrDefault("SOURCE_DIR", "./sheets"),
		Format:  getEnvOrDefault("SOURCE_FORMAT", "csv"),
		Timeout: getEnvDurationOrDefault("SOURCE_TIMEOUT", 30*time.Second),
		BaseURL: getEnvOrDefault("SOURCE_BASE_URL", "https://docs.google.com"),
	}
}

func loadOutputConfig() *OutputConfig {
	return &OutputConfig{
		Driver:    getEnvOrDefault("OUTPUT_DRIVER", "file"),
		Dir:       getEnvOrDefault("OUTPUT_DIR", "."),
		Bucket:    getEnvOrDefault("OUTPUT_S3_BUCKET", ""),
		Prefix:    getEnvOrDefault("OUTPUT_S3_PREFIX", "explorers"),
		Region:    getEnvOrDefault("OUTPUT_S3_REGION", "us-east-1"),
		Endpoint:  getEnvOrDefault("OUTPUT_S3_ENDPOINT", ""),
		PathStyle: getEnvBoolOrDefault("OUTPUT_S3_PATH_STYLE", false),

		AccessKeyID:     getEnvOrDefault("OUTPUT_S3_ACCESS_KEY_ID", ""),
		SecretAccessKey: getEnvOrDefault("OUTPUT_S3_SECRET_ACCESS_KEY", ""),
	}
}

func loadGenerationConfig() *GenerationConfig {
	return &GenerationConfig{
		Parallelism: getEnvIntOrDefault("GENERATION_PARALLELISM", 4),
		Explorers:   getEnvListOrDefault("EXPLORERS", nil),
		MetricsFile: getEnvOrDefault("METRICS_FILE", ""),
	}
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port: getEnvOrDefault("PORT", "8080"),
	}
}

func validateConfig(config *Config) error {
	switch config.Source.Driver {
	case "gsheets":
		if config.Source.Format != "csv" && config.Source.Format != "json" {
			return errors.ConfigInvalid("SOURCE_FORMAT must be csv or json")
		}
	case "workbook":
		if config.Source.Dir == "" {
			return errors.ConfigInvalid("SOURCE_DIR is required for the workbook driver")
		}
	default:
		return errors.ConfigInvalid("unknown SOURCE_DRIVER " + strconv.Quote(config.Source.Driver))
	}
	switch config.Output.Driver {
	case "file":
	case "s3":
		if config.Output.Bucket == "" {
			return errors.ConfigInvalid("OUTPUT_S3_BUCKET is required for the s3 driver")
		}
	default:
		return errors.ConfigInvalid("unknown OUTPUT_DRIVER " + strconv.Quote(config.Output.Driver))
	}
	if config.Generation.Parallelism < 1 {
		return errors.ConfigInvalid("GENERATION_PARALLELISM must be positive")
	}
	p := config.Params
	if p.Tolerance < 0 || p.ConsumptionSpells < 0 || p.IncomeSpells < 0 {
		return errors.ConfigInvalid("params must not be negative")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
