package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Postgres enables the optional write-through persistence sink. The
	// platform runs fully in-memory when this is nil.
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Payment configures the simulated payment processor.
	Payment PaymentConfig `json:"payment" yaml:"payment"`

	// Revenue configures goal targets and the forecast baseline.
	Revenue RevenueConfig `json:"revenue" yaml:"revenue"`

	// Simulation configures the world simulator scheduler.
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`

	// Content configures the catalog content provider.
	Content *ContentConfig `json:"content" yaml:"content"`

	// PubSub configures platform event publishing.
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PaymentConfig defines the simulated payment processor behavior.
type PaymentConfig struct {
	// ProcessingDelay models gateway network latency per attempt.
	ProcessingDelay time.Duration `json:"processingDelay" yaml:"processingDelay"`

	// SuccessRate is the probability a payment attempt settles successfully.
	SuccessRate float64 `json:"successRate" yaml:"successRate"`
}

// RevenueConfig defines revenue goal targets and forecasting inputs.
type RevenueConfig struct {
	MonthlyTarget   float64 `json:"monthlyTarget" yaml:"monthlyTarget"`
	QuarterlyTarget float64 `json:"quarterlyTarget" yaml:"quarterlyTarget"`
	YearlyTarget    float64 `json:"yearlyTarget" yaml:"yearlyTarget"`

	// Baseline seeds the historical period series so forecasts are
	// available on a fresh process.
	Baseline []float64 `json:"baseline" yaml:"baseline"`
}

// SimulationConfig defines the scheduler intervals and generator bounds.
type SimulationConfig struct {
	// Seed fixes the random source; 0 draws a crypto seed at startup.
	Seed int64 `json:"seed" yaml:"seed"`

	JobInterval     time.Duration `json:"jobInterval" yaml:"jobInterval"`         // Job board generation tick.
	JobTTL          time.Duration `json:"jobTtl" yaml:"jobTtl"`                   // Acceptance TTL for generated jobs.
	JobsPerTick     int           `json:"jobsPerTick" yaml:"jobsPerTick"`         // Jobs generated per tick.
	DriftInterval   time.Duration `json:"driftInterval" yaml:"driftInterval"`     // Black market price drift tick.
	MarketTTL       time.Duration `json:"marketTtl" yaml:"marketTtl"`             // Black market listing TTL.
	TrafficInterval time.Duration `json:"trafficInterval" yaml:"trafficInterval"` // Trade route traffic tick.
	RunInterval     time.Duration `json:"runInterval" yaml:"runInterval"`         // Smuggling run launch tick.
	MinResolveDelay time.Duration `json:"minResolveDelay" yaml:"minResolveDelay"` // Lower bound on deferred run resolution.
	MaxResolveDelay time.Duration `json:"maxResolveDelay" yaml:"maxResolveDelay"` // Upper bound on deferred run resolution.
}

// ContentConfig defines the catalog content provider selection.
type ContentConfig struct {
	// Provider type: "builtin" for static catalogs or "remote" for the
	// external lore service with builtin fallback.
	Provider string `json:"provider" yaml:"provider"`

	// BaseURL of the remote lore service (for remote provider).
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// Timeout per remote catalog request.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing.
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub.
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider).
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider).
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider).
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf, then overlays environment
// variables whose names canonicalize onto existing YAML keys.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: PAYMENT_SUCCESSRATE -> payment.successRate
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// New loads the platform configuration and applies defaults for the
// simulation knobs that must never be zero.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Payment.ProcessingDelay <= 0 {
		cfg.Payment.ProcessingDelay = 100 * time.Millisecond
	}
	if cfg.Payment.SuccessRate <= 0 || cfg.Payment.SuccessRate > 1 {
		cfg.Payment.SuccessRate = 0.95
	}
	if cfg.Simulation.JobInterval <= 0 {
		cfg.Simulation.JobInterval = 45 * time.Second
	}
	if cfg.Simulation.JobTTL <= 0 {
		cfg.Simulation.JobTTL = 10 * time.Minute
	}
	if cfg.Simulation.JobsPerTick <= 0 {
		cfg.Simulation.JobsPerTick = 3
	}
	if cfg.Simulation.DriftInterval <= 0 {
		cfg.Simulation.DriftInterval = 90 * time.Second
	}
	if cfg.Simulation.MarketTTL <= 0 {
		cfg.Simulation.MarketTTL = 30 * time.Minute
	}
	if cfg.Simulation.TrafficInterval <= 0 {
		cfg.Simulation.TrafficInterval = 60 * time.Second
	}
	if cfg.Simulation.RunInterval <= 0 {
		cfg.Simulation.RunInterval = 2 * time.Minute
	}
	if cfg.Simulation.MinResolveDelay <= 0 {
		cfg.Simulation.MinResolveDelay = 30 * time.Second
	}
	if cfg.Simulation.MaxResolveDelay <= cfg.Simulation.MinResolveDelay {
		cfg.Simulation.MaxResolveDelay = cfg.Simulation.MinResolveDelay + 2*time.Minute
	}
	if cfg.Revenue.MonthlyTarget <= 0 {
		cfg.Revenue.MonthlyTarget = 100000
	}
	if cfg.Revenue.QuarterlyTarget <= 0 {
		cfg.Revenue.QuarterlyTarget = 3 * cfg.Revenue.MonthlyTarget
	}
	if cfg.Revenue.YearlyTarget <= 0 {
		cfg.Revenue.YearlyTarget = 12 * cfg.Revenue.MonthlyTarget
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(token string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(token) {
		if r == '-' || r == '_' || r == '.' {
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}
