package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath        = "."
	defaultStoragePath = "data/shamba.db"
)

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

	// Storage configures the on-device preference store.
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Backend configures the mock backend adapter.
	Backend *BackendConfig `json:"backend" yaml:"backend"`

	// Preferences holds the defaults applied before the store is read.
	Preferences *PreferencesConfig `json:"preferences" yaml:"preferences"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StorageConfig defines where the secure key-value store lives.
type StorageConfig struct {
	// Path is the SQLite file path; ":memory:" keeps the store in RAM.
	Path string `json:"path" yaml:"path"`
}

// BackendConfig defines the mock backend's simulated behavior.
type BackendConfig struct {
	// AuthLatency is the simulated delay for login/signup/reset calls.
	AuthLatency time.Duration `json:"authLatency" yaml:"authLatency"`
	// FetchLatency is the simulated delay for catalog/weather/order reads.
	FetchLatency time.Duration `json:"fetchLatency" yaml:"fetchLatency"`
	// DiagnosisLatency is the simulated delay for image analysis.
	DiagnosisLatency time.Duration `json:"diagnosisLatency" yaml:"diagnosisLatency"`
	// Seed seeds the fixture picker; 0 means time-based.
	Seed int64 `json:"seed" yaml:"seed"`
	// TokenSecret signs the mock session tokens.
	TokenSecret string `json:"tokenSecret" yaml:"tokenSecret"`
	// TokenTTL bounds the mock session token lifetime.
	TokenTTL time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
}

// PreferencesConfig defines the defaults used until loaded from the store.
type PreferencesConfig struct {
	DefaultLanguage string `json:"defaultLanguage" yaml:"defaultLanguage"`
	DefaultTheme    string `json:"defaultTheme" yaml:"defaultTheme"`
}

// LoadWithEnv loads .yaml files through koanf.
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
			// Example: BACKEND_TOKENSECRET -> backend.tokenSecret (not backend.tokensecret)
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

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if strings.TrimSpace(cfg.Storage.Path) == "" {
		cfg.Storage.Path = defaultStoragePath
	}

	if cfg.Backend == nil {
		cfg.Backend = &BackendConfig{}
	}
	if cfg.Backend.TokenTTL <= 0 {
		cfg.Backend.TokenTTL = 24 * time.Hour
	}

	if cfg.Preferences == nil {
		cfg.Preferences = &PreferencesConfig{}
	}
	if cfg.Preferences.DefaultLanguage == "" {
		cfg.Preferences.DefaultLanguage = "en"
	}
	if cfg.Preferences.DefaultTheme == "" {
		cfg.Preferences.DefaultTheme = "light"
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

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
