package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultMaxProducts     = 50
	defaultMaxServices     = 20
	defaultCurrencySymbol  = "₦"
	defaultSignature       = "Sent via WhatsOrder"
	defaultIdentityCookie  = "sb-access-token"
	defaultIdentityTimeout = 5 * time.Second
	defaultCacheTTL        = 5 * time.Minute
	defaultMaxUploadSize   = 5 << 20
	defaultQRCodeSize      = 256
	defaultPublicBaseURL   = "http://localhost:3000"
)

// Persistence drivers.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Identity providers.
const (
	IdentityProviderSupabase = "supabase"
	IdentityProviderJWT      = "jwt"
	IdentityProviderGoogle   = "google"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// AllowOrigins is passed to the CORS middleware; empty allows all.
		AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts     struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Persistence *PersistenceConfig `json:"persistence" yaml:"persistence"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Identity *IdentityConfig `json:"identity" yaml:"identity"`

	Catalog *CatalogConfig `json:"catalog" yaml:"catalog"`

	Orders *OrdersConfig `json:"orders" yaml:"orders"`

	Storefront *StorefrontConfig `json:"storefront" yaml:"storefront"`

	// Cache configuration for public storefront snapshots
	Cache *CacheConfig `json:"cache" yaml:"cache"`

	// PubSub configuration for order events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for storefront share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PersistenceConfig selects the repository adapter.
type PersistenceConfig struct {
	// Driver is "postgres" or "memory"
	Driver string `json:"driver" yaml:"driver"`

	// AutoMigrate creates or updates tables on startup (postgres only)
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	// SlowQueryThreshold marks queries logged at warn level; zero disables it
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// IdentityConfig configures how bearer credentials are verified.
type IdentityConfig struct {
	// Provider is "supabase", "jwt" or "google"
	Provider string `json:"provider" yaml:"provider"`

	// ProjectURL is the identity provider base URL (supabase provider)
	ProjectURL string `json:"projectUrl" yaml:"projectUrl"`

	// APIKey is sent as the apikey header (supabase provider)
	APIKey string `json:"apiKey" yaml:"apiKey"`

	// JWTSecret verifies HS256 access tokens (jwt provider)
	JWTSecret string `json:"jwtSecret" yaml:"jwtSecret"`

	// Audience is checked when set (jwt provider) and required for the google provider
	Audience string `json:"audience" yaml:"audience"`

	// CookieName is the fallback cookie carrying the access token
	CookieName string `json:"cookieName" yaml:"cookieName"`

	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// CatalogConfig holds per-tenant catalog caps.
type CatalogConfig struct {
	MaxProducts int `json:"maxProducts" yaml:"maxProducts"`
	MaxServices int `json:"maxServices" yaml:"maxServices"`
}

// OrdersConfig configures the public order log endpoint.
type OrdersConfig struct {
	// VerifyBusiness rejects orders whose business id does not exist
	VerifyBusiness bool `json:"verifyBusiness" yaml:"verifyBusiness"`

	// RateLimit is requests per second per client IP; zero disables limiting
	RateLimit float64 `json:"rateLimit" yaml:"rateLimit"`
	Burst     int     `json:"burst" yaml:"burst"`
}

// StorefrontConfig configures the composed WhatsApp order message.
type StorefrontConfig struct {
	CurrencySymbol string `json:"currencySymbol" yaml:"currencySymbol"`
	Signature      string `json:"signature" yaml:"signature"`

	// PublicBaseURL is where storefront pages are served, e.g. https://whatsorder.app
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
}

// CacheConfig defines the storefront cache backend.
type CacheConfig struct {
	// Provider is "redis"; empty disables caching
	Provider string        `json:"provider" yaml:"provider"`
	Address  string        `json:"address" yaml:"address"`
	Username string        `json:"username" yaml:"username"`
	Password string        `json:"password" yaml:"password"`
	DB       int           `json:"db" yaml:"db"`
	PoolSize int           `json:"poolSize" yaml:"poolSize"`
	TTL      time.Duration `json:"ttl" yaml:"ttl"`

	DialTimeout  time.Duration `json:"dialTimeout" yaml:"dialTimeout"`
	ReadTimeout  time.Duration `json:"readTimeout" yaml:"readTimeout"`
	WriteTimeout time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
	MaxRetries   int           `json:"maxRetries" yaml:"maxRetries"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local", "google" or "kafka"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Topic ID (google and kafka providers)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Kafka bootstrap brokers (for kafka provider)
	Brokers []string `json:"brokers" yaml:"brokers"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// StorageConfig defines the object bucket used for uploaded images.
type StorageConfig struct {
	// BucketURL is a gocloud.dev/blob URL such as mem://, file:///var/uploads or gs://bucket
	BucketURL     string `json:"bucketUrl" yaml:"bucketUrl"`
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
	MaxUploadSize int64  `json:"maxUploadSize" yaml:"maxUploadSize"`
}

type MetricsConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(searchPaths, currEnv+".yaml")
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// POSTGRES_SSLMODE -> postgres.sslMode, aligned with the keys already present in YAML.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(searchPaths []string, name string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if cfg.Persistence.Driver == DriverPostgres && cfg.Postgres == nil {
		return nil, errors.New("postgres configuration is required for the postgres driver")
	}

	return cfg, nil
}

// ApplyDefaults fills every optional section so callers can dereference them.
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Persistence == nil {
		cfg.Persistence = &PersistenceConfig{}
	}
	if cfg.Persistence.Driver == "" {
		cfg.Persistence.Driver = DriverPostgres
	}

	if cfg.Identity == nil {
		cfg.Identity = &IdentityConfig{}
	}
	if cfg.Identity.Provider == "" {
		cfg.Identity.Provider = IdentityProviderSupabase
	}
	if cfg.Identity.CookieName == "" {
		cfg.Identity.CookieName = defaultIdentityCookie
	}
	if cfg.Identity.Timeout <= 0 {
		cfg.Identity.Timeout = defaultIdentityTimeout
	}

	if cfg.Catalog == nil {
		cfg.Catalog = &CatalogConfig{}
	}
	if cfg.Catalog.MaxProducts <= 0 {
		cfg.Catalog.MaxProducts = defaultMaxProducts
	}
	if cfg.Catalog.MaxServices <= 0 {
		cfg.Catalog.MaxServices = defaultMaxServices
	}

	if cfg.Orders == nil {
		cfg.Orders = &OrdersConfig{}
	}
	if cfg.Orders.RateLimit > 0 && cfg.Orders.Burst <= 0 {
		cfg.Orders.Burst = int(cfg.Orders.RateLimit) + 1
	}

	if cfg.Storefront == nil {
		cfg.Storefront = &StorefrontConfig{}
	}
	if cfg.Storefront.CurrencySymbol == "" {
		cfg.Storefront.CurrencySymbol = defaultCurrencySymbol
	}
	if cfg.Storefront.Signature == "" {
		cfg.Storefront.Signature = defaultSignature
	}
	cfg.Storefront.PublicBaseURL = strings.TrimRight(cfg.Storefront.PublicBaseURL, "/")
	if cfg.Storefront.PublicBaseURL == "" {
		cfg.Storefront.PublicBaseURL = defaultPublicBaseURL
	}

	if cfg.Cache != nil && cfg.Cache.TTL <= 0 {
		cfg.Cache.TTL = defaultCacheTTL
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = defaultQRCodeSize
	}

	if cfg.Storage != nil {
		if cfg.Storage.MaxUploadSize <= 0 {
			cfg.Storage.MaxUploadSize = defaultMaxUploadSize
		}
		cfg.Storage.PublicBaseURL = strings.TrimRight(cfg.Storage.PublicBaseURL, "/")
	}

	if cfg.Metrics == nil {
		cfg.Metrics = &MetricsConfig{}
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

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}
// until the first index without a host or port.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
