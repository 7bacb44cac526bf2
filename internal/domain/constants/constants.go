package constants

// Pub/Sub provider names accepted in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

// Cache provider names accepted in configuration.
const (
	CacheProviderRedis = "redis"
)

// UncategorizedLabel groups products without a category on the storefront.
const UncategorizedLabel = "All Products"
