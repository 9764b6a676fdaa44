package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Event bus providers
const (
	PubSubProviderNone   = "none"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

// Status cache providers
const (
	CacheProviderMemory = "memory"
	CacheProviderRedis  = "redis"
)

// Real-time event names emitted to dashboard clients.
const (
	EventNewAdminNotification = "newAdminNotification"
	EventNotificationUpdated  = "notificationUpdated"
)

// Worker trigger types carried in push messages.
const (
	TriggerDeriveShippingMissing = "deriveShippingMissing"
)
