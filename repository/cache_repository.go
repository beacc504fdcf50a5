package repository

// CacheRepository caches serialized calculation results by key.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
