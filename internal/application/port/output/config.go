package output

import "time"

type ConfigPort interface {
	GetWithDefault(key string, defaultValue string) string
	GetBool(key string, defaultValue bool) bool
	GetInt(key string, defaultValue int) int
	GetDuration(key string, defaultValue time.Duration) time.Duration
	GetList(key string, defaultValue []string) []string
}
