package redis

const (
	keyPrefix        = "ws:"
	rateKeyPrefix    = keyPrefix + "rate:"
	rateLimitPrefix  = keyPrefix + "ratelimit:"
	notificationsKey = keyPrefix + "notifications"
)
