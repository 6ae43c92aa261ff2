package constants

// Redis key formats
const (
	// Activity Service
	KeyPingHistory = "pings:%s:%s:%s" // Format: pings:{user_id}:{device_id}:{date}

	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{identifier}
)
