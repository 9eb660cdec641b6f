package constvars

// ContextKey is the private key type for request-scoped context values.
type ContextKey string

const (
	ContextRequestIDKey  ContextKey = "requestID"
	ContextAuthClaimsKey ContextKey = "authClaims"
)
