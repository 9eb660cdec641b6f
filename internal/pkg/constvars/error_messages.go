package constvars

// Client-facing error messages. These are part of the wire contract and must
// stay stable; the frontend matches on some of them.
const (
	ErrClientValidationFailed   = "Validation failed"
	ErrClientDuplicateValue     = "Duplicate value error"
	ErrClientInvalidIDFormat    = "Invalid ID format"
	ErrClientPageNotFound       = "Page not found."
	ErrClientMethodNotAllowed   = "Method not allowed"
	ErrClientInternalError      = "Internal server error"
	ErrClientInvalidRequestBody = "Invalid request body"

	ErrClientNoTokenProvided = "Authentication failed. No token provided."
	ErrClientTokenExpired    = "Token has expired. Please log in again."
	ErrClientTokenInvalid    = "Authentication failed - Invalid token"
	ErrClientAuthInternal    = "Internal server error during authentication"

	ErrClientInvalidEmailOrPassword = "Invalid email or password"
	ErrClientInvalidCredentials     = "Invalid credentials"
	ErrClientEmailPasswordRequired  = "Email and password are required"

	ErrClientDateParamRequired = "Date parameter is required"
	ErrClientInvalidDateFormat = "Invalid date format"
)

// Developer-facing messages, logged but never sent to clients.
const (
	ErrDevAuthTokenMissing    = "authorization header missing or not using the Bearer scheme"
	ErrDevAuthTokenExpired    = "bearer token expired"
	ErrDevAuthTokenInvalid    = "bearer token failed signature or claim validation"
	ErrDevAuthSigningMethod   = "unexpected token signing method"
	ErrDevAuthGenerateToken   = "failed to sign auth token"
	ErrDevFailedToHashPassword = "failed to hash password"
	ErrDevCannotParseJSON     = "failed to decode request body as JSON"
	ErrDevValidationFailed    = "request failed field validation"

	ErrDevDBFailedToFindDocument     = "failed to find document"
	ErrDevDBFailedToInsertDocument   = "failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "failed to update document"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"
	ErrDevDBStringNotObjectID        = "identifier is not a well-formed ObjectID"
	ErrDevDBDuplicateKey             = "write violated a unique index"
)
