package constvars

const (
	MethodGet     = "GET"
	MethodPost    = "POST"
	MethodPatch   = "PATCH"
	MethodDelete  = "DELETE"
	MethodOptions = "OPTIONS"
)

const (
	MIMEApplicationJSON = "application/json"

	HeaderContentType         = "Content-Type"
	HeaderAuthorization       = "Authorization"
	HeaderXRequestID          = "X-Request-ID"
	HeaderXContentTypeOptions = "X-Content-Type-Options"
	HeaderXFrameOptions       = "X-Frame-Options"
	HeaderReferrerPolicy      = "Referrer-Policy"

	AuthSchemeBearer = "Bearer "
)

const (
	StatusOK      = 200
	StatusCreated = 201

	StatusBadRequest       = 400
	StatusUnauthorized     = 401
	StatusNotFound         = 404
	StatusMethodNotAllowed = 405
	StatusConflict         = 409

	StatusInternalServerError = 500
	StatusGatewayTimeout      = 504
)
