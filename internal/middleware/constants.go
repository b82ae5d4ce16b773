package middleware

// Response messages
const (
	ErrMsgInvalidToken    = "Invalid token"
	ErrMsgNotAuthorized   = "Authentication credentials were not provided"
	ContentTypeJSON       = "application/json"
	HeaderContentType     = "Content-Type"
	HeaderWWWAuthenticate = "WWW-Authenticate"
)

// Log messages
const (
	LogMsgTokenRejected  = "Rejected authentication token"
	LogMsgMalformedToken = "Malformed Authorization header"
)
