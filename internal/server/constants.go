package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "⚠️ SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "⚠️ SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting      = "Server starting"
	LogMsgRequestStarted      = "Request started"
	LogMsgRequestCompleted    = "Request completed"
	LogMsgRequestHeaders      = "Request headers"
	LogMsgAuthFailed          = "Authentication failed"
	LogMsgInvalidTrustedProxy = "Ignoring invalid trusted proxy entry"
)

// HTTP header names
const (
	HeaderAuthorization  = "Authorization"
	HeaderCookie         = "Cookie"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Paths skipped by the request logger
var QuietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)

// Limits
const (
	// MaxRequestBodyBytes leaves room for a base64 encoded image of media.MaxImageBytes
	MaxRequestBodyBytes = 15 << 20

	FailedAuthAlertThreshold = 5
	DetectorRequestLimit     = 1000
	DetectorWindow           = 5 * time.Minute
	ReadHeaderTimeout        = 5 * time.Second
	CORSMaxAge               = 300
	MediaRoutePrefix         = "/media/"
)
