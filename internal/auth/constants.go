package auth

import "time"

// Token settings
const (
	Issuer              = "foodgram"
	DefaultTokenTTL     = 7 * 24 * time.Hour
	MaxRevokedTokens    = 100_000
	SchemeToken         = "Token"
	SchemeBearer        = "Bearer"
	HeaderAuthorization = "Authorization"
)

// Error messages
const (
	ErrMsgEmptySigningKey = "JWT signing key cannot be empty"
	ErrMsgSignFailed      = "failed to sign token: %w"
)

// Log messages
const (
	LogMsgTokenExpired   = "Token has expired"
	LogMsgTokenInvalid   = "Invalid token format or signature"
	LogMsgTokenRevoked   = "Rejected revoked token"
	LogMsgUnexpectedAlgo = "Unexpected signing method"
)
