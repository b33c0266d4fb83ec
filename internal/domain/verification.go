package domain

// VerificationCode is a single outstanding email OTP challenge.
// PK: email — one row per address, so issuing a new code atomically
// replaces the previous one. ExpiresAt doubles as the DynamoDB TTL.
type VerificationCode struct {
	Email     string `json:"email" dynamodbav:"email"`
	Code      string `json:"code" dynamodbav:"code"`
	ExpiresAt int64  `json:"expires_at" dynamodbav:"expires_at"` // TTL (Unix seconds)
	IssuedAt  int64  `json:"issued_at" dynamodbav:"issued_at"`
	Verified  bool   `json:"verified" dynamodbav:"verified"`
}

// RequestCodeInput is the body of the send-verification-code endpoint.
type RequestCodeInput struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"fullName"`
}

// RedeemCodeInput is the body of the verify-code endpoint.
type RedeemCodeInput struct {
	Email string `json:"email" validate:"required"`
	Code  string `json:"code" validate:"required"`
}

// RedeemResult is the outcome of a redemption attempt. Incorrect, expired
// and already-used codes are results, not errors — the HTTP contract carries
// them in a 200 body.
type RedeemResult struct {
	Valid  bool
	Reason string // empty when Valid
}

// Redemption failure reasons surfaced to the client.
const (
	ReasonIncorrect   = "incorrect code"
	ReasonExpired     = "code expired"
	ReasonAlreadyUsed = "code already used"
)
