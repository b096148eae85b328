package entities

import (
	"encoding/json"
	"fmt"
)

// GatewayErrorKind classifies a failed gateway call.
type GatewayErrorKind string

const (
	GatewayErrMissingCredential GatewayErrorKind = "missing_credential"
	GatewayErrInvalidRequest    GatewayErrorKind = "invalid_request"
	GatewayErrUpstream          GatewayErrorKind = "upstream"
	GatewayErrTransport         GatewayErrorKind = "transport"
)

// GatewayResponse is a successful gateway reply. Body is kept verbatim so
// handlers can relay it; Payment is a best-effort parse of it.
type GatewayResponse struct {
	StatusCode int
	Body       json.RawMessage
	Payment    Payment
}

// GatewayError carries what the caller needs to tell a rejection from an
// unreachable gateway: the upstream status and body, or the attempted URL.
type GatewayError struct {
	Kind       GatewayErrorKind
	StatusCode int
	Body       json.RawMessage
	URL        string
	Err        error
}

func (e *GatewayError) Error() string {
	switch e.Kind {
	case GatewayErrUpstream:
		return fmt.Sprintf("payment gateway returned status %d: %s", e.StatusCode, string(e.Body))
	case GatewayErrTransport:
		return fmt.Sprintf("payment gateway unreachable url=%s: %v", e.URL, e.Err)
	case GatewayErrMissingCredential:
		return "payment gateway credential not configured"
	default:
		if e.Err != nil {
			return fmt.Sprintf("payment gateway invalid request: %v", e.Err)
		}
		return "payment gateway invalid request"
	}
}

func (e *GatewayError) Unwrap() error { return e.Err }

// WalletSession is an authenticated wallet user.
type WalletSession struct {
	UID         string `json:"uid"`
	Username    string `json:"username,omitempty"`
	AccessToken string `json:"-"`
}
