// Package signature computes the tamper-evident signature printed on payment
// request QR codes.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// DefaultSecret is used when the application secret is not configured.
const DefaultSecret = "default-insecure-key"

// Signer signs messages with HMAC-SHA256 under a fixed secret
type Signer struct {
	secret []byte
}

// NewSigner returns a Signer for secret, or for DefaultSecret when secret is empty
func NewSigner(secret string) *Signer {
	if secret == "" {
		secret = DefaultSecret
	}
	return &Signer{secret: []byte(secret)}
}

// Sign returns the lowercase hex HMAC-SHA256 of message
func (s *Signer) Sign(message string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether sig is the signature of message
func (s *Signer) Verify(message, sig string) bool {
	expected, err := hex.DecodeString(sig)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(message))
	return hmac.Equal(mac.Sum(nil), expected)
}
