package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Codec signs opaque values so tampering is detectable without encryption.
// The secret comes from configuration and is fixed for the process lifetime.
type Codec struct {
	secret []byte
}

// NewCodec creates a Codec keyed by secret.
func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Sign returns "value|mac" where mac is an HMAC-SHA256 over value.
func (c *Codec) Sign(value string) string {
	return value + "|" + c.mac(value)
}

// Verify splits a signed value, recomputes the mac and returns the inner
// value only when the signature checks out.
func (c *Codec) Verify(signed string) (string, bool) {
	value, mac, ok := strings.Cut(signed, "|")
	if !ok {
		return "", false
	}
	if !hmac.Equal([]byte(mac), []byte(c.mac(value))) {
		return "", false
	}
	return value, true
}

func (c *Codec) mac(value string) string {
	h := hmac.New(sha256.New, c.secret)
	h.Write([]byte(value))
	return hex.EncodeToString(h.Sum(nil))
}
