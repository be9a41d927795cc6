package provider

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// signaturePrefix is the scheme tag the provider puts in front of the
// hex digest in X-Hub-Signature-256.
const signaturePrefix = "sha256="

// VerifySignature checks a webhook body against the X-Hub-Signature-256
// header using the app secret. An empty secret disables verification and
// returns true.
func (c *Client) VerifySignature(body []byte, header string) bool {
	return VerifySignature(c.cfg.AppSecret, body, header)
}

// VerifySignature is the package-level form used by tests and by callers
// that hold the secret directly.
func VerifySignature(appSecret string, body []byte, header string) bool {
	if appSecret == "" {
		return true
	}
	if !strings.HasPrefix(header, signaturePrefix) {
		return false
	}
	want, err := hex.DecodeString(strings.TrimPrefix(header, signaturePrefix))
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(appSecret))
	mac.Write(body)
	return hmac.Equal(mac.Sum(nil), want)
}
