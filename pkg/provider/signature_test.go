package provider

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	secret := "app-secret"
	body := []byte(`{"object":"whatsapp_business_account"}`)

	assert.True(t, VerifySignature(secret, body, sign(secret, body)))
	assert.False(t, VerifySignature(secret, body, sign("other-secret", body)))
	assert.False(t, VerifySignature(secret, body, "sha256=zz-not-hex"))
	assert.False(t, VerifySignature(secret, body, "md5=abc"))
	assert.False(t, VerifySignature(secret, body, ""))

	// No secret configured: verification is disabled, not failing.
	assert.True(t, VerifySignature("", body, ""))
	assert.True(t, VerifySignature("", body, "sha256=whatever"))
}
