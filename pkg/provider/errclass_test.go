package provider

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		status int
		err    *apiError
		want   ErrorClass
	}{
		{"throughput exceeded", http.StatusBadRequest, &apiError{Code: 130429, Message: "Rate limit hit"}, ClassRateLimited},
		{"pair rate limit", http.StatusBadRequest, &apiError{Code: 131056, Message: "Pair rate limit hit"}, ClassRateLimited},
		{"spam rate", http.StatusBadRequest, &apiError{Code: 131048, Message: "Spam rate limit hit"}, ClassRateLimited},
		{"media download", http.StatusBadRequest, &apiError{Code: 131052, Message: "Media download error"}, ClassMediaExpired},
		{"stale weblink", http.StatusBadRequest, &apiError{Code: 131000, Message: "Failed to download media from weblink"}, ClassMediaExpired},
		{"expired media message", http.StatusBadRequest, &apiError{Code: 131000, Message: "media url has expired"}, ClassMediaExpired},
		{"template missing", http.StatusNotFound, &apiError{Code: 132001, Message: "Template name does not exist"}, ClassPolicyRejected},
		{"template paused", http.StatusBadRequest, &apiError{Code: 132015, Message: "Template is paused"}, ClassPolicyRejected},
		{"re-engagement window", http.StatusBadRequest, &apiError{Code: 131047, Message: "Re-engagement message"}, ClassPolicyRejected},
		{"expired token", http.StatusUnauthorized, &apiError{Code: 190, Message: "Access token has expired"}, ClassAuth},
		{"bare 401", http.StatusUnauthorized, nil, ClassAuth},
		{"malformed param", http.StatusBadRequest, &apiError{Code: 100, Message: "Invalid parameter"}, ClassPermanent},
		{"undeliverable", http.StatusBadRequest, &apiError{Code: 131026, Message: "Message undeliverable"}, ClassPermanent},
		{"server error", http.StatusInternalServerError, nil, ClassTransient},
		{"bad gateway", http.StatusBadGateway, nil, ClassTransient},
		{"unknown 4xx", http.StatusBadRequest, nil, ClassPermanent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.status, tt.err, nil)
			assert.Equal(t, tt.want, got.Class)
		})
	}
}

func TestClassOf(t *testing.T) {
	assert.Equal(t, ClassOK, ClassOf(nil))
	assert.Equal(t, ClassRateLimited, ClassOf(&Error{Class: ClassRateLimited}))
	assert.Equal(t, ClassAuth, ClassOf(fmt.Errorf("wrapped: %w", &Error{Class: ClassAuth})))
	assert.Equal(t, ClassTransient, ClassOf(errors.New("dial tcp: timeout")))
}

func TestDecodeError(t *testing.T) {
	body := []byte(`{"error":{"message":"(#130429) Rate limit hit","type":"OAuthException","code":130429,"error_data":{"details":"Cloud API message throughput has been reached."}}}`)
	perr := decodeError(http.StatusBadRequest, body)
	assert.Equal(t, ClassRateLimited, perr.Class)
	assert.Equal(t, 130429, perr.Code)
	assert.Contains(t, perr.Message, "throughput")

	perr = decodeError(http.StatusServiceUnavailable, []byte("upstream unavailable"))
	assert.Equal(t, ClassTransient, perr.Class)
}
