package provider

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorClass is the closed taxonomy every layer above the provider client
// branches on. Raw provider error shapes never escape this package.
type ErrorClass string

// Error classes.
const (
	ClassOK             ErrorClass = "ok"
	ClassRateLimited    ErrorClass = "rate_limited"
	ClassMediaExpired   ErrorClass = "media_expired"
	ClassPolicyRejected ErrorClass = "policy_rejected"
	ClassTransient      ErrorClass = "transient"
	ClassAuth           ErrorClass = "auth"
	ClassPermanent      ErrorClass = "permanent"
)

// Error is a classified provider failure. Code and Subcode are the
// provider's numeric error identifiers; Raw preserves the body for traces.
type Error struct {
	Class   ErrorClass
	Code    int
	Subcode int
	Message string
	Raw     json.RawMessage
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("provider error (%s, code %d)", e.Class, e.Code)
	}
	return fmt.Sprintf("provider error (%s, code %d): %s", e.Class, e.Code, e.Message)
}

// ClassOf extracts the error class from any error chain. Non-provider
// errors classify as transient — the safe default for retry policy.
func ClassOf(err error) ErrorClass {
	if err == nil {
		return ClassOK
	}
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Class
	}
	return ClassTransient
}

// apiErrorEnvelope is the provider's error body shape.
type apiErrorEnvelope struct {
	Error apiError `json:"error"`
}

type apiError struct {
	Message   string `json:"message"`
	Type      string `json:"type"`
	Code      int    `json:"code"`
	Subcode   int    `json:"error_subcode"`
	ErrorData struct {
		Details string `json:"details"`
	} `json:"error_data"`
}

// Rate-pacing error codes: account or pair throughput exceeded.
var rateLimitCodes = map[int]bool{
	4:      true, // API too many calls
	80007:  true, // WABA rate limit
	130429: true, // cloud API throughput
	131048: true, // spam rate limit
	131056: true, // pair rate limit
}

// Template/policy failures the sender cannot retry into success.
var policyCodes = map[int]bool{
	368:    true, // temporarily blocked for policy violations
	131047: true, // re-engagement window closed
	131049: true, // per-user marketing limit
	132000: true, // template param count mismatch... provider-side rejection
	132001: true, // template does not exist
	132005: true, // template hydrated text too long
	132007: true, // template format policy
	132012: true, // template parameter format mismatch
	132015: true, // template paused (quality)
	132016: true, // template disabled
}

// Hard failures that no retry or rehost can fix.
var permanentCodes = map[int]bool{
	100:    true, // malformed parameter
	131008: true, // required parameter missing
	131009: true, // parameter value invalid
	131021: true, // recipient equals sender
	131026: true, // message undeliverable / unknown recipient
}

// Media staleness: the provider refused a header media URL or handle.
var mediaCodes = map[int]bool{
	131052: true, // media download error
	131053: true, // media upload error
}

// classify maps an HTTP status plus decoded provider error onto the
// taxonomy. It is the only place raw provider codes are interpreted.
func classify(httpStatus int, apiErr *apiError, raw []byte) *Error {
	e := &Error{Raw: raw}
	if apiErr != nil {
		e.Code = apiErr.Code
		e.Subcode = apiErr.Subcode
		e.Message = apiErr.Message
		if apiErr.ErrorData.Details != "" {
			e.Message = e.Message + ": " + apiErr.ErrorData.Details
		}
	}

	switch {
	case apiErr != nil && rateLimitCodes[apiErr.Code]:
		e.Class = ClassRateLimited
	case apiErr != nil && mediaCodes[apiErr.Code]:
		e.Class = ClassMediaExpired
	case apiErr != nil && isStaleMediaMessage(apiErr):
		// 403/weblink failures on header media surface as a generic code
		// with a tell-tale message.
		e.Class = ClassMediaExpired
	case apiErr != nil && policyCodes[apiErr.Code]:
		e.Class = ClassPolicyRejected
	case httpStatus == http.StatusUnauthorized,
		apiErr != nil && apiErr.Code == 190,
		apiErr != nil && apiErr.Type == "OAuthException" && httpStatus == http.StatusForbidden:
		e.Class = ClassAuth
	case apiErr != nil && permanentCodes[apiErr.Code]:
		e.Class = ClassPermanent
	case httpStatus >= 500, httpStatus == http.StatusTooManyRequests && apiErr == nil:
		e.Class = ClassTransient
	case httpStatus >= 400 && httpStatus < 500:
		e.Class = ClassPermanent
	default:
		e.Class = ClassTransient
	}
	return e
}

func isStaleMediaMessage(apiErr *apiError) bool {
	msg := strings.ToLower(apiErr.Message + " " + apiErr.ErrorData.Details)
	if strings.Contains(msg, "weblink") {
		return true
	}
	return strings.Contains(msg, "media") &&
		(strings.Contains(msg, "expire") || strings.Contains(msg, "403") || strings.Contains(msg, "unable to download"))
}
