// Package masking keeps subscriber phone numbers out of logs and stored
// trace rows. Maskers are defensive: on anything unexpected they return
// a fully masked value rather than leaking the input.
package masking

import "strings"

// visibleSuffix is how many trailing digits stay readable. Enough to
// correlate a row with a support ticket, not enough to dial.
const visibleSuffix = 4

// Phone masks a phone number to "***" plus its last four digits.
// Shorter inputs mask entirely.
func Phone(phone string) string {
	digits := digitsOf(phone)
	if len(digits) <= visibleSuffix {
		return "***"
	}
	return "***" + digits[len(digits)-visibleSuffix:]
}

// digitsOf strips everything but digits.
func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
