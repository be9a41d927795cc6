// Package template implements per-contact pre-flight validation of
// template sends (phone normalization plus variable binding resolution)
// and the reactive rehost of header media the provider rejected as stale.
package template

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/waflow/waflow/pkg/models"
)

// Skip codes precheck maps onto the contact row's skipped state.
const (
	SkipInvalidPhone     = "invalid_phone"
	SkipMissingVariables = "missing_variables"
	SkipTemplateNotFound = "template_not_found"
	SkipCancelled        = "cancelled"
)

// e164Pattern is the accepted normalized form: + followed by 8-15 digits.
var e164Pattern = regexp.MustCompile(`^\+\d{8,15}$`)

// varPattern matches {{1}} / {{first_name}} placeholders in component text.
var varPattern = regexp.MustCompile(`\{\{\s*([0-9]+|[A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

// Spec is the precheck view of a registered template: just enough to know
// which variables a send must bind and what media the header carries.
type Spec struct {
	Name            string
	Language        string
	ParameterFormat models.ParameterFormat
	Components      []models.TemplateComponent
}

// Contact is the per-recipient input to precheck.
type Contact struct {
	ContactID    string
	Name         string
	Phone        string
	Email        string
	CustomFields map[string]interface{}
}

// Result is the precheck outcome for one contact.
type Result struct {
	OK              bool
	NormalizedPhone string
	SkipCode        string
	Reason          string
	Missing         []string
}

// NormalizePhone reduces a raw phone to E.164. It strips formatting,
// converts a 00 international prefix to +, and prepends + when absent.
// The empty string is returned when the result is not a valid number.
func NormalizePhone(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	d = strings.TrimPrefix(d, "00")
	if d == "" {
		return ""
	}
	normalized := "+" + d
	if !e164Pattern.MatchString(normalized) {
		return ""
	}
	return normalized
}

// RequiredVariables lists the variables a template's text components
// reference, positional numbers first in numeric order, named variables
// in order of appearance.
func RequiredVariables(spec Spec) []string {
	seen := make(map[string]bool)
	var named []string
	var positional []int

	for _, comp := range spec.Components {
		for _, match := range varPattern.FindAllStringSubmatch(comp.Text, -1) {
			key := match[1]
			if seen[key] {
				continue
			}
			seen[key] = true
			if n, err := strconv.Atoi(key); err == nil {
				positional = append(positional, n)
			} else {
				named = append(named, key)
			}
		}
	}

	sort.Ints(positional)
	out := make([]string, 0, len(positional)+len(named))
	for _, n := range positional {
		out = append(out, strconv.Itoa(n))
	}
	return append(out, named...)
}

// ResolveBinding resolves one variable binding against a contact.
// Bindings are either field references ("contact.name", "custom_fields.city")
// or literals. The second return reports whether resolution produced a
// non-empty value.
func ResolveBinding(binding string, contact Contact) (string, bool) {
	switch {
	case strings.HasPrefix(binding, "contact."):
		field := strings.TrimPrefix(binding, "contact.")
		var v string
		switch field {
		case "name":
			v = contact.Name
		case "phone":
			v = contact.Phone
		case "email":
			v = contact.Email
		}
		return v, v != ""
	case strings.HasPrefix(binding, "custom_fields."):
		key := strings.TrimPrefix(binding, "custom_fields.")
		raw, ok := contact.CustomFields[key]
		if !ok || raw == nil {
			return "", false
		}
		v := fmt.Sprint(raw)
		return v, v != ""
	default:
		return binding, binding != ""
	}
}

// Precheck validates one contact against a template and its variable
// bindings. A failed result carries the skip code and reason the
// dispatcher writes straight onto the contact row.
func Precheck(contact Contact, spec Spec, bindings map[string]string) Result {
	phone := NormalizePhone(contact.Phone)
	if phone == "" {
		return Result{
			SkipCode: SkipInvalidPhone,
			Reason:   fmt.Sprintf("phone %q does not normalize to E.164", contact.Phone),
		}
	}

	var missing []string
	for _, key := range RequiredVariables(spec) {
		binding, bound := bindings[key]
		if !bound {
			missing = append(missing, key)
			continue
		}
		if _, ok := ResolveBinding(binding, contact); !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return Result{
			SkipCode: SkipMissingVariables,
			Reason:   "unresolved template variables: " + strings.Join(missing, ", "),
			Missing:  missing,
		}
	}

	return Result{OK: true, NormalizedPhone: phone}
}

// ResolveAll resolves every binding for a contact into concrete values.
// Callers run Precheck first; unresolved bindings resolve to "".
func ResolveAll(contact Contact, bindings map[string]string) map[string]string {
	out := make(map[string]string, len(bindings))
	for key, binding := range bindings {
		v, _ := ResolveBinding(binding, contact)
		out[key] = v
	}
	return out
}
