package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waflow/waflow/pkg/models"
)

func positionalSpec(body string) Spec {
	return Spec{
		Name:            "promo_offer",
		Language:        "pt_BR",
		ParameterFormat: models.ParameterPositional,
		Components: []models.TemplateComponent{
			{Type: "BODY", Text: body},
		},
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"already e164", "+5511987654321", "+5511987654321"},
		{"formatted", "+55 (11) 98765-4321", "+5511987654321"},
		{"bare digits", "5511987654321", "+5511987654321"},
		{"double zero prefix", "005511987654321", "+5511987654321"},
		{"too short", "12345", ""},
		{"too long", "12345678901234567", ""},
		{"empty", "", ""},
		{"letters", "call-me-maybe", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.raw))
		})
	}
}

func TestRequiredVariables(t *testing.T) {
	spec := positionalSpec("Olá {{1}}, sua oferta: {{2}} até {{3}}. {{1}} de novo.")
	assert.Equal(t, []string{"1", "2", "3"}, RequiredVariables(spec))

	named := Spec{
		ParameterFormat: models.ParameterNamed,
		Components: []models.TemplateComponent{
			{Type: "HEADER", Format: "TEXT", Text: "Oi {{first_name}}"},
			{Type: "BODY", Text: "Seu pedido {{order_id}} saiu. Até logo, {{first_name}}."},
		},
	}
	assert.Equal(t, []string{"first_name", "order_id"}, RequiredVariables(named))
}

func TestPrecheckOK(t *testing.T) {
	contact := Contact{Name: "Ana", Phone: "+55 11 98765-4321", Email: "ana@example.com"}
	spec := positionalSpec("Olá {{1}}, código {{2}}.")
	bindings := map[string]string{"1": "contact.name", "2": "WELCOME10"}

	res := Precheck(contact, spec, bindings)
	require.True(t, res.OK)
	assert.Equal(t, "+5511987654321", res.NormalizedPhone)
	assert.Regexp(t, `^\+\d{8,15}$`, res.NormalizedPhone)
}

func TestPrecheckInvalidPhone(t *testing.T) {
	res := Precheck(Contact{Phone: "123"}, positionalSpec("Oi {{1}}"), map[string]string{"1": "x"})
	assert.False(t, res.OK)
	assert.Equal(t, SkipInvalidPhone, res.SkipCode)
}

func TestPrecheckMissingVariables(t *testing.T) {
	// Three required, only two bound: missing must name exactly the third.
	contact := Contact{Name: "Ana", Phone: "+5511987654321"}
	spec := positionalSpec("{{1}} {{2}} {{3}}")
	bindings := map[string]string{"1": "contact.name", "2": "literal"}

	res := Precheck(contact, spec, bindings)
	assert.False(t, res.OK)
	assert.Equal(t, SkipMissingVariables, res.SkipCode)
	assert.Equal(t, []string{"3"}, res.Missing)
}

func TestPrecheckUnresolvableBinding(t *testing.T) {
	// Bound to an empty contact field counts as missing.
	contact := Contact{Phone: "+5511987654321"} // no name
	spec := positionalSpec("Oi {{1}}")
	res := Precheck(contact, spec, map[string]string{"1": "contact.name"})
	assert.False(t, res.OK)
	assert.Equal(t, []string{"1"}, res.Missing)
}

func TestResolveBinding(t *testing.T) {
	contact := Contact{
		Name:  "Ana",
		Phone: "+5511987654321",
		CustomFields: map[string]interface{}{
			"city":  "São Paulo",
			"score": 42,
		},
	}

	v, ok := ResolveBinding("contact.name", contact)
	assert.True(t, ok)
	assert.Equal(t, "Ana", v)

	v, ok = ResolveBinding("custom_fields.city", contact)
	assert.True(t, ok)
	assert.Equal(t, "São Paulo", v)

	v, ok = ResolveBinding("custom_fields.score", contact)
	assert.True(t, ok)
	assert.Equal(t, "42", v)

	_, ok = ResolveBinding("custom_fields.absent", contact)
	assert.False(t, ok)

	v, ok = ResolveBinding("plain literal", contact)
	assert.True(t, ok)
	assert.Equal(t, "plain literal", v)
}

func TestSubstitute(t *testing.T) {
	vars := map[string]interface{}{"nome": "Ana", "n": 3}
	assert.Equal(t, "Olá, Ana.", Substitute("Olá, {{nome}}.", vars))
	assert.Equal(t, "3 itens", Substitute("{{n}} itens", vars))
	assert.Equal(t, "Olá, {{quem}}.", Substitute("Olá, {{quem}}.", vars), "unknown keys stay visible")
	assert.Equal(t, "Olá, Ana.", Substitute("Olá, {{ nome }}.", vars), "whitespace inside braces is tolerated")
}
