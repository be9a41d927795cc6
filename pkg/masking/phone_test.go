package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{"e164", "+5511987654321", "***4321"},
		{"formatted", "+55 (11) 98765-4321", "***4321"},
		{"bare digits", "5511987654321", "***4321"},
		{"too short", "123", "***"},
		{"exactly four digits", "4321", "***"},
		{"empty", "", "***"},
		{"garbage", "not-a-phone", "***"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Phone(tt.phone))
		})
	}
}
