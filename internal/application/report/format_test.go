package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "R$ 0,00"},
		{"9.9", "R$ 9,90"},
		{"1234.56", "R$ 1.234,56"},
		{"1234567.89", "R$ 1.234.567,89"},
		{"100", "R$ 100,00"},
		{"1000", "R$ 1.000,00"},
		{"-1234.5", "-R$ 1.234,50"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBRL(dec(tt.in)), "entrada %s", tt.in)
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "66,7%", FormatPercent(66.666))
	assert.Equal(t, "0,0%", FormatPercent(0))
	assert.Equal(t, "100,0%", FormatPercent(100))
	assert.Equal(t, "23,9%", FormatPercent(23.9))
}

func TestFormatDateBR(t *testing.T) {
	assert.Equal(t, "02/03/2025", FormatDateBR("2025-03-02"))

	// Valores fora do formato ISO passam sem alteração.
	assert.Equal(t, "15/03/2025", FormatDateBR("15/03/2025"))
	assert.Equal(t, "", FormatDateBR(""))
}
