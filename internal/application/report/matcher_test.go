package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAll(t *testing.T) {
	assert.True(t, IsAll(""))
	assert.True(t, IsAll("Todos"))
	assert.True(t, IsAll("todos"))
	assert.True(t, IsAll("  TODOS  "))
	assert.False(t, IsAll("João"))
}

func TestMatchesClient(t *testing.T) {
	tests := []struct {
		name   string
		filter string
		value  string
		want   bool
	}{
		{"sentinela casa com tudo", "Todos", "Mercearia Central", true},
		{"igualdade normalizada", "  MERCEARIA CENTRAL ", "Mercearia Central", true},
		{"filtro contido no valor", "central", "Mercearia Central", true},
		{"valor contido no filtro", "Mercearia Central Ltda", "Mercearia Central", true},
		{"sem relação", "Padaria do Zé", "Mercearia Central", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesClient(tt.filter, tt.value))
		})
	}
}

func TestMatchesPaymentStrict(t *testing.T) {
	assert.True(t, MatchesPayment("Todos", "Pix"))
	assert.True(t, MatchesPayment("pix", "Pix"))
	assert.True(t, MatchesPayment(" Dinheiro ", "dinheiro"))

	// Diferente do filtro de cliente, substring não casa.
	assert.False(t, MatchesPayment("Pix", "Pix Agendado"))
	assert.False(t, MatchesPayment("Cartão", "Cartão de Crédito"))
}
