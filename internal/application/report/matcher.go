package report

import "strings"

// FilterAll é o valor sentinela de "sem filtro" vindo da UI.
const FilterAll = "Todos"

// IsAll informa se o valor de filtro não restringe nada.
func IsAll(filter string) bool {
	f := normalizeTerm(filter)
	return f == "" || f == strings.ToLower(FilterAll)
}

func normalizeTerm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// MatchesClient decide se um filtro de cliente casa com o valor do registro.
// A regra é deliberadamente permissiva: além de igualdade normalizada,
// qualquer uma das strings pode conter a outra. Isso tolera variações de
// pontuação e nomes parciais, ao custo de sobre-casar substrings curtas —
// risco aceito, não defeito a corrigir.
func MatchesClient(filter, value string) bool {
	if IsAll(filter) {
		return true
	}
	f := normalizeTerm(filter)
	v := normalizeTerm(value)
	return f == v || strings.Contains(v, f) || strings.Contains(f, v)
}

// MatchesPayment decide se um filtro de método de pagamento casa com o valor
// do registro. Diferente do filtro de cliente, aqui a comparação é igualdade
// estrita (normalizada), sem substring.
func MatchesPayment(filter, value string) bool {
	if IsAll(filter) {
		return true
	}
	return normalizeTerm(filter) == normalizeTerm(value)
}
