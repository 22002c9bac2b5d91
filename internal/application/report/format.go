package report

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatBRL formata um valor monetário no padrão brasileiro: "R$ 1.234,56".
// A formatação opera sobre a representação decimal exata, dígito a dígito,
// para que tela e exportações mostrem exatamente o mesmo número.
func FormatBRL(d decimal.Decimal) string {
	fixed := d.StringFixed(2)

	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString("R$ ")
	b.WriteString(groupThousands(intPart))
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatPercent formata um percentual com uma casa: "66,7%".
func FormatPercent(pct float64) string {
	s := decimal.NewFromFloat(pct).StringFixed(1)
	return strings.ReplaceAll(s, ".", ",") + "%"
}

// FormatDateBR converte uma data ISO para dd/mm/aaaa; valores que não
// parseiam (já formatados ou livres) passam adiante sem alteração.
func FormatDateBR(value string) string {
	if t, err := time.Parse(isoDate, value); err == nil {
		return t.Format(brDate)
	}
	return value
}
