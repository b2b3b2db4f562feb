package dashboard

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatThousands renders n with comma separators: 28934 -> "28,934".
func FormatThousands(n int64) string {
	negative := n < 0
	if negative {
		n = -n
	}
	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatRupiah renders a full amount: 599000 -> "Rp 599,000".
func FormatRupiah(amount int64) string {
	return "Rp " + FormatThousands(amount)
}

// FormatRupiahJuta renders millions: (23850000, 1) -> "Rp 23.9Jt".
func FormatRupiahJuta(amount int64, decimals int) string {
	return fmt.Sprintf("Rp %.*fJt", decimals, float64(amount)/1_000_000)
}

// FormatRupiahK renders thousands: 507000 -> "Rp 507K".
func FormatRupiahK(amount int64) string {
	return fmt.Sprintf("Rp %sK", FormatThousands(amount/1000))
}

// FormatPercent renders a percentage with one decimal: 98.5 -> "98.5%".
func FormatPercent(value float64) string {
	return formatFloat(value, 1) + "%"
}

func formatFloat(value float64, decimals int) string {
	return strconv.FormatFloat(value, 'f', decimals, 64)
}

func toString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
