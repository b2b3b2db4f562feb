package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatting(t *testing.T) {
	assert.Equal(t, "0", FormatThousands(0))
	assert.Equal(t, "999", FormatThousands(999))
	assert.Equal(t, "28,934", FormatThousands(28934))
	assert.Equal(t, "4,393,000", FormatThousands(4393000))
	assert.Equal(t, "-1,500", FormatThousands(-1500))
	assert.Equal(t, "Rp 599,000", FormatRupiah(599000))
	assert.Equal(t, "Rp 23.9Jt", FormatRupiahJuta(23850000, 1))
	assert.Equal(t, "Rp 23.85Jt", FormatRupiahJuta(23850000, 2))
	assert.Equal(t, "Rp 507K", FormatRupiahK(507000))
	assert.Equal(t, "98.5%", FormatPercent(98.5))
}
