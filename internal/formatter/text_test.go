package formatter

import (
	"testing"

	md "github.com/echenim/bookview/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDisplayText(t *testing.T) {
	assert.Equal(t, "103.00", PriceText(103))
	assert.Equal(t, "0.10", PriceText(0.1))

	assert.Equal(t, "206", SizeText(206, md.PairUSD))
	assert.Equal(t, "1.50", SizeText(1.5, md.PairETH))

	assert.Equal(t, "308", TotalText(308.99, md.PairUSD))
	assert.Equal(t, "3.5", TotalText(3.5, md.PairBTC))
}
