package formatter

import (
	"math"

	md "github.com/echenim/bookview/internal/models"
)

// QuoteSize expresses size in the quote currency. For USD the size is turned
// into dollar notional at price and truncated toward zero; any other pair is
// already size-denominated and is returned as is.
func QuoteSize(size, price float64, pair md.Pair) (float64, error) {
	v := size
	if pair.IsUSD() {
		v = math.Trunc(size * price)
	}
	if !finite(v) {
		return 0, invalid("size in quote", v)
	}
	return v, nil
}
