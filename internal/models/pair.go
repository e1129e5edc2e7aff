package models

import (
	"fmt"
	"strings"
)

type Market string

// Pair is the quote currency sizes and totals are displayed in.
type Pair string

const (
	PairUSD Pair = "USD"
	PairETH Pair = "ETH"
	PairBTC Pair = "BTC"
)

var pairs = []Pair{PairUSD, PairETH, PairBTC}

// ParsePair accepts any casing of a known pair. An empty string selects USD.
func ParsePair(s string) (Pair, error) {
	if strings.TrimSpace(s) == "" {
		return PairUSD, nil
	}
	p := Pair(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range pairs {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown pair %q", s)
}

// IsUSD reports whether sizes are converted into dollar notional.
func (p Pair) IsUSD() bool {
	return strings.EqualFold(string(p), string(PairUSD))
}

func (p Pair) String() string {
	return string(p)
}
