package models

// DisplayRow is a price level annotated for the book table.
type DisplayRow struct {
	PriceLevel
	SizeInQuote float64 `json:"sizeInQuote"`
	Total       float64 `json:"total"`
	BarWidth    float64 `json:"barWidth"`

	PriceText string `json:"priceText"`
	SizeText  string `json:"sizeText"`
	TotalText string `json:"totalText"`
}

// SpreadRow sits between the ask and bid tables.
type SpreadRow struct {
	Grouping   string  `json:"grouping"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
	Crossed    bool    `json:"crossed"`
}

type FormattedBook struct {
	Market  Market       `json:"market,omitempty"`
	Pair    Pair         `json:"pair"`
	Asks    []DisplayRow `json:"asks"`
	Bids    []DisplayRow `json:"bids"`
	Spread  *SpreadRow   `json:"spread,omitempty"`
	Empty   bool         `json:"empty"`
	Message string       `json:"message,omitempty"`

	// Raw base-size volume of the rows shown on each side.
	TotalBidVolume float64 `json:"totalBidVolume"`
	TotalAskVolume float64 `json:"totalAskVolume"`
}

type APIError struct {
	Error string `json:"error"`
}
