package formatter

import (
	"fmt"

	"github.com/echenim/bookview/internal/depth"
	md "github.com/echenim/bookview/internal/models"
)

// Options controls how a snapshot is laid out.
type Options struct {
	Pair md.Pair
	// Limit is the number of levels per side; 0 means depth.DefaultLimit.
	Limit int
	// Grouping is echoed into the spread row.
	Grouping string
}

// FormatBook builds the full book table for snap.
//
// Asks accumulate from the bottom of the table (the best ask) upward, bids from
// the top (the best bid) downward. The spread row is only present when both
// sides have levels.
func FormatBook(snap md.Snapshot, opts Options) (md.FormattedBook, error) {
	if opts.Pair == "" {
		opts.Pair = md.PairUSD
	}

	book := md.FormattedBook{
		Market: snap.Market,
		Pair:   opts.Pair,
		Asks:   []md.DisplayRow{},
		Bids:   []md.DisplayRow{},
	}

	if err := snap.Validate(); err != nil {
		return book, err
	}

	if snap.IsEmpty() {
		book.Empty = true
		book.Message = fmt.Sprintf("No data available for %s", opts.Pair)
		return book, nil
	}

	asks := depth.Top(snap.Asks, opts.Limit)
	bids := depth.Top(snap.Bids, opts.Limit)

	book.TotalAskVolume = asks.TotalSize()
	book.TotalBidVolume = bids.TotalSize()
	if !finite(book.TotalAskVolume) || !finite(book.TotalBidVolume) {
		return book, invalid("total volume", book.TotalAskVolume+book.TotalBidVolume)
	}

	askRows, err := CumulativeTotals(asks, opts.Pair, true)
	if err != nil {
		return book, fmt.Errorf("asks: %w", err)
	}
	bidRows, err := CumulativeTotals(bids, opts.Pair, false)
	if err != nil {
		return book, fmt.Errorf("bids: %w", err)
	}

	for _, rows := range [][]md.DisplayRow{askRows, bidRows} {
		applyBarWidths(rows)
		applyText(rows, opts.Pair)
	}
	book.Asks = askRows
	book.Bids = bidRows

	spread, err := SpreadRowFor(asks, bids, opts.Grouping)
	if err != nil {
		return book, err
	}
	book.Spread = spread

	return book, nil
}
