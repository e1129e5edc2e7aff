package models

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidLevel is returned when a snapshot carries a level that can not be
// formatted: non-finite values, a non-positive price or a negative size.
var ErrInvalidLevel = errors.New("invalid price level")

// Snapshot is one refresh of the book as supplied by the market-data side.
type Snapshot struct {
	Market    Market    `json:"market,omitempty"`
	Asks      Levels    `json:"asks"`
	Bids      Levels    `json:"bids"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// Validate checks every level on both sides.
func (s Snapshot) Validate() error {
	if err := validateSide("ask", s.Asks); err != nil {
		return err
	}
	return validateSide("bid", s.Bids)
}

// IsEmpty reports whether both sides are empty.
func (s Snapshot) IsEmpty() bool {
	return len(s.Asks) == 0 && len(s.Bids) == 0
}

func (s Snapshot) BidTotalVolume() float64 { return s.Bids.TotalSize() }
func (s Snapshot) AskTotalVolume() float64 { return s.Asks.TotalSize() }

// Clone deep-copies both sides.
func (s Snapshot) Clone() Snapshot {
	s.Asks = s.Asks.Clone()
	s.Bids = s.Bids.Clone()
	return s
}

func validateSide(side string, levels Levels) error {
	for i, lvl := range levels {
		switch {
		case math.IsNaN(lvl.Price) || math.IsInf(lvl.Price, 0):
			return fmt.Errorf("%s %d: price %v is not finite: %w", side, i, lvl.Price, ErrInvalidLevel)
		case math.IsNaN(lvl.Size) || math.IsInf(lvl.Size, 0):
			return fmt.Errorf("%s %d: size %v is not finite: %w", side, i, lvl.Size, ErrInvalidLevel)
		case lvl.Price <= 0:
			return fmt.Errorf("%s %d: price %v must be positive: %w", side, i, lvl.Price, ErrInvalidLevel)
		case lvl.Size < 0:
			return fmt.Errorf("%s %d: size %v must not be negative: %w", side, i, lvl.Size, ErrInvalidLevel)
		}
	}
	return nil
}
