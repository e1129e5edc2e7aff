package models

// PriceLevel is the aggregated resting size at one price.
type PriceLevel struct {
	Price float64 `json:"px"`
	Size  float64 `json:"sz"`
}

type Levels []PriceLevel

// Clone returns a copy that shares no backing array with l.
func (l Levels) Clone() Levels {
	if l == nil {
		return nil
	}
	out := make(Levels, len(l))
	copy(out, l)
	return out
}

// TotalSize sums the raw sizes of all levels.
func (l Levels) TotalSize() float64 {
	total := 0.0

	for i := 0; i < len(l); i++ {
		total += l[i].Size
	}

	return total
}
