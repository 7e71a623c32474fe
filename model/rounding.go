package model

// Rounding selects which neighbour a nearest-x lookup settles on when the
// target falls between two entries.
type Rounding int

const (
	RoundingUp Rounding = iota
	RoundingDown
	RoundingClosest
)

func (r Rounding) String() string {
	switch r {
	case RoundingUp:
		return "up"
	case RoundingDown:
		return "down"
	case RoundingClosest:
		return "closest"
	}
	return "unknown"
}
