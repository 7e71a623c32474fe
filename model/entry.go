package model

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Entry is a single point of a series. Entries are compared by identity,
// so two entries with the same X and Y are still distinct.
type Entry struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Data any     `json:"data,omitempty"`

	// stacked values, nil for a plain entry
	YVals       []float64 `json:"y_vals,omitempty"`
	Ranges      []Range   `json:"ranges,omitempty"`
	PositiveSum float64   `json:"positive_sum,omitempty"`
	NegativeSum float64   `json:"negative_sum,omitempty"` // absolute value
}

// Range is the span one stack segment covers on the y axis.
type Range struct {
	From float64 `json:"from"`
	To   float64 `json:"to"`
}

func (r Range) Contains(value float64) bool {
	return value > r.From && value <= r.To
}

func NewEntry(x, y float64) *Entry {
	return &Entry{X: x, Y: y}
}

func NewEntryWithData(x, y float64, data any) *Entry {
	return &Entry{X: x, Y: y, Data: data}
}

// NewStackedEntry builds an entry whose Y is the sum of vals.
func NewStackedEntry(x float64, vals []float64, data any) *Entry {
	e := &Entry{X: x, Data: data}
	e.SetVals(vals)
	return e
}

func (e *Entry) IsStacked() bool {
	return e.YVals != nil
}

// SetVals replaces the stack values and refreshes Y, the sums and the ranges.
func (e *Entry) SetVals(vals []float64) {
	e.YVals = vals
	e.Y = 0
	if vals != nil {
		e.Y = floats.Sum(vals)
	}
	e.calcPosNegSum()
	e.calcRanges()
}

// SumBelow returns the sum of the stack values stored after stackIndex.
func (e *Entry) SumBelow(stackIndex int) float64 {
	if e.YVals == nil {
		return 0
	}

	var remainder float64
	for i := len(e.YVals) - 1; i > stackIndex && i >= 0; i-- {
		remainder += e.YVals[i]
	}
	return remainder
}

func (e *Entry) calcPosNegSum() {
	e.PositiveSum, e.NegativeSum = 0, 0
	for _, v := range e.YVals {
		if v <= 0 {
			e.NegativeSum += math.Abs(v)
		} else {
			e.PositiveSum += v
		}
	}
}

func (e *Entry) calcRanges() {
	e.Ranges = nil
	if len(e.YVals) == 0 {
		return
	}

	e.Ranges = make([]Range, len(e.YVals))
	negRemain := -e.NegativeSum
	posRemain := 0.0

	for i, v := range e.YVals {
		if v < 0 {
			e.Ranges[i] = Range{From: negRemain, To: negRemain - v}
			negRemain -= v
		} else {
			e.Ranges[i] = Range{From: posRemain, To: posRemain + v}
			posRemain += v
		}
	}
}

// Copy returns a new entry with the same coordinates, payload and stack.
func (e *Entry) Copy() *Entry {
	c := &Entry{X: e.X, Y: e.Y, Data: e.Data}
	if e.YVals != nil {
		c.SetVals(append([]float64{}, e.YVals...))
	}
	return c
}

func (e *Entry) String() string {
	return fmt.Sprintf("Entry, x: %v y: %v", e.X, e.Y)
}
