package model

import "math"

// Bounds holds the extrema of a set of entries. A fresh value has minima at
// +Inf and maxima at -Inf, which callers read as "no data".
type Bounds struct {
	XMin float64 `json:"x_min"`
	XMax float64 `json:"x_max"`
	YMin float64 `json:"y_min"`
	YMax float64 `json:"y_max"`
}

func NewBounds() Bounds {
	b := Bounds{}
	b.Reset()
	return b
}

func (b *Bounds) Reset() {
	b.ResetX()
	b.ResetY()
}

func (b *Bounds) ResetX() {
	b.XMin, b.XMax = math.Inf(1), math.Inf(-1)
}

func (b *Bounds) ResetY() {
	b.YMin, b.YMax = math.Inf(1), math.Inf(-1)
}

func (b *Bounds) Include(e *Entry) {
	if e == nil {
		return
	}
	b.IncludeX(e)
	b.IncludeY(e)
}

func (b *Bounds) IncludeX(e *Entry) {
	if e.X < b.XMin {
		b.XMin = e.X
	}
	if e.X > b.XMax {
		b.XMax = e.X
	}
}

func (b *Bounds) IncludeY(e *Entry) {
	if e.Y < b.YMin {
		b.YMin = e.Y
	}
	if e.Y > b.YMax {
		b.YMax = e.Y
	}
}

func (b Bounds) Empty() bool {
	return b.XMin > b.XMax
}

// XBounds is the window of entry indices visible on screen.
type XBounds struct {
	Min   int `json:"min"`
	Max   int `json:"max"`
	Range int `json:"range"`
}
