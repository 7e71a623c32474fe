package series

import (
	"math"

	"github.com/uyouii/chart-series/model"
)

func nan() float64 {
	return math.NaN()
}

// IndexOfNearestX returns the index of the entry whose X is nearest to
// xValue, adjusted by rounding. When closestToY is not NaN, the entry with the
// nearest Y among all entries sharing the resolved X is returned instead.
// The result is NotFound for an empty index.
func (idx *Index) IndexOfNearestX(xValue, closestToY float64, rounding model.Rounding) int {
	entries := idx.entries
	if len(entries) == 0 {
		return NotFound
	}

	low, high := 0, len(entries)-1
	for low < high {
		m := low + (high-low)/2

		d1 := entries[m].X - xValue
		d2 := entries[m+1].X - xValue
		ad1, ad2 := math.Abs(d1), math.Abs(d2)

		switch {
		case ad2 < ad1:
			low = m + 1
		case ad1 < ad2:
			high = m
		case d1 >= 0:
			// equal distance, entry m is at or past the target
			high = m
		default:
			low = m + 1
		}
	}
	closest := high

	closestX := entries[closest].X
	switch rounding {
	case model.RoundingUp:
		if closestX < xValue && closest < len(entries)-1 {
			closest++
		}
	case model.RoundingDown:
		if closestX > xValue && closest > 0 {
			closest--
		}
	}

	if math.IsNaN(closestToY) {
		return closest
	}

	closestX = entries[closest].X
	for closest > 0 && entries[closest-1].X == closestX {
		closest--
	}

	bestIndex := closest
	bestDist := math.Abs(entries[closest].Y - closestToY)
	for i := closest + 1; i < len(entries) && entries[i].X == closestX; i++ {
		if d := math.Abs(entries[i].Y - closestToY); d < bestDist {
			bestIndex, bestDist = i, d
		}
	}
	return bestIndex
}

// EntryForXValue is IndexOfNearestX returning the entry itself.
func (idx *Index) EntryForXValue(xValue, closestToY float64, rounding model.Rounding) (*model.Entry, bool) {
	return idx.EntryAt(idx.IndexOfNearestX(xValue, closestToY, rounding))
}

// EntriesWithExactX returns every entry whose X equals xValue, in index
// order. Equality is bit exact: a value that differs in the last ulp is a
// different key.
func (idx *Index) EntriesWithExactX(xValue float64) []*model.Entry {
	entries := idx.entries
	res := []*model.Entry{}

	low, high := 0, len(entries)-1
	for low <= high {
		m := low + (high-low)/2
		x := entries[m].X

		if x == xValue {
			for m > 0 && entries[m-1].X == xValue {
				m--
			}
			for ; m < len(entries) && entries[m].X == xValue; m++ {
				res = append(res, entries[m])
			}
			break
		}

		if xValue > x {
			low = m + 1
		} else {
			high = m - 1
		}
	}
	return res
}
