package series

import "github.com/uyouii/chart-series/model"

func (idx *Index) XMin() float64 { return idx.bounds.XMin }
func (idx *Index) XMax() float64 { return idx.bounds.XMax }
func (idx *Index) YMin() float64 { return idx.bounds.YMin }
func (idx *Index) YMax() float64 { return idx.bounds.YMax }

func (idx *Index) Bounds() model.Bounds {
	return idx.bounds
}

// RecomputeBounds rebuilds all four extrema from scratch.
func (idx *Index) RecomputeBounds() {
	idx.bounds.Reset()
	for _, e := range idx.entries {
		idx.bounds.Include(e)
	}
}

// RecomputeYBoundsInRange rebuilds only the y extrema, using the entries from
// the DOWN-rounded index of fromX to the UP-rounded index of toX. The x
// extrema are left alone. An inverted index window leaves the bounds as they are.
func (idx *Index) RecomputeYBoundsInRange(fromX, toX float64) {
	if len(idx.entries) == 0 {
		idx.bounds.ResetY()
		return
	}

	from := idx.IndexOfNearestX(fromX, nan(), model.RoundingDown)
	to := idx.IndexOfNearestX(toX, nan(), model.RoundingUp)
	if to < from {
		return
	}

	idx.bounds.ResetY()
	for i := from; i <= to; i++ {
		idx.bounds.IncludeY(idx.entries[i])
	}
}
