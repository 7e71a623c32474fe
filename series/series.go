package series

import (
	"fmt"
	"slices"
	"strings"

	"github.com/uyouii/chart-series/model"
	"github.com/uyouii/chart-series/utils"
)

// Index is an ordered collection of entries for one chart series together
// with the cached extrema of those entries.
//
// Every search assumes the entries are sorted by ascending X. InsertOrdered
// keeps that order; AppendUnordered and ReplaceAll trust the caller. Searching
// unsorted data returns a wrong index but never panics.
//
// Index is not safe for concurrent use.
type Index struct {
	label   string
	entries []*model.Entry
	bounds  model.Bounds
}

func NewIndex(entries []*model.Entry, label string) *Index {
	if label == "" {
		label = getDefaultLabel()
	}
	idx := &Index{
		label:  label,
		bounds: model.NewBounds(),
	}
	idx.ReplaceAll(entries)
	return idx
}

func (idx *Index) Label() string {
	return idx.label
}

func (idx *Index) SetLabel(label string) {
	idx.label = label
}

func (idx *Index) Count() int {
	return len(idx.entries)
}

// EntryAt returns the entry at i, or false when i is out of range.
func (idx *Index) EntryAt(i int) (*model.Entry, bool) {
	if i < 0 || i >= len(idx.entries) {
		return nil, false
	}
	return idx.entries[i], true
}

// Entries returns a copy of the entry slice.
func (idx *Index) Entries() []*model.Entry {
	return slices.Clone(idx.entries)
}

// IndexOf returns the position of e compared by identity, or NotFound.
func (idx *Index) IndexOf(e *model.Entry) int {
	if e == nil {
		return NotFound
	}
	return slices.Index(idx.entries, e)
}

// ReplaceAll swaps in a new set of entries and recomputes the bounds.
// nil entries are dropped.
func (idx *Index) ReplaceAll(entries []*model.Entry) {
	idx.entries = make([]*model.Entry, 0, len(entries))
	for _, e := range entries {
		if e != nil {
			idx.entries = append(idx.entries, e)
		}
	}
	idx.RecomputeBounds()
}

// InsertOrdered adds e at the position that keeps the entries sorted by X.
func (idx *Index) InsertOrdered(e *model.Entry) {
	if e == nil {
		return
	}

	idx.bounds.Include(e)

	n := len(idx.entries)
	if n > 0 && idx.entries[n-1].X > e.X {
		pos := idx.IndexOfNearestX(e.X, e.Y, model.RoundingUp)
		// the y hint may land inside a run of larger x, step back to its start
		for pos > 0 && idx.entries[pos-1].X > e.X {
			pos--
		}
		idx.entries = slices.Insert(idx.entries, pos, e)
		return
	}
	idx.entries = append(idx.entries, e)
}

// AppendUnordered adds e to the tail without checking the X order.
// It reports false only for a nil entry.
func (idx *Index) AppendUnordered(e *model.Entry) bool {
	if e == nil {
		return false
	}
	idx.bounds.Include(e)
	idx.entries = append(idx.entries, e)
	return true
}

// RemoveEntry removes the first occurrence of e and recomputes the bounds.
func (idx *Index) RemoveEntry(e *model.Entry) bool {
	i := idx.IndexOf(e)
	if i == NotFound {
		return false
	}
	idx.entries = slices.Delete(idx.entries, i, i+1)
	idx.RecomputeBounds()
	return true
}

// Clear drops every entry and resets the bounds to "no data".
func (idx *Index) Clear() {
	idx.entries = nil
	idx.bounds.Reset()
}

// Copy returns an index with copies of every entry, the same label and the
// same cached bounds.
func (idx *Index) Copy() *Index {
	c := &Index{
		label:   idx.label,
		entries: make([]*model.Entry, len(idx.entries)),
		bounds:  idx.bounds,
	}
	for i, e := range idx.entries {
		c.entries[i] = e.Copy()
	}
	return c
}

// DebugString is SimpleString followed by every entry.
func (idx *Index) DebugString() string {
	var sb strings.Builder
	sb.WriteString(idx.SimpleString())
	for _, e := range idx.entries {
		sb.WriteString("\n")
		sb.WriteString(e.String())
	}
	return sb.String()
}

// SimpleString summarises the label, the entry count and the bounds.
func (idx *Index) SimpleString() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("label: %v, entries: %v", idx.label, len(idx.entries)))
	if !idx.bounds.Empty() {
		sb.WriteString(fmt.Sprintf(", x: [%v, %v], y: [%v, %v]",
			utils.FormatFloat(idx.bounds.XMin, debugStringPrecision),
			utils.FormatFloat(idx.bounds.XMax, debugStringPrecision),
			utils.FormatFloat(idx.bounds.YMin, debugStringPrecision),
			utils.FormatFloat(idx.bounds.YMax, debugStringPrecision)))
	}
	return sb.String()
}
