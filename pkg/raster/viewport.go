package raster

// Viewport tracks the visible terminal area and fans out resize
// notifications to the surfaces that follow it.
type Viewport struct {
	cols, rows   int
	cellW, cellH int

	nextID      int
	subscribers map[int]func(cols, rows int)
	order       []int
}

// NewViewport creates a viewport of the given cell size. Non-positive cell
// pixel sizes fall back to the defaults.
func NewViewport(cols, rows, cellW, cellH int) *Viewport {
	if cellW <= 0 {
		cellW = DefaultCellW
	}
	if cellH <= 0 {
		cellH = DefaultCellH
	}
	return &Viewport{
		cols:        cols,
		rows:        rows,
		cellW:       cellW,
		cellH:       cellH,
		subscribers: make(map[int]func(cols, rows int)),
	}
}

// Size returns the current size in cells.
func (v *Viewport) Size() (cols, rows int) {
	return v.cols, v.rows
}

// CellSize returns the unit size of one cell.
func (v *Viewport) CellSize() (w, h int) {
	return v.cellW, v.cellH
}

// Center returns the midpoint of the viewport in surface units.
func (v *Viewport) Center() (x, y float64) {
	return float64(v.cols*v.cellW) / 2, float64(v.rows*v.cellH) / 2
}

// NewSurface returns a surface matching the viewport's current geometry.
func (v *Viewport) NewSurface() *Surface {
	return NewSurface(v.cols, v.rows, v.cellW, v.cellH)
}

// Resize updates the size and notifies subscribers in subscription order.
// A resize to the current size is not broadcast.
func (v *Viewport) Resize(cols, rows int) {
	if cols == v.cols && rows == v.rows {
		return
	}
	v.cols, v.rows = cols, rows
	for _, id := range append([]int(nil), v.order...) {
		if fn, ok := v.subscribers[id]; ok {
			fn(cols, rows)
		}
	}
}

// Subscribe registers fn for resize notifications and returns the
// function that removes it. The returned function is idempotent.
func (v *Viewport) Subscribe(fn func(cols, rows int)) (unsubscribe func()) {
	v.nextID++
	id := v.nextID
	v.subscribers[id] = fn
	v.order = append(v.order, id)
	return func() {
		if _, ok := v.subscribers[id]; !ok {
			return
		}
		delete(v.subscribers, id)
		for i, o := range v.order {
			if o == id {
				v.order = append(v.order[:i], v.order[i+1:]...)
				break
			}
		}
	}
}

// Subscribers returns the number of live subscriptions.
func (v *Viewport) Subscribers() int {
	return len(v.subscribers)
}
