package game

import (
	"math"

	"github.com/simukka/topdown-shooter/common"
)

// --- Entity Pool ---

// Pool holds the live entities of one kind for a session.
//
// Removal is mark-and-compact: Release only flags a slot, iteration skips
// flagged slots, and Compact drops them once per frame while keeping the
// relative order of the survivors. Entities added during an iteration are
// not visited by that iteration.
type Pool[T any] struct {
	Items    []*T
	released []bool
	active   int
	MaxSize  int // 0 = unbounded
}

// NewPool creates an empty pool. maxSize <= 0 disables the cap.
func NewPool[T any](maxSize int) *Pool[T] {
	if maxSize < 0 {
		maxSize = 0
	}
	return &Pool[T]{
		Items:    make([]*T, 0, 64),
		released: make([]bool, 0, 64),
		MaxSize:  maxSize,
	}
}

// Add appends an entity. Returns false if the pool is full.
func (p *Pool[T]) Add(item *T) bool {
	if p.MaxSize > 0 && p.active >= p.MaxSize {
		return false
	}
	p.Items = append(p.Items, item)
	p.released = append(p.released, false)
	p.active++
	return true
}

// Len returns the number of slots, released ones included.
func (p *Pool[T]) Len() int {
	return len(p.Items)
}

// ActiveCount returns the number of entities that have not been released.
func (p *Pool[T]) ActiveCount() int {
	return p.active
}

// At returns the entity in slot i.
func (p *Pool[T]) At(i int) *T {
	return p.Items[i]
}

// Release flags slot i for removal at the next Compact.
func (p *Pool[T]) Release(i int) {
	if i < 0 || i >= len(p.Items) || p.released[i] {
		return
	}
	p.released[i] = true
	p.active--
}

// Released reports whether slot i is flagged for removal.
func (p *Pool[T]) Released(i int) bool {
	return p.released[i]
}

// ForEach iterates over live entities in insertion order.
func (p *Pool[T]) ForEach(fn func(*T, int)) {
	n := len(p.Items)
	for i := 0; i < n; i++ {
		if !p.released[i] {
			fn(p.Items[i], i)
		}
	}
}

// ForEachReverse iterates over live entities from newest to oldest.
func (p *Pool[T]) ForEachReverse(fn func(*T, int)) {
	for i := len(p.Items) - 1; i >= 0; i-- {
		if !p.released[i] {
			fn(p.Items[i], i)
		}
	}
}

// Compact removes released slots, preserving the order of the rest.
func (p *Pool[T]) Compact() {
	w := 0
	for r, item := range p.Items {
		if p.released[r] {
			continue
		}
		p.Items[w] = item
		p.released[w] = false
		w++
	}
	for i := w; i < len(p.Items); i++ {
		p.Items[i] = nil
	}
	p.Items = p.Items[:w]
	p.released = p.released[:w]
	p.active = w
}

// Clear empties the pool, keeping its capacity.
func (p *Pool[T]) Clear() {
	for i := range p.Items {
		p.Items[i] = nil
	}
	p.Items = p.Items[:0]
	p.released = p.released[:0]
	p.active = 0
}

// --- Spatial Hash Grid for Collision Detection ---

// Collidable is anything with a position and a collision circle.
type Collidable interface {
	GetPosition() (x, y float64)
	GetRadius() float64
}

// Collides reports whether the collision circles of a and b touch.
func Collides(a, b Collidable) bool {
	ax, ay := a.GetPosition()
	bx, by := b.GetPosition()
	return common.Overlaps(ax, ay, a.GetRadius(), bx, by, b.GetRadius())
}

// SpatialGrid is a uniform grid used as the broad phase for bullet-vs-enemy
// checks. It stores pool slot indices so callers can keep their own
// iteration order when resolving candidates.
//
// Positions outside the covered area are clamped into the border cells.
// Clamping never increases the cell distance between two points, so any
// pair closer than CellSize is still found by a 3x3 neighbourhood query.
type SpatialGrid struct {
	CellSize   float64
	OriginX    float64
	OriginY    float64
	GridWidth  int
	GridHeight int
	Cells      [][]int
}

// NewSpatialGrid creates a grid covering [minX,maxX]x[minY,maxY].
// cellSize must be at least the largest sum of radii that is ever tested.
func NewSpatialGrid(minX, minY, maxX, maxY, cellSize float64) *SpatialGrid {
	gridWidth := int((maxX-minX)/cellSize) + 1
	gridHeight := int((maxY-minY)/cellSize) + 1

	cells := make([][]int, gridWidth*gridHeight)
	for i := range cells {
		cells[i] = make([]int, 0, 4)
	}

	return &SpatialGrid{
		CellSize:   cellSize,
		OriginX:    minX,
		OriginY:    minY,
		GridWidth:  gridWidth,
		GridHeight: gridHeight,
		Cells:      cells,
	}
}

// cellCoords returns the clamped cell coordinates for a position.
func (sg *SpatialGrid) cellCoords(x, y float64) (int, int) {
	cx := int(math.Floor((x - sg.OriginX) / sg.CellSize))
	cy := int(math.Floor((y - sg.OriginY) / sg.CellSize))

	if cx < 0 {
		cx = 0
	}
	if cx >= sg.GridWidth {
		cx = sg.GridWidth - 1
	}
	if cy < 0 {
		cy = 0
	}
	if cy >= sg.GridHeight {
		cy = sg.GridHeight - 1
	}
	return cx, cy
}

// Clear removes all entries. Call once per frame before inserting.
func (sg *SpatialGrid) Clear() {
	for i := range sg.Cells {
		sg.Cells[i] = sg.Cells[i][:0]
	}
}

// Insert records slot index at the position of c.
func (sg *SpatialGrid) Insert(index int, c Collidable) {
	cx, cy := sg.cellCoords(c.GetPosition())
	idx := cy*sg.GridWidth + cx
	sg.Cells[idx] = append(sg.Cells[idx], index)
}

// Nearby appends to out every index in the cell containing (x, y) and its
// eight neighbours, and returns the extended slice.
func (sg *SpatialGrid) Nearby(x, y float64, out []int) []int {
	cx, cy := sg.cellCoords(x, y)

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			ncx := cx + dx
			ncy := cy + dy
			if ncx < 0 || ncx >= sg.GridWidth || ncy < 0 || ncy >= sg.GridHeight {
				continue
			}
			out = append(out, sg.Cells[ncy*sg.GridWidth+ncx]...)
		}
	}
	return out
}
