package game

import (
	"testing"
)

type item struct {
	ID int
}

func ids(p *Pool[item]) []int {
	var out []int
	p.ForEach(func(it *item, _ int) {
		out = append(out, it.ID)
	})
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPool_AddAndCount(t *testing.T) {
	p := NewPool[item](0)
	for i := 0; i < 5; i++ {
		if !p.Add(&item{ID: i}) {
			t.Fatalf("Add %d failed on unbounded pool", i)
		}
	}
	if p.Len() != 5 || p.ActiveCount() != 5 {
		t.Errorf("Expected 5/5, got Len=%d Active=%d", p.Len(), p.ActiveCount())
	}
}

func TestPool_MaxSize(t *testing.T) {
	p := NewPool[item](2)
	p.Add(&item{ID: 1})
	p.Add(&item{ID: 2})
	if p.Add(&item{ID: 3}) {
		t.Error("Expected Add to fail on a full pool")
	}

	// Released slots free capacity even before Compact
	p.Release(0)
	if !p.Add(&item{ID: 3}) {
		t.Error("Expected Add to succeed after Release")
	}
}

func TestPool_ReleaseSkipsAndCompactKeepsOrder(t *testing.T) {
	p := NewPool[item](0)
	for i := 0; i < 6; i++ {
		p.Add(&item{ID: i})
	}

	p.Release(1)
	p.Release(4)
	p.Release(4) // twice is harmless

	if got := ids(p); !equalInts(got, []int{0, 2, 3, 5}) {
		t.Errorf("Expected released slots skipped, got %v", got)
	}
	if p.Len() != 6 || p.ActiveCount() != 4 {
		t.Errorf("Expected Len=6 Active=4 before Compact, got %d/%d", p.Len(), p.ActiveCount())
	}

	p.Compact()

	if got := ids(p); !equalInts(got, []int{0, 2, 3, 5}) {
		t.Errorf("Expected stable order after Compact, got %v", got)
	}
	if p.Len() != 4 {
		t.Errorf("Expected Len=4 after Compact, got %d", p.Len())
	}
	for i := 0; i < p.Len(); i++ {
		if p.Released(i) {
			t.Errorf("Slot %d still released after Compact", i)
		}
	}
}

func TestPool_ForEachReverse(t *testing.T) {
	p := NewPool[item](0)
	for i := 0; i < 4; i++ {
		p.Add(&item{ID: i})
	}
	p.Release(2)

	var got []int
	p.ForEachReverse(func(it *item, _ int) {
		got = append(got, it.ID)
	})
	if !equalInts(got, []int{3, 1, 0}) {
		t.Errorf("Expected [3 1 0], got %v", got)
	}
}

func TestPool_AddDuringIterationNotVisited(t *testing.T) {
	p := NewPool[item](0)
	p.Add(&item{ID: 0})
	p.Add(&item{ID: 1})

	visited := 0
	p.ForEach(func(it *item, _ int) {
		visited++
		p.Add(&item{ID: 10 + it.ID})
	})
	if visited != 2 {
		t.Errorf("Expected 2 visits, got %d", visited)
	}
	if p.Len() != 4 {
		t.Errorf("Expected 4 entries, got %d", p.Len())
	}
}

func TestPool_ReleaseDuringReverseIteration(t *testing.T) {
	p := NewPool[item](0)
	for i := 0; i < 5; i++ {
		p.Add(&item{ID: i})
	}

	p.ForEachReverse(func(it *item, i int) {
		if it.ID%2 == 0 {
			p.Release(i)
		}
	})
	p.Compact()

	if got := ids(p); !equalInts(got, []int{1, 3}) {
		t.Errorf("Expected [1 3], got %v", got)
	}
}

func TestPool_Clear(t *testing.T) {
	p := NewPool[item](0)
	p.Add(&item{ID: 1})
	p.Release(0)
	p.Add(&item{ID: 2})
	p.Clear()

	if p.Len() != 0 || p.ActiveCount() != 0 {
		t.Errorf("Expected empty pool, got Len=%d Active=%d", p.Len(), p.ActiveCount())
	}
	if !p.Add(&item{ID: 3}) || p.At(0).ID != 3 {
		t.Error("Expected pool usable after Clear")
	}
}

// --- Spatial Grid ---

func TestSpatialGrid_FindsNeighbours(t *testing.T) {
	sg := NewSpatialGrid(0, 0, Width, Height, 64)
	sg.Insert(0, &Bullet{X: 100, Y: 100})
	sg.Insert(1, &Bullet{X: 150, Y: 100}) // adjacent cell
	sg.Insert(2, &Bullet{X: 700, Y: 500}) // far away

	got := sg.Nearby(100, 100, nil)
	has := map[int]bool{}
	for _, i := range got {
		has[i] = true
	}
	if !has[0] || !has[1] {
		t.Errorf("Expected indices 0 and 1 nearby, got %v", got)
	}
	if has[2] {
		t.Errorf("Did not expect far index 2, got %v", got)
	}
}

func TestSpatialGrid_ClampsOutsidePositions(t *testing.T) {
	sg := NewSpatialGrid(0, 0, Width, Height, 64)
	sg.Insert(0, &Bullet{X: -30, Y: -90})

	got := sg.Nearby(-10, -100, nil)
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("Expected clamped entry to be found, got %v", got)
	}
}

func TestSpatialGrid_Clear(t *testing.T) {
	sg := NewSpatialGrid(0, 0, Width, Height, 64)
	sg.Insert(0, &Bullet{X: 10, Y: 10})
	sg.Clear()
	if got := sg.Nearby(10, 10, nil); len(got) != 0 {
		t.Errorf("Expected no entries after Clear, got %v", got)
	}
}

func TestSpatialGrid_AppendsToBuffer(t *testing.T) {
	sg := NewSpatialGrid(0, 0, Width, Height, 64)
	sg.Insert(7, &Bullet{X: 10, Y: 10})

	buf := make([]int, 0, 8)
	buf = append(buf, 99)
	got := sg.Nearby(10, 10, buf)
	if len(got) != 2 || got[0] != 99 || got[1] != 7 {
		t.Errorf("Expected [99 7], got %v", got)
	}
}

func TestCollides(t *testing.T) {
	tests := []struct {
		name string
		a, b Collidable
		want bool
	}{
		{"touching", &Bullet{X: 0, Y: 0, Size: 6}, &Powerup{X: 5, Y: 0, Size: 4}, true},
		{"apart", &Bullet{X: 0, Y: 0, Size: 6}, &Powerup{X: 5.1, Y: 0, Size: 4}, false},
		{"enemy on player", &Enemy{X: 400, Y: 300, Size: 30}, &Player{X: 420, Y: 300, Size: 28}, true},
		{"enemy beside player", &Enemy{X: 400, Y: 300, Size: 30}, &Player{X: 430, Y: 300, Size: 28}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collides(tt.a, tt.b); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
			if got := Collides(tt.b, tt.a); got != tt.want {
				t.Errorf("Expected symmetric result %v, got %v", tt.want, got)
			}
		})
	}
}
