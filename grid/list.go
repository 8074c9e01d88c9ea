package grid

import (
	"iter"

	"github.com/paulmach/orb"
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// flood is the state of a single breadth-first walk over the tiles
// intersecting rect. It is never shared between calls.
type flood struct {
	grid     *Grid
	rect     orb.Bound
	visited  mapset.Set[int]
	frontier *queue.Queue[int]
}

// startFlood returns a walk seeded with the tile under the center of rect,
// and the seed itself. The seed is None when the center is outside the extent.
func (g *Grid) startFlood(rect orb.Bound) (*flood, int) {
	seed := g.TileID(rect.Center())
	if seed == None {
		return nil, None
	}
	f := &flood{
		grid:     g,
		rect:     rect,
		visited:  mapset.New[int](),
		frontier: queue.New[int](),
	}
	f.visited.Put(seed)
	f.addNeighbors(seed)
	return f, seed
}

func (f *flood) addNeighbors(tileID int) {
	// At clamped edges a neighbor may be the tile itself.
	for _, neighbor := range f.grid.Neighbors(tileID) {
		if neighbor != tileID && !f.visited.Has(neighbor) {
			f.frontier.Enqueue(neighbor)
			f.visited.Put(neighbor)
		}
	}
}

// next returns the next tile intersecting rect, or None when the walk is over.
// Neighbors of tiles outside rect are not explored.
func (f *flood) next() int {
	for !f.frontier.Empty() {
		tileID := f.frontier.Dequeue()
		if f.rect.Intersects(f.grid.TileBounds(tileID)) {
			f.addNeighbors(tileID)
			return tileID
		}
	}
	return None
}

// Tiles returns an iterator over all tiles intersecting rect in breadth-first
// order, starting with the tile under the center of rect. Nothing is yielded
// when the center of rect is outside the extent.
func (g *Grid) Tiles(rect orb.Bound) iter.Seq[int] {
	return func(yield func(int) bool) {
		f, tileID := g.startFlood(rect)
		for tileID != None {
			if !yield(tileID) {
				return
			}
			tileID = f.next()
		}
	}
}

// TileList returns the tiles intersecting rect in discovery order, see Tiles.
// At most maxTiles tiles are returned, except that the tile under the center
// of rect is always included.
func (g *Grid) TileList(rect orb.Bound, maxTiles int) []int {
	var tiles []int
	for tileID := range g.Tiles(rect) {
		tiles = append(tiles, tileID)
		if len(tiles) >= maxTiles {
			g.logger.Debug("tilegrid: tile list capped", "rect", rect, "maxTiles", maxTiles)
			break
		}
	}
	return tiles
}
