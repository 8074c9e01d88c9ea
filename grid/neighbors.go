package grid

// Neighbor lookups wrap horizontally within a row (unless disabled with
// WithWrap) and clamp vertically: a tile with no neighbor in the requested
// direction is its own neighbor. All of them return None on an empty grid.

func (g *Grid) RightNeighbor(tileID int) int {
	if g.cols == 0 {
		return None
	}
	col, _ := g.ColRow(tileID)
	switch {
	case col < g.cols-1:
		return tileID + 1
	case g.wrap:
		return tileID - g.cols + 1
	default:
		return tileID
	}
}

func (g *Grid) LeftNeighbor(tileID int) int {
	if g.cols == 0 {
		return None
	}
	col, _ := g.ColRow(tileID)
	switch {
	case col > 0:
		return tileID - 1
	case g.wrap:
		return tileID + g.cols - 1
	default:
		return tileID
	}
}

func (g *Grid) TopNeighbor(tileID int) int {
	if g.cols == 0 {
		return None
	}
	if tileID < g.TileCount()-g.cols {
		return tileID + g.cols
	}
	return tileID
}

func (g *Grid) BottomNeighbor(tileID int) int {
	if g.cols == 0 {
		return None
	}
	if tileID < g.cols {
		return tileID
	}
	return tileID - g.cols
}

// Neighbors returns the left, right, top and bottom neighbors of the tile.
func (g *Grid) Neighbors(tileID int) [4]int {
	return [4]int{
		g.LeftNeighbor(tileID),
		g.RightNeighbor(tileID),
		g.TopNeighbor(tileID),
		g.BottomNeighbor(tileID),
	}
}

// RelativeTile moves deltaRows rows and deltaCols columns away from tileID.
// The destination is not checked; use Valid when it may fall outside the grid.
func (g *Grid) RelativeTile(tileID, deltaRows, deltaCols int) int {
	return tileID + deltaRows*g.cols + deltaCols
}

// Offsets is the inverse of RelativeTile.
func (g *Grid) Offsets(fromID, toID int) (deltaRows, deltaCols int) {
	if g.cols == 0 {
		return 0, toID - fromID
	}
	deltaRows = toID/g.cols - fromID/g.cols
	deltaCols = (toID - fromID) - deltaRows*g.cols
	return deltaRows, deltaCols
}
