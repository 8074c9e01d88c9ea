package grid_test

import (
	"testing"

	"github.com/eak1mov/go-tilegrid/grid"
	"github.com/stretchr/testify/require"
)

func TestNeighbors(t *testing.T) {
	// 12 13 14 15
	//  8  9 10 11
	//  4  5  6  7
	//  0  1  2  3
	g := newGrid(t, bound(0, 0, 4, 4), 1)

	for _, tc := range []struct {
		Name   string
		TileID int
		Want   [4]int // left, right, top, bottom
	}{
		{Name: "Inner", TileID: 5, Want: [4]int{4, 6, 9, 1}},
		{Name: "BottomLeft", TileID: 0, Want: [4]int{3, 1, 4, 0}},
		{Name: "BottomRight", TileID: 3, Want: [4]int{2, 0, 7, 3}},
		{Name: "TopLeft", TileID: 12, Want: [4]int{15, 13, 12, 8}},
		{Name: "TopRight", TileID: 15, Want: [4]int{14, 12, 15, 11}},
		{Name: "LeftEdge", TileID: 8, Want: [4]int{11, 9, 12, 4}},
	} {
		t.Run(tc.Name, func(t *testing.T) {
			if got, want := g.Neighbors(tc.TileID), tc.Want; got != want {
				t.Errorf("Neighbors(%v) = %v, want = %v", tc.TileID, got, want)
			}
		})
	}
}

func TestNeighborsWithoutWrap(t *testing.T) {
	g := newGrid(t, bound(0, 0, 4, 4), 1, grid.WithWrap(false))

	require.Equal(t, [4]int{0, 1, 4, 0}, g.Neighbors(0))
	require.Equal(t, [4]int{2, 3, 7, 3}, g.Neighbors(3))
	require.Equal(t, [4]int{8, 9, 12, 4}, g.Neighbors(8))
	require.Equal(t, [4]int{4, 6, 9, 1}, g.Neighbors(5))
}

func TestNeighborsRoundTrip(t *testing.T) {
	g := newGrid(t, bound(0, 0, 5, 3), 1)

	for tileID := range g.TileCount() {
		if got := g.RightNeighbor(g.LeftNeighbor(tileID)); got != tileID {
			t.Errorf("RightNeighbor(LeftNeighbor(%v)) = %v", tileID, got)
		}
		if got := g.LeftNeighbor(g.RightNeighbor(tileID)); got != tileID {
			t.Errorf("LeftNeighbor(RightNeighbor(%v)) = %v", tileID, got)
		}
		_, row := g.ColRow(tileID)
		if row > 0 && row < g.Rows()-1 {
			if got := g.TopNeighbor(g.BottomNeighbor(tileID)); got != tileID {
				t.Errorf("TopNeighbor(BottomNeighbor(%v)) = %v", tileID, got)
			}
		}
		for _, neighbor := range g.Neighbors(tileID) {
			if !g.Valid(neighbor) {
				t.Errorf("Neighbors(%v) contains invalid tile %v", tileID, neighbor)
			}
		}
	}
}

func TestOffsets(t *testing.T) {
	g := newGrid(t, bound(0, 0, 5, 4), 1)

	for from := range g.TileCount() {
		for to := range g.TileCount() {
			deltaRows, deltaCols := g.Offsets(from, to)
			if got := g.RelativeTile(from, deltaRows, deltaCols); got != to {
				t.Fatalf("RelativeTile(%v, %v, %v) = %v, want = %v", from, deltaRows, deltaCols, got, to)
			}

			fromCol, fromRow := g.ColRow(from)
			toCol, toRow := g.ColRow(to)
			if deltaRows != toRow-fromRow || deltaCols != toCol-fromCol {
				t.Fatalf("Offsets(%v, %v) = %v, %v, want = %v, %v",
					from, to, deltaRows, deltaCols, toRow-fromRow, toCol-fromCol)
			}
		}
	}
}

func TestRelativeTileUnchecked(t *testing.T) {
	g := newGrid(t, bound(0, 0, 4, 4), 1)

	require.Equal(t, 10, g.RelativeTile(5, 1, 1))
	require.Equal(t, 4, g.RelativeTile(3, 0, 1), "crosses into the next row")
	require.Equal(t, -4, g.RelativeTile(0, -1, 0))
	require.False(t, g.Valid(g.RelativeTile(15, 1, 0)))
}
