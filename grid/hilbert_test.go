package grid_test

import (
	"math/rand/v2"
	"testing"

	"github.com/eak1mov/go-tilegrid/grid"
	"github.com/stretchr/testify/require"
)

func TestHilbertSort(t *testing.T) {
	for _, tc := range []struct {
		Name string
		Size float64
	}{
		{Name: "2x2", Size: 8},
		{Name: "4x4", Size: 4},
		{Name: "16x16", Size: 1},
	} {
		t.Run(tc.Name, func(t *testing.T) {
			g := newGrid(t, bound(0, 0, 16, 16), tc.Size)

			tileIDs := make([]int, g.TileCount())
			for i := range tileIDs {
				tileIDs[i] = i
			}
			rand.Shuffle(len(tileIDs), func(i, j int) {
				tileIDs[i], tileIDs[j] = tileIDs[j], tileIDs[i]
			})

			require.NoError(t, g.HilbertSort(tileIDs))

			// On a square power-of-two grid consecutive tiles of a Hilbert curve are adjacent.
			for i := 1; i < len(tileIDs); i++ {
				prevCol, prevRow := g.ColRow(tileIDs[i-1])
				col, row := g.ColRow(tileIDs[i])
				if dist := abs(col-prevCol) + abs(row-prevRow); dist != 1 {
					t.Fatalf("tiles %v and %v at position %v are %v steps apart", tileIDs[i-1], tileIDs[i], i, dist)
				}

				prevCode, err := g.HilbertCode(tileIDs[i-1])
				require.NoError(t, err)
				code, err := g.HilbertCode(tileIDs[i])
				require.NoError(t, err)
				require.Equal(t, prevCode+1, code)
			}
		})
	}
}

func TestHilbertSortRectangular(t *testing.T) {
	g := newGrid(t, bound(0, 0, 5, 3), 1)

	tileIDs := g.TileList(g.Extent(), g.TileCount())
	require.NoError(t, g.HilbertSort(tileIDs))
	require.Len(t, tileIDs, g.TileCount())

	prev := -1
	for _, tileID := range tileIDs {
		code, err := g.HilbertCode(tileID)
		require.NoError(t, err)
		require.Greater(t, code, prev)
		prev = code
	}
}

func TestHilbertErrors(t *testing.T) {
	g := newGrid(t, bound(0, 0, 4, 4), 1)

	require.ErrorIs(t, g.HilbertSort([]int{0, 16}), grid.ErrInvalidTileID)
	require.ErrorIs(t, g.HilbertSort([]int{grid.None}), grid.ErrInvalidTileID)
	require.NoError(t, g.HilbertSort(nil))

	var empty grid.Grid
	_, err := empty.HilbertCode(0)
	require.ErrorIs(t, err, grid.ErrInvalidTileID)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
