package grid

import (
	"cmp"
	"errors"
	"fmt"
	"math/bits"
	"slices"

	"github.com/google/hilbert"
)

var ErrInvalidTileID = errors.New("tilegrid: invalid tile id")

// HilbertCode returns the position of the tile along a Hilbert curve
// covering the smallest power-of-two square that contains all columns and rows.
func (g *Grid) HilbertCode(tileID int) (int, error) {
	h, err := g.hilbertCurve()
	if err != nil {
		return 0, err
	}
	return g.hilbertCode(h, tileID)
}

// HilbertSort sorts tile IDs by HilbertCode, so that tiles close to each
// other in the grid tend to be close to each other in the slice.
func (g *Grid) HilbertSort(tileIDs []int) error {
	if len(tileIDs) == 0 {
		return nil
	}
	h, err := g.hilbertCurve()
	if err != nil {
		return err
	}

	codes := make(map[int]int, len(tileIDs))
	for _, tileID := range tileIDs {
		code, err := g.hilbertCode(h, tileID)
		if err != nil {
			return err
		}
		codes[tileID] = code
	}

	slices.SortStableFunc(tileIDs, func(a, b int) int {
		return cmp.Compare(codes[a], codes[b])
	})
	return nil
}

func (g *Grid) hilbertCurve() (*hilbert.Hilbert, error) {
	if g.Empty() {
		return nil, fmt.Errorf("%w: empty grid", ErrInvalidTileID)
	}
	side := 1 << bits.Len(uint(max(g.cols, g.rows)-1))
	return hilbert.NewHilbert(side)
}

func (g *Grid) hilbertCode(h *hilbert.Hilbert, tileID int) (int, error) {
	if !g.Valid(tileID) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidTileID, tileID)
	}
	col, row := g.ColRow(tileID)
	return h.MapInverse(col, row)
}
