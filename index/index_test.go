package index_test

import (
	"bytes"
	"testing"

	"github.com/eak1mov/go-tilegrid/grid"
	"github.com/eak1mov/go-tilegrid/index"
	"github.com/google/go-cmp/cmp"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
)

func TestItemSize(t *testing.T) {
	require.Equal(t, 44, index.ItemSize)
}

func TestWriteRead(t *testing.T) {
	g, err := grid.New(orb.Bound{Min: orb.Point{-180, -90}, Max: orb.Point{180, 90}}, 10)
	require.NoError(t, err)

	for _, tc := range []struct {
		Name string
		Rect orb.Bound
	}{
		{Name: "Empty", Rect: orb.Bound{Min: orb.Point{500, 500}, Max: orb.Point{600, 600}}},
		{Name: "Single", Rect: orb.Bound{Min: orb.Point{1, 1}, Max: orb.Point{2, 2}}},
		{Name: "Europe", Rect: orb.Bound{Min: orb.Point{-10.5, 35.2}, Max: orb.Point{40.1, 70.9}}},
		{Name: "All", Rect: g.Extent()},
	} {
		t.Run(tc.Name, func(t *testing.T) {
			items, err := index.FromGrid(g, g.TileList(tc.Rect, g.TileCount()))
			require.NoError(t, err)

			var buffer bytes.Buffer
			if err := index.WriteAll(items, &buffer); err != nil {
				t.Fatalf("WriteAll failed: %v", err)
			}
			if got, want := buffer.Len(), len(items)*index.ItemSize; got != want {
				t.Errorf("buffer.Len() = %v, want = %v", got, want)
			}

			readItems, err := index.ReadAll(buffer.Bytes())
			if err != nil {
				t.Fatalf("ReadAll failed: %v", err)
			}
			if diff := cmp.Diff(items, readItems); diff != "" {
				t.Errorf("ReadAll(WriteAll(items)) mismatch (-want+got):\n%v", diff)
			}

			for _, item := range readItems {
				if got, want := item.Bound(), g.TileBounds(item.TileID()); got != want {
					t.Errorf("Item(%v).Bound() = %v, want = %v", item.ID, got, want)
				}
				if col, row := g.ColRow(item.TileID()); int(item.Col) != col || int(item.Row) != row {
					t.Errorf("Item(%v) col, row = %v, %v, want = %v, %v", item.ID, item.Col, item.Row, col, row)
				}
			}
		})
	}
}

func TestFromGridInvalid(t *testing.T) {
	g, err := grid.New(orb.Bound{Max: orb.Point{4, 4}}, 1)
	require.NoError(t, err)

	for _, tileIDs := range [][]int{{0, 16}, {-1}, {grid.None, 3}} {
		_, err = index.FromGrid(g, tileIDs)
		require.ErrorIs(t, err, grid.ErrInvalidTileID)
	}
}

func TestReadAllErrors(t *testing.T) {
	_, err := index.ReadAll([]byte("foobar"))
	require.ErrorIs(t, err, index.ErrInvalidIndex)

	items, err := index.ReadAll(nil)
	require.NoError(t, err)
	require.Empty(t, items)
}
