// Package index provides a flat binary format for tile geometry.
package index

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/eak1mov/go-tilegrid/grid"
	"github.com/paulmach/orb"
)

var ErrInvalidIndex = errors.New("tilegrid: invalid index data")

// Item represents a single record in the index: a tile ID, its column and row
// and its bounds. Records are little-endian and fixed-size, so the index
// is easily readable from other languages and utilities.
type Item struct {
	ID   uint32
	Col  uint32
	Row  uint32
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// ItemSize is the encoded size of a single Item in bytes.
var ItemSize = binary.Size(Item{})

func (i Item) TileID() int {
	return int(i.ID)
}

func (i Item) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{i.MinX, i.MinY},
		Max: orb.Point{i.MaxX, i.MaxY},
	}
}

// NewItem describes tileID of g. The tile must be valid; a Grid never has
// more than grid.MaxTileCount tiles, so its IDs always fit into Item.
func NewItem(g *grid.Grid, tileID int) Item {
	col, row := g.ColRow(tileID)
	bounds := g.TileBounds(tileID)
	return Item{
		ID:   uint32(tileID),
		Col:  uint32(col),
		Row:  uint32(row),
		MinX: bounds.Min[0],
		MinY: bounds.Min[1],
		MaxX: bounds.Max[0],
		MaxY: bounds.Max[1],
	}
}

// FromGrid describes the given tiles of g, in order.
func FromGrid(g *grid.Grid, tileIDs []int) ([]Item, error) {
	items := make([]Item, 0, len(tileIDs))
	for _, tileID := range tileIDs {
		if !g.Valid(tileID) || uint64(tileID) > math.MaxUint32 {
			return nil, fmt.Errorf("%w: %d", grid.ErrInvalidTileID, tileID)
		}
		items = append(items, NewItem(g, tileID))
	}
	return items, nil
}

func WriteAll(items []Item, writer io.Writer) error {
	return binary.Write(writer, binary.LittleEndian, items)
}

func ReadAll(indexData []byte) ([]Item, error) {
	if len(indexData)%ItemSize != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrInvalidIndex, len(indexData)%ItemSize)
	}
	count := len(indexData) / ItemSize
	items := make([]Item, count)

	err := binary.Read(bytes.NewReader(indexData), binary.LittleEndian, items)
	if err != nil {
		return nil, err
	}

	return items, nil
}
