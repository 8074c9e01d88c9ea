// Package grid provides a uniform tiling of a planar extent into square tiles
// addressed by flat row-major integer IDs.
package grid

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/paulmach/orb"
)

// None is returned by lookups for coordinates outside of the grid extent.
const None = -1

// MaxTileCount is the largest number of tiles a Grid may have, so that
// every tile ID fits into uint32.
const MaxTileCount = math.MaxUint32

var ErrInvalidTileSize = errors.New("tilegrid: invalid tile size")
var ErrInvalidExtent = errors.New("tilegrid: invalid extent")

// Grid splits an extent into columns x rows tiles of equal size.
// Tile (0, 0) occupies [minx, minx+size) x [miny, miny+size).
//
// Grid is immutable after New and safe for concurrent use.
// The zero Grid has no tiles.
type Grid struct {
	extent   orb.Bound
	tileSize float64
	cols     int
	rows     int
	wrap     bool
	logger   *slog.Logger
}

type gridConfig struct {
	Wrap   bool
	Logger *slog.Logger
}

type Option func(*gridConfig)

// WithWrap controls horizontal wraparound of LeftNeighbor and RightNeighbor.
// When disabled, neighbors past the first or last column clamp to the tile itself.
func WithWrap(wrap bool) Option {
	return func(c *gridConfig) { c.Wrap = wrap }
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *gridConfig) { c.Logger = logger }
}

// New creates a Grid covering extent with square tiles of tileSize.
func New(extent orb.Bound, tileSize float64, opts ...Option) (*Grid, error) {
	config := gridConfig{
		Wrap:   true,
		Logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&config)
	}

	if !(tileSize > 0) || math.IsInf(tileSize, 1) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTileSize, tileSize)
	}
	for _, v := range []float64{extent.Min[0], extent.Min[1], extent.Max[0], extent.Max[1]} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: non-finite corner in %v", ErrInvalidExtent, extent)
		}
	}
	if extent.Min[0] > extent.Max[0] || extent.Min[1] > extent.Max[1] {
		return nil, fmt.Errorf("%w: min corner %v exceeds max corner %v", ErrInvalidExtent, extent.Min, extent.Max)
	}

	cols := math.Ceil((extent.Max[0] - extent.Min[0]) / tileSize)
	rows := math.Ceil((extent.Max[1] - extent.Min[1]) / tileSize)
	if cols > MaxTileCount || rows > MaxTileCount || cols*rows > MaxTileCount {
		return nil, fmt.Errorf("%w: %v is too small for extent %v (%v x %v tiles, max %d)",
			ErrInvalidTileSize, tileSize, extent, cols, rows, uint64(MaxTileCount))
	}

	return &Grid{
		extent:   extent,
		tileSize: tileSize,
		cols:     int(cols),
		rows:     int(rows),
		wrap:     config.Wrap,
		logger:   config.Logger,
	}, nil
}

func (g *Grid) Extent() orb.Bound {
	return g.extent
}

func (g *Grid) TileSize() float64 {
	return g.tileSize
}

func (g *Grid) Columns() int {
	return g.cols
}

func (g *Grid) Rows() int {
	return g.rows
}

// Wrap reports whether horizontal neighbors wrap around, see WithWrap.
func (g *Grid) Wrap() bool {
	return g.wrap
}

// Empty reports whether the grid has no tiles.
func (g *Grid) Empty() bool {
	return g.cols == 0 || g.rows == 0
}

func (g *Grid) String() string {
	return fmt.Sprintf("Grid{Extent:%v,TileSize:%v,Columns:%d,Rows:%d}", g.extent, g.tileSize, g.cols, g.rows)
}

// Row returns the row containing y, or None if y is outside the extent.
// The max edge belongs to the last row.
func (g *Grid) Row(y float64) int {
	if g.Empty() || !(y >= g.extent.Min[1] && y <= g.extent.Max[1]) {
		return None
	}
	if y == g.extent.Max[1] {
		return g.rows - 1
	}
	return int(math.Floor((y - g.extent.Min[1]) / g.tileSize))
}

// Col returns the column containing x, or None if x is outside the extent.
// The max edge belongs to the last column.
func (g *Grid) Col(x float64) int {
	if g.Empty() || !(x >= g.extent.Min[0] && x <= g.extent.Max[0]) {
		return None
	}
	if x == g.extent.Max[0] {
		return g.cols - 1
	}
	return int(math.Floor((x - g.extent.Min[0]) / g.tileSize))
}

// TileID returns the tile containing p, or None if p is outside the extent.
func (g *Grid) TileID(p orb.Point) int {
	return g.TileIDYX(p.Y(), p.X())
}

func (g *Grid) TileIDYX(y, x float64) int {
	if g.Empty() ||
		!(y >= g.extent.Min[1] && y <= g.extent.Max[1]) ||
		!(x >= g.extent.Min[0] && x <= g.extent.Max[0]) {
		return None
	}
	return g.Row(y)*g.cols + g.Col(x)
}

// TileIDColRow returns the ID of the tile at col, row. Arguments are not checked.
func (g *Grid) TileIDColRow(col, row int) int {
	return row*g.cols + col
}

// ColRow splits a tile ID into its column and row.
func (g *Grid) ColRow(tileID int) (col, row int) {
	if g.cols == 0 {
		return None, None
	}
	row = tileID / g.cols
	col = tileID - row*g.cols
	return col, row
}

// Valid reports whether tileID addresses a tile of the grid.
func (g *Grid) Valid(tileID int) bool {
	return tileID >= 0 && tileID < g.TileCount()
}

// Base returns the min corner of the tile.
func (g *Grid) Base(tileID int) orb.Point {
	col, row := g.ColRow(tileID)
	return orb.Point{
		g.extent.Min[0] + float64(col)*g.tileSize,
		g.extent.Min[1] + float64(row)*g.tileSize,
	}
}

func (g *Grid) TileBounds(tileID int) orb.Bound {
	base := g.Base(tileID)
	return orb.Bound{
		Min: base,
		Max: orb.Point{base[0] + g.tileSize, base[1] + g.tileSize},
	}
}

func (g *Grid) TileBoundsColRow(col, row int) orb.Bound {
	basex := float64(col)*g.tileSize + g.extent.Min[0]
	basey := float64(row)*g.tileSize + g.extent.Min[1]
	return orb.Bound{
		Min: orb.Point{basex, basey},
		Max: orb.Point{basex + g.tileSize, basey + g.tileSize},
	}
}

func (g *Grid) Center(tileID int) orb.Point {
	base := g.Base(tileID)
	return orb.Point{base[0] + g.tileSize*0.5, base[1] + g.tileSize*0.5}
}

// TileCount returns the total number of tiles.
func (g *Grid) TileCount() int {
	if g.tileSize <= 0 {
		return 0
	}
	return g.cols * int(math.Ceil((g.extent.Max[1]-g.extent.Min[1])/g.tileSize))
}
