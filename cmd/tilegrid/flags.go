package main

import (
	"flag"
	"log/slog"

	"github.com/eak1mov/go-tilegrid/grid"
	"github.com/eak1mov/go-tilegrid/tiledb"
	"github.com/paulmach/orb"
)

// gridFlags describes the grid every command works on: either given
// explicitly or read from a tile database written by export.
type gridFlags struct {
	extent   string
	tileSize float64
	noWrap   bool
	dbPath   string
}

func (f *gridFlags) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&f.extent, "extent", "-180,-90,180,90", "Grid extent (minx,miny,maxx,maxy)")
	fs.Float64Var(&f.tileSize, "size", 1, "Tile size")
	fs.BoolVar(&f.noWrap, "nowrap", false, "Disable horizontal wraparound of neighbors")
	fs.StringVar(&f.dbPath, "db", "", "Read grid layout from tile database (overrides -extent, -size, -nowrap)")
}

func (f *gridFlags) grid() (*grid.Grid, error) {
	if f.dbPath != "" {
		reader, err := tiledb.NewReader(f.dbPath)
		if err != nil {
			return nil, err
		}
		defer reader.Close()
		return reader.ReadGrid(grid.WithLogger(slog.Default()))
	}

	extent, err := tiledb.ParseExtent(f.extent)
	if err != nil {
		return nil, err
	}
	return grid.New(extent, f.tileSize, grid.WithWrap(!f.noWrap), grid.WithLogger(slog.Default()))
}

// parseRect parses an optional "minx,miny,maxx,maxy" query rectangle,
// defaulting to the whole grid extent.
func parseRect(value string, g *grid.Grid) (orb.Bound, error) {
	if value == "" {
		return g.Extent(), nil
	}
	return tiledb.ParseExtent(value)
}
