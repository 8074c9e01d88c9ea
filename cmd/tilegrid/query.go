package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/eak1mov/go-tilegrid/grid"
	"github.com/google/subcommands"
)

type locateCmd struct {
	gridFlags
	x float64
	y float64
}

func (c *locateCmd) Name() string     { return "locate" }
func (c *locateCmd) Synopsis() string { return "find the tile containing a point" }
func (c *locateCmd) Usage() string {
	return "tilegrid locate -x <x> -y <y> [-extent <bbox> -size <size> | -db <path>]\n"
}
func (c *locateCmd) SetFlags(f *flag.FlagSet) {
	c.gridFlags.SetFlags(f)
	f.Float64Var(&c.x, "x", 0, "Point x coordinate")
	f.Float64Var(&c.y, "y", 0, "Point y coordinate")
}

func (c *locateCmd) run(g *grid.Grid, w io.Writer) error {
	tileID := g.TileIDYX(c.y, c.x)
	if tileID == grid.None {
		return fmt.Errorf("point (%v, %v) is outside of extent %v", c.x, c.y, g.Extent())
	}
	col, row := g.ColRow(tileID)
	_, err := fmt.Fprintf(w, "tile %d col %d row %d\n", tileID, col, row)
	return err
}

func (c *locateCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	return execute(&c.gridFlags, c.run)
}

type tileCmd struct {
	gridFlags
	tileID int
}

func (c *tileCmd) Name() string     { return "tile" }
func (c *tileCmd) Synopsis() string { return "describe tile bounds, center and neighbors" }
func (c *tileCmd) Usage() string {
	return "tilegrid tile -id <id> [-extent <bbox> -size <size> | -db <path>]\n"
}
func (c *tileCmd) SetFlags(f *flag.FlagSet) {
	c.gridFlags.SetFlags(f)
	f.IntVar(&c.tileID, "id", 0, "Tile ID")
}

func (c *tileCmd) run(g *grid.Grid, w io.Writer) error {
	if !g.Valid(c.tileID) {
		return fmt.Errorf("%w: %d (grid has %d tiles)", grid.ErrInvalidTileID, c.tileID, g.TileCount())
	}
	col, row := g.ColRow(c.tileID)
	bounds := g.TileBounds(c.tileID)
	center := g.Center(c.tileID)
	neighbors := g.Neighbors(c.tileID)

	_, err := fmt.Fprintf(w, "tile %d col %d row %d\n"+
		"bounds %v,%v,%v,%v\n"+
		"center %v,%v\n"+
		"neighbors left %d right %d top %d bottom %d\n",
		c.tileID, col, row,
		bounds.Min[0], bounds.Min[1], bounds.Max[0], bounds.Max[1],
		center[0], center[1],
		neighbors[0], neighbors[1], neighbors[2], neighbors[3])
	return err
}

func (c *tileCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	return execute(&c.gridFlags, c.run)
}

type listCmd struct {
	gridFlags
	bbox     string
	maxTiles int
	hilbert  bool
}

func (c *listCmd) Name() string     { return "list" }
func (c *listCmd) Synopsis() string { return "list tiles intersecting a bounding box" }
func (c *listCmd) Usage() string {
	return "tilegrid list -bbox <bbox> [-max <n> -hilbert] [-extent <bbox> -size <size> | -db <path>]\n"
}
func (c *listCmd) SetFlags(f *flag.FlagSet) {
	c.gridFlags.SetFlags(f)
	f.StringVar(&c.bbox, "bbox", "", "Query bounding box (minx,miny,maxx,maxy), whole extent by default")
	f.IntVar(&c.maxTiles, "max", 0, "Maximum number of tiles, unlimited if 0")
	f.BoolVar(&c.hilbert, "hilbert", false, "Sort tiles along a Hilbert curve instead of discovery order")
}

func (c *listCmd) tiles(g *grid.Grid) ([]int, error) {
	rect, err := parseRect(c.bbox, g)
	if err != nil {
		return nil, err
	}
	maxTiles := c.maxTiles
	if maxTiles <= 0 {
		maxTiles = g.TileCount()
	}
	tileIDs := g.TileList(rect, maxTiles)
	if c.hilbert {
		if err := g.HilbertSort(tileIDs); err != nil {
			return nil, err
		}
	}
	return tileIDs, nil
}

func (c *listCmd) run(g *grid.Grid, w io.Writer) error {
	tileIDs, err := c.tiles(g)
	if err != nil {
		return err
	}
	for _, tileID := range tileIDs {
		if _, err := fmt.Fprintln(w, tileID); err != nil {
			return err
		}
	}
	return nil
}

func (c *listCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	return execute(&c.gridFlags, c.run)
}

func execute(flags *gridFlags, run func(*grid.Grid, io.Writer) error) subcommands.ExitStatus {
	g, err := flags.grid()
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	if err := run(g, os.Stdout); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
