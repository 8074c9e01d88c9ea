package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/eak1mov/go-tilegrid/grid"
	"github.com/eak1mov/go-tilegrid/index"
	"github.com/eak1mov/go-tilegrid/tiledb"
	"github.com/google/subcommands"
	"github.com/schollz/progressbar/v3"
)

type exportCmd struct {
	gridFlags
	bbox         string
	outputFormat string
	outputPath   string
	hilbert      bool
}

func (c *exportCmd) Name() string     { return "export" }
func (c *exportCmd) Synopsis() string { return "export tile layout to index or sqlite file" }
func (c *exportCmd) Usage() string {
	return "tilegrid export -o <path> [-of <format> -bbox <bbox> -hilbert] [-extent <bbox> -size <size>]\n"
}
func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	c.gridFlags.SetFlags(f)
	f.StringVar(&c.bbox, "bbox", "", "Export only tiles intersecting bounding box (minx,miny,maxx,maxy)")
	f.StringVar(&c.outputPath, "o", "", "Output file path")
	f.StringVar(&c.outputFormat, "of", "", "Output file format (index, sqlite)")
	f.BoolVar(&c.hilbert, "hilbert", false, "Write tiles in Hilbert curve order")
}

func (c *exportCmd) tileIDs(g *grid.Grid) ([]int, error) {
	rect, err := parseRect(c.bbox, g)
	if err != nil {
		return nil, err
	}
	tileIDs := g.TileList(rect, g.TileCount())
	if c.hilbert {
		if err := g.HilbertSort(tileIDs); err != nil {
			return nil, err
		}
	}
	return tileIDs, nil
}

func (c *exportCmd) exportIndex(g *grid.Grid, tileIDs []int) error {
	items, err := index.FromGrid(g, tileIDs)
	if err != nil {
		return err
	}

	file, err := os.Create(c.outputPath)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if err := index.WriteAll(items, w); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return file.Close()
}

func (c *exportCmd) exportSqlite(g *grid.Grid, tileIDs []int) error {
	items, err := index.FromGrid(g, tileIDs)
	if err != nil {
		return err
	}

	writer, err := tiledb.NewWriter(c.outputPath, g, tiledb.WithLogger(slog.Default()))
	if err != nil {
		return err
	}
	defer writer.Close()

	bar := progressbar.NewOptions(len(items), progressbar.OptionShowIts(), progressbar.OptionShowCount())

	for _, item := range items {
		if err := writer.WriteTile(item); err != nil {
			return err
		}
		bar.Add(1)
	}

	bar.Finish()
	fmt.Println()

	return writer.Finalize()
}

func (c *exportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	g, err := c.grid()
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	tileIDs, err := c.tileIDs(g)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	switch deduceFormat(c.outputFormat, c.outputPath) {
	case "index":
		err = c.exportIndex(g, tileIDs)
	case "sqlite":
		err = c.exportSqlite(g, tileIDs)
	default:
		log.Printf("invalid output format: %q", c.outputFormat)
		return subcommands.ExitFailure
	}

	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
