package tiledb

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/eak1mov/go-tilegrid/grid"
	"github.com/paulmach/orb"
)

var ErrInvalidMetadata = errors.New("tilegrid: invalid grid metadata")

const (
	keyExtent   = "extent"
	keyTileSize = "tilesize"
	keyColumns  = "columns"
	keyRows     = "rows"
	keyWrap     = "wrap"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func gridMetadata(g *grid.Grid) map[string]string {
	extent := g.Extent()
	return map[string]string{
		keyExtent: fmt.Sprintf("%s,%s,%s,%s",
			formatFloat(extent.Min[0]), formatFloat(extent.Min[1]),
			formatFloat(extent.Max[0]), formatFloat(extent.Max[1])),
		keyTileSize: formatFloat(g.TileSize()),
		keyColumns:  strconv.Itoa(g.Columns()),
		keyRows:     strconv.Itoa(g.Rows()),
		keyWrap:     strconv.FormatBool(g.Wrap()),
	}
}

// ParseExtent parses "minx,miny,maxx,maxy".
func ParseExtent(value string) (orb.Bound, error) {
	fields := strings.Split(value, ",")
	if len(fields) != 4 {
		return orb.Bound{}, fmt.Errorf("%w: extent %q: want 4 values, got %d", ErrInvalidMetadata, value, len(fields))
	}
	var coords [4]float64
	for i, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return orb.Bound{}, fmt.Errorf("%w: extent %q: %w", ErrInvalidMetadata, value, err)
		}
		coords[i] = v
	}
	return orb.Bound{
		Min: orb.Point{coords[0], coords[1]},
		Max: orb.Point{coords[2], coords[3]},
	}, nil
}

func parseGrid(metadata map[string]string, opts ...grid.Option) (*grid.Grid, error) {
	for _, key := range []string{keyExtent, keyTileSize} {
		if _, found := metadata[key]; !found {
			return nil, fmt.Errorf("%w: missing %q", ErrInvalidMetadata, key)
		}
	}

	extent, err := ParseExtent(metadata[keyExtent])
	if err != nil {
		return nil, err
	}
	tileSize, err := strconv.ParseFloat(metadata[keyTileSize], 64)
	if err != nil {
		return nil, fmt.Errorf("%w: tile size: %w", ErrInvalidMetadata, err)
	}

	if wrapValue, found := metadata[keyWrap]; found {
		wrap, err := strconv.ParseBool(wrapValue)
		if err != nil {
			return nil, fmt.Errorf("%w: wrap: %w", ErrInvalidMetadata, err)
		}
		opts = append([]grid.Option{grid.WithWrap(wrap)}, opts...)
	}

	g, err := grid.New(extent, tileSize, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMetadata, err)
	}

	// Columns and rows are derived, but must agree with what the writer saw.
	for key, want := range map[string]int{keyColumns: g.Columns(), keyRows: g.Rows()} {
		value, found := metadata[key]
		if !found {
			continue
		}
		if got, err := strconv.Atoi(value); err != nil || got != want {
			return nil, fmt.Errorf("%w: %s = %q, want %d", ErrInvalidMetadata, key, value, want)
		}
	}

	return g, nil
}
