// Package tiledb provides API for storing a grid layout and the geometry of its
// tiles in a SQLite database.
//
// Note: User must properly initialize the sqlite3 library generic driver
// (e.g. import _ "github.com/mattn/go-sqlite3") before using this package.
package tiledb

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/eak1mov/go-tilegrid/grid"
	"github.com/eak1mov/go-tilegrid/index"
)

var ErrTileNotFound = errors.New("tilegrid: tile not found")

// Reader reads a database created by Writer.
type Reader struct {
	db   *sql.DB
	stmt *sql.Stmt
}

// NewReader creates a new Reader for the given database file path.
//
// The returned Reader must be closed after use to release database resources.
func NewReader(filePath string) (*Reader, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", filePath))
	if err != nil {
		return nil, err
	}

	stmt, err := db.Prepare(`SELECT tile_id, tile_column, tile_row, min_x, min_y, max_x, max_y
		FROM tiles WHERE tile_id = ?`)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Reader{db: db, stmt: stmt}, nil
}

func (r *Reader) Close() error {
	return errors.Join(r.stmt.Close(), r.db.Close())
}

func (r *Reader) ReadMetadata() (map[string]string, error) {
	metadata := make(map[string]string)

	rows, err := r.db.Query("SELECT name, value FROM metadata")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, err
		}
		metadata[name] = value
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return metadata, nil
}

// ReadGrid rebuilds the grid described by the database metadata.
// Options are applied after the stored ones.
func (r *Reader) ReadGrid(opts ...grid.Option) (*grid.Grid, error) {
	metadata, err := r.ReadMetadata()
	if err != nil {
		return nil, err
	}
	return parseGrid(metadata, opts...)
}

func (r *Reader) ReadTile(tileID int) (index.Item, error) {
	var item index.Item
	err := r.stmt.QueryRow(tileID).Scan(&item.ID, &item.Col, &item.Row, &item.MinX, &item.MinY, &item.MaxX, &item.MaxY)
	if errors.Is(err, sql.ErrNoRows) {
		return index.Item{}, fmt.Errorf("%w: %d", ErrTileNotFound, tileID)
	}
	if err != nil {
		return index.Item{}, err
	}
	return item, nil
}

// VisitTiles calls visitor for every stored tile in ascending tile ID order.
func (r *Reader) VisitTiles(visitor func(index.Item) error) error {
	rows, err := r.db.Query(`SELECT tile_id, tile_column, tile_row, min_x, min_y, max_x, max_y
		FROM tiles ORDER BY tile_id`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item index.Item
		if err := rows.Scan(&item.ID, &item.Col, &item.Row, &item.MinX, &item.MinY, &item.MaxX, &item.MaxY); err != nil {
			return err
		}
		if err := visitor(item); err != nil {
			return err
		}
	}

	if err := rows.Err(); err != nil {
		return err
	}

	return nil
}
