package tiledb

import (
	"database/sql"
	"errors"
	"log/slog"
	"maps"

	"github.com/eak1mov/go-tilegrid/grid"
	"github.com/eak1mov/go-tilegrid/index"
)

// Writer stores a grid layout and the geometry of its tiles in a SQLite file.
type Writer struct {
	db     *sql.DB
	stmt   *sql.Stmt
	logger *slog.Logger
}

type writerConfig struct {
	Metadata map[string]string
	Logger   *slog.Logger
}

type WriterOption func(*writerConfig)

// WithMetadata adds extra metadata rows. Keys describing the grid layout
// (extent, tilesize, columns, rows, wrap) are always taken from the grid.
func WithMetadata(metadata map[string]string) WriterOption {
	return func(c *writerConfig) { c.Metadata = metadata }
}

func WithLogger(logger *slog.Logger) WriterOption {
	return func(c *writerConfig) { c.Logger = logger }
}

// NewWriter creates a new SQLite file describing the layout of g.
// Tiles are added with WriteTile.
func NewWriter(filePath string, g *grid.Grid, opts ...WriterOption) (*Writer, error) {
	config := writerConfig{
		Logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&config)
	}

	var err error
	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			db.Close()
		}
	}()

	_, err = db.Exec(`
		CREATE TABLE metadata (name TEXT, value TEXT);
		CREATE TABLE tiles (
			tile_id INTEGER,
			tile_column INTEGER,
			tile_row INTEGER,
			min_x REAL,
			min_y REAL,
			max_x REAL,
			max_y REAL
		);
	`)
	if err != nil {
		return nil, err
	}

	metadata := make(map[string]string)
	maps.Copy(metadata, config.Metadata)
	maps.Copy(metadata, gridMetadata(g))

	for k, v := range metadata {
		_, err = db.Exec("INSERT INTO metadata (name, value) VALUES (?, ?)", k, v)
		if err != nil {
			return nil, err
		}
	}

	stmt, err := db.Prepare(`INSERT INTO tiles
		(tile_id, tile_column, tile_row, min_x, min_y, max_x, max_y)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, err
	}

	config.Logger.Debug("tilegrid: created tile database", "path", filePath, "grid", g.String())
	return &Writer{db, stmt, config.Logger}, nil
}

func (w *Writer) Close() error {
	return errors.Join(w.stmt.Close(), w.db.Close())
}

func (w *Writer) WriteTile(item index.Item) error {
	_, err := w.stmt.Exec(item.ID, item.Col, item.Row, item.MinX, item.MinY, item.MaxX, item.MaxY)
	return err
}

func (w *Writer) Finalize() error {
	w.logger.Debug("tilegrid: creating index")
	_, err := w.db.Exec("CREATE UNIQUE INDEX tile_index ON tiles (tile_id)")

	w.logger.Debug("tilegrid: done!")
	return err
}
