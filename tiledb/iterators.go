package tiledb

import (
	"errors"
	"iter"

	"github.com/eak1mov/go-tilegrid/index"
)

var errVisitCancelled = errors.New("visit cancelled")

// IterTiles returns an iterator over all stored tiles, see VisitTiles.
// Iteration panics on database errors.
func (r *Reader) IterTiles() iter.Seq[index.Item] {
	return func(yield func(index.Item) bool) {
		err := r.VisitTiles(func(item index.Item) error {
			if !yield(item) {
				return errVisitCancelled
			}
			return nil
		})
		if err != nil && !errors.Is(err, errVisitCancelled) {
			panic(err)
		}
	}
}
