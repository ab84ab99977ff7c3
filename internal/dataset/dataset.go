// Package dataset holds the immutable in-memory table of deliveries that
// every report is computed from. A Dataset is built once, from CSV or from
// the sqlite store, and never mutates, so concurrent queries need no
// locking.
package dataset

import "github.com/legside/cricstats/internal/model"

// Dataset is the shared read-only delivery table. Construct with New; the
// handle is passed explicitly into report functions (no package-level state).
type Dataset struct {
	rows []model.Delivery
}

// New builds a Dataset from the given rows. The slice is copied so later
// mutation of the caller's slice cannot leak into the Dataset.
func New(rows []model.Delivery) *Dataset {
	own := make([]model.Delivery, len(rows))
	copy(own, rows)
	return &Dataset{rows: own}
}

// Len returns the number of deliveries.
func (d *Dataset) Len() int { return len(d.rows) }

// At returns the i-th delivery. The pointer is valid for the lifetime of the
// Dataset; callers must not write through it.
func (d *Dataset) At(i int) *model.Delivery { return &d.rows[i] }
