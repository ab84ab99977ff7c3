package query

import (
	"github.com/legside/cricstats/internal/dataset"
	"github.com/legside/cricstats/internal/model"
)

// View is a restriction of the Dataset: a set of row indices, never a copy
// of the rows. The zero-row view is valid; downstream reducers yield empty
// maps for it rather than faulting.
type View struct {
	ds   *dataset.Dataset
	rows []int32 // nil = every row
}

// All returns the unrestricted view over the dataset.
func All(ds *dataset.Dataset) View {
	return View{ds: ds}
}

// Where narrows the view to deliveries matching the predicate.
func (v View) Where(p Predicate) View {
	var rows []int32
	v.Each(func(i int32, d *model.Delivery) {
		if p(d) {
			rows = append(rows, i)
		}
	})
	if rows == nil {
		rows = []int32{}
	}
	return View{ds: v.ds, rows: rows}
}

// Len returns the number of deliveries in the view.
func (v View) Len() int {
	if v.rows == nil {
		return v.ds.Len()
	}
	return len(v.rows)
}

// Empty reports whether the view holds no deliveries.
func (v View) Empty() bool { return v.Len() == 0 }

// Each calls fn for every delivery in the view, in dataset order.
func (v View) Each(fn func(i int32, d *model.Delivery)) {
	if v.rows == nil {
		for i := 0; i < v.ds.Len(); i++ {
			fn(int32(i), v.ds.At(i))
		}
		return
	}
	for _, i := range v.rows {
		fn(i, v.ds.At(int(i)))
	}
}
