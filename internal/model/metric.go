package model

import (
	"encoding/json"
	"fmt"
	"math"
)

// metricKind discriminates the three value classes a rate metric can take.
type metricKind int

const (
	metricFinite metricKind = iota
	metricInfinite
	metricUndefined
)

// Wire tokens for the non-finite metric classes. These are reserved strings
// so that JSON consumers can tell "no dismissals yet" (Infinity) and
// "no wickets yet" (NaN) apart from an ordinary zero.
const (
	tokenInfinity  = "Infinity"
	tokenUndefined = "NaN"
)

// Metric is a derived-rate result: a finite number, positive infinity
// (zero-dismissal averages), or undefined (zero-wicket strike rates).
// The zero value is Finite(0).
type Metric struct {
	kind  metricKind
	value float64
}

// Finite returns a finite metric rounded to 2 decimal places.
func Finite(v float64) Metric {
	return Metric{kind: metricFinite, value: math.Round(v*100) / 100}
}

// Infinite returns the positive-infinity sentinel.
func Infinite() Metric { return Metric{kind: metricInfinite} }

// Undefined returns the not-a-number sentinel.
func Undefined() Metric { return Metric{kind: metricUndefined} }

func (m Metric) IsFinite() bool    { return m.kind == metricFinite }
func (m Metric) IsInfinite() bool  { return m.kind == metricInfinite }
func (m Metric) IsUndefined() bool { return m.kind == metricUndefined }

// Value returns the finite value and true, or 0 and false for the sentinels.
func (m Metric) Value() (float64, bool) {
	if m.kind != metricFinite {
		return 0, false
	}
	return m.value, true
}

func (m Metric) String() string {
	switch m.kind {
	case metricInfinite:
		return "inf"
	case metricUndefined:
		return "-"
	default:
		return fmt.Sprintf("%.2f", m.value)
	}
}

// MarshalJSON encodes finite values as JSON numbers and the sentinels as the
// reserved strings "Infinity" and "NaN".
func (m Metric) MarshalJSON() ([]byte, error) {
	switch m.kind {
	case metricInfinite:
		return json.Marshal(tokenInfinity)
	case metricUndefined:
		return json.Marshal(tokenUndefined)
	default:
		return json.Marshal(m.value)
	}
}

// UnmarshalJSON accepts either a number or one of the reserved tokens.
func (m *Metric) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		switch s {
		case tokenInfinity:
			*m = Infinite()
			return nil
		case tokenUndefined:
			*m = Undefined()
			return nil
		default:
			return fmt.Errorf("metric: unknown token %q", s)
		}
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("metric: %w", err)
	}
	*m = Metric{kind: metricFinite, value: v}
	return nil
}
