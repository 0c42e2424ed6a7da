// Package measure provides unit-safe distance values. A Distance is a
// magnitude tagged with a Unit; arithmetic normalizes the operands into a
// common unit before combining, so callers never silently mix units.
package measure

import (
	"encoding/json"
	"fmt"
	"math"
)

// Tolerance is the absolute tolerance, expressed in the left operand's
// unit, under which two distances compare equal. Unit conversion factors
// (miles per kilometer and friends) are not exactly representable, so
// round-tripped values differ from their origin in the last bits.
const Tolerance = 1e-3

// EqualWithin reports whether a and b differ by less than the given
// tolerance. Shared by every approximate comparison in this module.
func EqualWithin(a, b, tolerance float64) bool {
	return math.Abs(a-b) < tolerance
}

// Distance is an immutable length: a value tagged with its unit.
// The zero value is 0 centimeters, which equals 0 in any unit.
// All operations are total over finite floats; NaN and infinity
// propagate without validation.
type Distance struct {
	value float64
	unit  Unit
}

// New creates a Distance of the given value and unit. Negative values are
// legal and represent directional deltas.
func New(value float64, unit Unit) Distance {
	return Distance{value: value, unit: unit}
}

// FromCentimeters creates a Distance in centimeters.
func FromCentimeters(value float64) Distance { return New(value, Centimeters) }

// FromMeters creates a Distance in meters.
func FromMeters(value float64) Distance { return New(value, Meters) }

// FromKilometers creates a Distance in kilometers.
func FromKilometers(value float64) Distance { return New(value, Kilometers) }

// FromInches creates a Distance in inches.
func FromInches(value float64) Distance { return New(value, Inches) }

// FromFeet creates a Distance in feet.
func FromFeet(value float64) Distance { return New(value, Feet) }

// FromYards creates a Distance in yards.
func FromYards(value float64) Distance { return New(value, Yards) }

// FromMiles creates a Distance in miles.
func FromMiles(value float64) Distance { return New(value, Miles) }

// ConvertTo returns the same length expressed in the target unit.
// Converting back to the original unit yields a value equal to the
// original within Tolerance.
func (d Distance) ConvertTo(unit Unit) Distance {
	if d.unit == unit {
		return d
	}
	ratio := d.unit.Meters() / unit.Meters()
	return New(d.value*ratio, unit)
}

// In returns the numeric value of the distance expressed in the given unit.
func (d Distance) In(unit Unit) float64 {
	return d.ConvertTo(unit).value
}

// Value returns the raw magnitude in the distance's own unit.
func (d Distance) Value() float64 { return d.value }

// Unit returns the unit the distance is tagged with.
func (d Distance) Unit() Unit { return d.unit }

// Meters returns the distance expressed in meters.
func (d Distance) Meters() float64 { return d.In(Meters) }

// Kilometers returns the distance expressed in kilometers.
func (d Distance) Kilometers() float64 { return d.In(Kilometers) }

// Miles returns the distance expressed in miles.
func (d Distance) Miles() float64 { return d.In(Miles) }

// Add returns the sum of the two distances in d's unit.
func (d Distance) Add(other Distance) Distance {
	return New(d.value+other.In(d.unit), d.unit)
}

// Sub returns the difference of the two distances in d's unit.
// The result may be negative.
func (d Distance) Sub(other Distance) Distance {
	return New(d.value-other.In(d.unit), d.unit)
}

// Mul scales the distance by a scalar, keeping its unit.
func (d Distance) Mul(scalar float64) Distance {
	return New(d.value*scalar, d.unit)
}

// Div divides the distance by a scalar, keeping its unit.
func (d Distance) Div(scalar float64) Distance {
	return New(d.value/scalar, d.unit)
}

// Equal reports whether the two distances describe the same length,
// compared in d's unit within Tolerance.
func (d Distance) Equal(other Distance) bool {
	return EqualWithin(d.value, other.In(d.unit), Tolerance)
}

// Less reports whether d is strictly shorter than other.
func (d Distance) Less(other Distance) bool {
	return d.value < other.In(d.unit)
}

// Cmp compares the two lengths, returning -1, 0 or +1. Distances equal
// within Tolerance compare as 0.
func (d Distance) Cmp(other Distance) int {
	b := other.In(d.unit)
	switch {
	case EqualWithin(d.value, b, Tolerance):
		return 0
	case d.value < b:
		return -1
	default:
		return 1
	}
}

// String formats the distance as value plus unit symbol, e.g. "8.2km".
func (d Distance) String() string {
	return fmt.Sprintf("%.1f%s", d.value, d.unit.Abbreviation())
}

type distanceJSON struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// MarshalJSON encodes the distance as {"value": 8.2, "unit": "km"}.
func (d Distance) MarshalJSON() ([]byte, error) {
	return json.Marshal(distanceJSON{Value: d.value, Unit: d.unit.Abbreviation()})
}

// UnmarshalJSON decodes the representation produced by MarshalJSON.
func (d *Distance) UnmarshalJSON(data []byte) error {
	var raw distanceJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode distance: %w", err)
	}
	unit, ok := UnitFromAbbreviation(raw.Unit)
	if !ok {
		return fmt.Errorf("unknown distance unit %q", raw.Unit)
	}
	d.value = raw.Value
	d.unit = unit
	return nil
}
