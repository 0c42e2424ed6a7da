package measure

// Unit represents a supported unit of length.
type Unit int

// The supported distance units. Conversion between any two units goes
// through meters, the canonical base unit.
const (
	Centimeters Unit = iota
	Meters
	Kilometers
	Inches
	Feet
	Yards
	Miles
)

// Meters returns the number of meters in one of this unit.
func (u Unit) Meters() float64 {
	switch u {
	case Centimeters:
		return 0.01
	case Meters:
		return 1
	case Kilometers:
		return 1000
	case Inches:
		return 0.0254
	case Feet:
		return 0.3048
	case Yards:
		return 0.9144
	case Miles:
		return 1609.344
	default:
		return 1
	}
}

// Abbreviation returns the short symbol for the unit (e.g. "km").
func (u Unit) Abbreviation() string {
	switch u {
	case Centimeters:
		return "cm"
	case Meters:
		return "m"
	case Kilometers:
		return "km"
	case Inches:
		return "in"
	case Feet:
		return "ft"
	case Yards:
		return "yd"
	case Miles:
		return "mi"
	default:
		return "m"
	}
}

// String returns the full lowercase name of the unit.
func (u Unit) String() string {
	switch u {
	case Centimeters:
		return "centimeters"
	case Meters:
		return "meters"
	case Kilometers:
		return "kilometers"
	case Inches:
		return "inches"
	case Feet:
		return "feet"
	case Yards:
		return "yards"
	case Miles:
		return "miles"
	default:
		return "meters"
	}
}

// UnitFromAbbreviation resolves a unit symbol back to its Unit value.
// It returns false when the symbol is not a known unit.
func UnitFromAbbreviation(abbr string) (Unit, bool) {
	for _, u := range []Unit{Centimeters, Meters, Kilometers, Inches, Feet, Yards, Miles} {
		if u.Abbreviation() == abbr {
			return u, true
		}
	}
	return Meters, false
}
