package geo_test

import (
	"testing"

	"github.com/UnknownOlympus/geokit/pkg/geo"
	"github.com/UnknownOlympus/geokit/pkg/measure"
	"github.com/stretchr/testify/assert"
)

func TestDistanceTo(t *testing.T) {
	t.Parallel()

	t.Run("measured scenario", func(t *testing.T) {
		t.Parallel()
		locationA := geo.New(40.7885447, -111.7656248)
		locationB := geo.New(40.7945846, -111.6950349)

		distance := locationA.DistanceTo(locationB)

		assert.Equal(t, measure.Kilometers, distance.Unit())
		assert.True(t, distance.Equal(measure.FromKilometers(5.9868)))
	})

	t.Run("coincident points", func(t *testing.T) {
		t.Parallel()
		location := geo.New(40.7885447, -111.7656248)

		distance := location.DistanceTo(location)

		assert.True(t, distance.Equal(measure.FromKilometers(0)))
	})

	t.Run("symmetric", func(t *testing.T) {
		t.Parallel()
		locationA := geo.New(40.7885447, -111.7656248)
		locationB := geo.New(40.7945846, -111.6950349)

		forward := locationA.DistanceTo(locationB)
		backward := locationB.DistanceTo(locationA)

		assert.InDelta(t, forward.Kilometers(), backward.Kilometers(), 0.001)
	})

	t.Run("across the equator", func(t *testing.T) {
		t.Parallel()
		distance := geo.New(10, 0).DistanceTo(geo.New(-10, 0))

		// ~2226 km for 20 degrees of latitude.
		assert.Greater(t, distance.Kilometers(), 2200.0)
		assert.Less(t, distance.Kilometers(), 2250.0)
	})

	t.Run("across the prime meridian", func(t *testing.T) {
		t.Parallel()
		distance := geo.New(0, -10).DistanceTo(geo.New(0, 10))

		assert.Greater(t, distance.Kilometers(), 2200.0)
		assert.Less(t, distance.Kilometers(), 2250.0)
	})

	t.Run("across the date line", func(t *testing.T) {
		t.Parallel()
		distance := geo.New(0, 170).DistanceTo(geo.New(0, -170))

		assert.Greater(t, distance.Kilometers(), 2200.0)
		assert.Less(t, distance.Kilometers(), 2250.0)
	})
}

func TestAdd(t *testing.T) {
	t.Parallel()

	origin := geo.New(40.7885447, -111.7656248)
	step := measure.FromKilometers(8.2)

	t.Run("north, known offset", func(t *testing.T) {
		t.Parallel()
		moved := origin.Add(step, geo.North)

		assert.True(t, moved.Equal(geo.New(40.8622065532978, -111.7656248)))
	})

	t.Run("south", func(t *testing.T) {
		t.Parallel()
		moved := origin.Add(step, geo.South)

		assert.Less(t, moved.Latitude, origin.Latitude)
		assert.InDelta(t, origin.Longitude, moved.Longitude, 0.0001)

		back := moved.Add(step, geo.North)
		assert.InDelta(t, origin.Latitude, back.Latitude, 0.0001)
	})

	t.Run("east", func(t *testing.T) {
		t.Parallel()
		moved := origin.Add(step, geo.East)

		assert.Greater(t, moved.Longitude, origin.Longitude)
		assert.InDelta(t, origin.Latitude, moved.Latitude, 0.0001)
	})

	t.Run("west", func(t *testing.T) {
		t.Parallel()
		moved := origin.Add(step, geo.West)

		assert.Less(t, moved.Longitude, origin.Longitude)
		assert.InDelta(t, origin.Latitude, moved.Latitude, 0.0001)

		back := moved.Add(step, geo.East)
		assert.InDelta(t, origin.Longitude, back.Longitude, 0.0001)
	})

	t.Run("zero distance is a no-op", func(t *testing.T) {
		t.Parallel()
		zero := measure.FromKilometers(0)
		for _, direction := range []geo.Direction{geo.North, geo.South, geo.East, geo.West} {
			assert.True(t, origin.Equal(origin.Add(zero, direction)),
				"zero offset %s moved the point", direction)
		}
	})

	t.Run("north then south returns home", func(t *testing.T) {
		t.Parallel()
		start := geo.New(40, -111)
		distance := measure.FromKilometers(100)

		returned := start.Add(distance, geo.North).Add(distance, geo.South)

		assert.InDelta(t, start.Latitude, returned.Latitude, 0.0001)
		assert.InDelta(t, start.Longitude, returned.Longitude, 0.0001)
	})

	t.Run("east then west returns home", func(t *testing.T) {
		t.Parallel()
		start := geo.New(40, -111)
		distance := measure.FromKilometers(100)

		returned := start.Add(distance, geo.East).Add(distance, geo.West)

		assert.InDelta(t, start.Latitude, returned.Latitude, 0.0001)
		assert.InDelta(t, start.Longitude, returned.Longitude, 0.0001)
	})

	t.Run("east at the pole degenerates without panicking", func(t *testing.T) {
		t.Parallel()
		pole := geo.New(90, 0)

		var moved geo.Location
		assert.NotPanics(t, func() {
			moved = pole.Add(measure.FromKilometers(1), geo.East)
		})

		// cos(90 degrees) is zero; the longitude blows far out of range.
		assert.Equal(t, 90.0, moved.Latitude)
		assert.False(t, moved.Longitude >= -180 && moved.Longitude <= 180)
	})
}

func TestEstimateDistance(t *testing.T) {
	t.Parallel()

	t.Run("same location", func(t *testing.T) {
		t.Parallel()
		location := geo.New(40, -111)
		assert.Zero(t, location.EstimateDistance(location))
	})

	t.Run("sum of degree deltas", func(t *testing.T) {
		t.Parallel()
		estimate := geo.New(40, -111).EstimateDistance(geo.New(41, -110))
		assert.InDelta(t, 2.0, estimate, 0.0001)
	})

	t.Run("symmetric", func(t *testing.T) {
		t.Parallel()
		locationA := geo.New(40, -111)
		locationB := geo.New(45, -100)

		assert.InDelta(t,
			locationA.EstimateDistance(locationB),
			locationB.EstimateDistance(locationA),
			0.0001)
	})
}

func TestCenterPoint(t *testing.T) {
	t.Parallel()

	center := geo.CenterPoint([]geo.Location{
		geo.New(40, -110),
		geo.New(42, -112),
		geo.New(44, -114),
	})

	assert.True(t, center.Equal(geo.New(42, -112)))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "40.7885447,-111.7656248", geo.New(40.7885447, -111.7656248).String())
	assert.Equal(t, "east", geo.East.String())
}
