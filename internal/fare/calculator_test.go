package fare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultCalc() *Calculator {
	return NewCalculator(NewRouteTable(DefaultRoutes(), DefaultDistanceKm))
}

func TestEstimate_KnownRoute(t *testing.T) {
	t.Parallel()

	quote, err := defaultCalc().Estimate("Adyar", "Guindy")
	require.NoError(t, err)

	assert.Equal(t, 7.0, quote.DistanceKm)
	assert.Equal(t, 10.0, quote.RatePerKm)
	assert.Equal(t, 70.00, quote.Amount)
}

func TestEstimate_DirectionDoesNotMatter(t *testing.T) {
	t.Parallel()

	calc := defaultCalc()

	forward, err := calc.Estimate("Adyar", "Tambaram")
	require.NoError(t, err)
	backward, err := calc.Estimate("Tambaram", "Adyar")
	require.NoError(t, err)

	assert.Equal(t, forward.DistanceKm, backward.DistanceKm)
	assert.Equal(t, forward.Amount, backward.Amount)
}

func TestEstimate_Deterministic(t *testing.T) {
	t.Parallel()

	calc := defaultCalc()

	first, err := calc.Estimate("Marina", "Velachery")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := calc.Estimate("Marina", "Velachery")
		require.NoError(t, err)
		assert.Equal(t, first.Amount, again.Amount)
	}
}

func TestEstimate_CaseInsensitiveAndTrimmed(t *testing.T) {
	t.Parallel()

	quote, err := defaultCalc().Estimate(" adyar ", "GUINDY")
	require.NoError(t, err)

	assert.Equal(t, "Adyar", quote.Source)
	assert.Equal(t, "Guindy", quote.Destination)
	assert.Equal(t, 70.00, quote.Amount)
}

func TestEstimate_UnknownLocation(t *testing.T) {
	t.Parallel()

	calc := defaultCalc()

	_, err := calc.Estimate("Atlantis", "Guindy")
	assert.ErrorIs(t, err, ErrUnknownLocation)

	_, err = calc.Estimate("Guindy", "Atlantis")
	assert.ErrorIs(t, err, ErrUnknownLocation)
}

func TestEstimate_UnmappedPairUsesDefaultDistance(t *testing.T) {
	t.Parallel()

	// Kelambakkam and Marina are both known locations but have no
	// direct table entry, so the default 15 km applies at the 9/km tier.
	quote, err := defaultCalc().Estimate("Kelambakkam", "Marina")
	require.NoError(t, err)

	assert.Equal(t, DefaultDistanceKm, quote.DistanceKm)
	assert.Equal(t, 9.0, quote.RatePerKm)
	assert.Equal(t, 135.00, quote.Amount)
}

func TestRateTiers(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		km       float64
		wantRate float64
		wantFare float64
	}{
		{"base tier", 7.0, 10.0, 70.00},
		{"boundary at 10 stays base", 10.0, 10.0, 100.00},
		{"just over 10", 10.5, 9.0, 94.50},
		{"boundary at 20 stays mid", 20.0, 9.0, 180.00},
		{"over 20", 26.0, 8.0, 208.00},
		{"boundary at 30", 30.0, 8.0, 240.00},
		{"over 30", 36.0, 7.0, 252.00},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			table := NewRouteTable([]Route{{"A", "B", tc.km}}, DefaultDistanceKm)
			quote, err := NewCalculator(table).Estimate("A", "B")
			require.NoError(t, err)

			assert.Equal(t, tc.wantRate, quote.RatePerKm)
			assert.Equal(t, tc.wantFare, quote.Amount)
		})
	}
}

func TestFareIsRoundedToPaise(t *testing.T) {
	t.Parallel()

	table := NewRouteTable([]Route{{"A", "B", 10.333}, {"A", "C", 1}}, DefaultDistanceKm)
	quote, err := NewCalculator(table).Estimate("A", "B")
	require.NoError(t, err)

	// 10.333 * 9.0 = 92.997, rounded to two decimals.
	assert.Equal(t, 93.00, quote.Amount)
}

func TestLocations_SortedClosedSet(t *testing.T) {
	t.Parallel()

	locations := defaultCalc().Locations()
	require.NotEmpty(t, locations)

	assert.IsIncreasing(t, locations)
	assert.Contains(t, locations, "Adyar")
	assert.Contains(t, locations, "Sholinganallur")
	assert.NotContains(t, locations, "adyar")
}

func TestRouteTable_KeyCanonicalization(t *testing.T) {
	t.Parallel()

	table := NewRouteTable([]Route{{"Zeta", "Alpha", 12.0}}, DefaultDistanceKm)

	assert.Equal(t, 12.0, table.Distance("Zeta", "Alpha"))
	assert.Equal(t, 12.0, table.Distance("Alpha", "Zeta"))
}
