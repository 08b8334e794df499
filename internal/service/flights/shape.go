package flights

import "github.com/Domenick1991/flightasset/internal/domain"

// ShapeFlightResponse projects a provider record onto the response shape.
// Counts are passed through as-is; negative values are not rejected.
func ShapeFlightResponse(counts domain.FlightCounts) domain.FlightResponse {
	return domain.FlightResponse{
		Place:              counts.Place,
		Date:               counts.Date,
		NumberOfDepartures: counts.Departures,
		NumberOfArrivals:   counts.Arrivals,
	}
}
