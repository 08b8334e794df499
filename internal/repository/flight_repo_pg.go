package repository

import (
	"context"
	"time"

	"github.com/Domenick1991/flightasset/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FlightRepository counts departures and arrivals recorded in the flights table.
type FlightRepository interface {
	CountMovements(ctx context.Context, place string, date domain.Date) (*domain.FlightCounts, error)
	SummaryByAirport(ctx context.Context, date domain.Date) ([]domain.FlightCounts, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

// CountMovements counts flights leaving and reaching place on date. An empty
// place counts every airport.
func (r *PGFlightRepository) CountMovements(ctx context.Context, place string, date domain.Date) (*domain.FlightCounts, error) {
	from, to := dayBounds(date)
	counts := &domain.FlightCounts{Place: place, Date: date}
	err := r.db.QueryRow(ctx, `SELECT
			count(*) FILTER (WHERE ($1 = '' OR from_airport = $1) AND departure_time >= $2 AND departure_time < $3),
			count(*) FILTER (WHERE ($1 = '' OR to_airport = $1) AND arrival_time >= $2 AND arrival_time < $3)
		FROM flights`, place, from, to).Scan(&counts.Departures, &counts.Arrivals)
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *PGFlightRepository) SummaryByAirport(ctx context.Context, date domain.Date) ([]domain.FlightCounts, error) {
	from, to := dayBounds(date)
	rows, err := r.db.Query(ctx, `WITH movements AS (
			SELECT from_airport AS place, 1 AS dep, 0 AS arr FROM flights WHERE departure_time >= $1 AND departure_time < $2
			UNION ALL
			SELECT to_airport AS place, 0 AS dep, 1 AS arr FROM flights WHERE arrival_time >= $1 AND arrival_time < $2
		)
		SELECT place, sum(dep)::int, sum(arr)::int FROM movements GROUP BY place ORDER BY place`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summary := make([]domain.FlightCounts, 0)
	for rows.Next() {
		c := domain.FlightCounts{Date: date}
		if err := rows.Scan(&c.Place, &c.Departures, &c.Arrivals); err != nil {
			return nil, err
		}
		summary = append(summary, c)
	}
	return summary, rows.Err()
}

func dayBounds(date domain.Date) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

var _ FlightRepository = (*PGFlightRepository)(nil)
