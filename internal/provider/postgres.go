package provider

import (
	"context"

	"github.com/Domenick1991/flightasset/internal/domain"
	"github.com/Domenick1991/flightasset/internal/repository"
)

// PostgresProvider answers lookups from the local flights table. The access
// token is not needed for local data and is ignored.
type PostgresProvider struct {
	repo repository.FlightRepository
}

func NewPostgresProvider(repo repository.FlightRepository) *PostgresProvider {
	return &PostgresProvider{repo: repo}
}

func (p *PostgresProvider) Counts(ctx context.Context, _ string, place string, date domain.Date) (*domain.FlightCounts, error) {
	return p.repo.CountMovements(ctx, place, date)
}

func (p *PostgresProvider) Summary(ctx context.Context, _ string, date domain.Date) ([]domain.FlightCounts, error) {
	return p.repo.SummaryByAirport(ctx, date)
}
