package provider

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/flightasset/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) CountMovements(ctx context.Context, place string, date domain.Date) (*domain.FlightCounts, error) {
	args := m.Called(ctx, place, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FlightCounts), args.Error(1)
}

func (m *MockFlightRepository) SummaryByAirport(ctx context.Context, date domain.Date) ([]domain.FlightCounts, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FlightCounts), args.Error(1)
}

func TestPostgresProvider_IgnoresAccessToken(t *testing.T) {
	repo := &MockFlightRepository{}
	p := NewPostgresProvider(repo)
	ctx := context.Background()
	date := domain.NewDate(2024, time.May, 1)

	want := &domain.FlightCounts{Place: "SVO", Date: date, Departures: 4, Arrivals: 2}
	repo.On("CountMovements", ctx, "SVO", date).Return(want, nil).Once()
	repo.On("SummaryByAirport", ctx, date).Return([]domain.FlightCounts{*want}, nil).Once()

	got, err := p.Counts(ctx, "any-token", "SVO", date)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	summary, err := p.Summary(ctx, "any-token", date)
	require.NoError(t, err)
	assert.Len(t, summary, 1)
	repo.AssertExpectations(t)
}
