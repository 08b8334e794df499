package flights

import (
	"context"
	"fmt"

	"github.com/Domenick1991/flightasset/internal/domain"
	"github.com/Domenick1991/flightasset/internal/validation"
	"github.com/rs/zerolog"
)

type FlightUseCase interface {
	Query(ctx context.Context, req validation.FlightQueryRequest) (*domain.FlightResponse, error)
	Summary(ctx context.Context, req validation.FlightSummaryRequest) ([]domain.FlightResponse, error)
}

// Provider is the upstream source of departure and arrival counts.
type Provider interface {
	Counts(ctx context.Context, accessToken, place string, date domain.Date) (*domain.FlightCounts, error)
	Summary(ctx context.Context, accessToken string, date domain.Date) ([]domain.FlightCounts, error)
}

type FlightCache interface {
	GetFlight(ctx context.Context, place string, date domain.Date) (*domain.FlightResponse, error)
	SetFlight(ctx context.Context, place string, date domain.Date, resp domain.FlightResponse) error
	GetSummary(ctx context.Context, date domain.Date) ([]domain.FlightResponse, error)
	SetSummary(ctx context.Context, date domain.Date, summary []domain.FlightResponse) error
}

type Recorder interface {
	CacheHit()
	CacheMiss()
	ProviderError()
}

type FlightService struct {
	provider Provider
	cache    FlightCache
	recorder Recorder
	log      zerolog.Logger
	today    func() domain.Date
}

type FlightServiceOption func(*FlightService)

func WithCache(cache FlightCache) FlightServiceOption {
	return func(s *FlightService) {
		s.cache = cache
	}
}

func WithRecorder(recorder Recorder) FlightServiceOption {
	return func(s *FlightService) {
		s.recorder = recorder
	}
}

func WithLogger(log zerolog.Logger) FlightServiceOption {
	return func(s *FlightService) {
		s.log = log
	}
}

func NewFlightService(provider Provider, opts ...FlightServiceOption) *FlightService {
	s := &FlightService{
		provider: provider,
		recorder: nopRecorder{},
		log:      zerolog.Nop(),
		today:    domain.Today,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Query returns departure and arrival counts for one airport, or for all
// airports when no place is given. A missing date means today.
func (s *FlightService) Query(ctx context.Context, req validation.FlightQueryRequest) (*domain.FlightResponse, error) {
	query, err := validation.ValidateFlightQuery(req)
	if err != nil {
		return nil, err
	}

	date := s.today()
	if query.Date != nil {
		date = *query.Date
	}

	if s.cache != nil {
		cached, err := s.cache.GetFlight(ctx, query.Place, date)
		if err != nil {
			s.log.Warn().Err(err).Str("place", query.Place).Stringer("date", date).Msg("flight cache read failed")
		} else if cached != nil {
			s.recorder.CacheHit()
			return cached, nil
		}
		s.recorder.CacheMiss()
	}

	counts, err := s.provider.Counts(ctx, query.AccessToken, query.Place, date)
	if err != nil {
		s.recorder.ProviderError()
		return nil, fmt.Errorf("query flight provider: %w", err)
	}

	resp := ShapeFlightResponse(*counts)
	if s.cache != nil {
		if err := s.cache.SetFlight(ctx, query.Place, date, resp); err != nil {
			s.log.Warn().Err(err).Str("place", query.Place).Msg("flight cache write failed")
		}
	}
	return &resp, nil
}

// Summary returns per-airport counts for today.
func (s *FlightService) Summary(ctx context.Context, req validation.FlightSummaryRequest) ([]domain.FlightResponse, error) {
	query, err := validation.ValidateFlightSummary(req)
	if err != nil {
		return nil, err
	}

	date := s.today()

	if s.cache != nil {
		cached, err := s.cache.GetSummary(ctx, date)
		if err != nil {
			s.log.Warn().Err(err).Stringer("date", date).Msg("summary cache read failed")
		} else if cached != nil {
			s.recorder.CacheHit()
			return cached, nil
		}
		s.recorder.CacheMiss()
	}

	records, err := s.provider.Summary(ctx, query.AccessToken, date)
	if err != nil {
		s.recorder.ProviderError()
		return nil, fmt.Errorf("query flight summary: %w", err)
	}

	summary := make([]domain.FlightResponse, 0, len(records))
	for _, r := range records {
		summary = append(summary, ShapeFlightResponse(r))
	}

	if s.cache != nil {
		if err := s.cache.SetSummary(ctx, date, summary); err != nil {
			s.log.Warn().Err(err).Msg("summary cache write failed")
		}
	}
	return summary, nil
}

type nopRecorder struct{}

func (nopRecorder) CacheHit()      {}
func (nopRecorder) CacheMiss()     {}
func (nopRecorder) ProviderError() {}

var _ FlightUseCase = (*FlightService)(nil)
