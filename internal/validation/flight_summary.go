package validation

import "github.com/Domenick1991/flightasset/internal/domain"

const (
	SummaryFlightType = "summary"
	MsgFlightType     = `Invalid flight type. Expected "summary".`
)

type FlightSummaryRequest struct {
	AccessToken *string `json:"access_token" validate:"required,notblank,max=255"`
	Flight      *string `json:"flight" validate:"required,notblank,max=50"`
}

// ValidateFlightSummary accepts only the literal "summary" flight type.
func ValidateFlightSummary(req FlightSummaryRequest) (domain.FlightSummaryQuery, error) {
	if err := checkStruct(req); err != nil {
		return domain.FlightSummaryQuery{}, err
	}
	if *req.Flight != SummaryFlightType {
		return domain.FlightSummaryQuery{}, fieldError("flight", MsgFlightType)
	}
	return domain.FlightSummaryQuery{
		AccessToken: *req.AccessToken,
		Flight:      *req.Flight,
	}, nil
}
