package validation

import (
	"unicode/utf8"

	"github.com/Domenick1991/flightasset/internal/domain"
)

const (
	MsgPlaceLength = "Place code must be exactly 3 characters."
	MsgDateFormat  = "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."

	placeCodeLength = 3
)

type FlightQueryRequest struct {
	AccessToken *string `json:"access_token" validate:"required,notblank,max=255"`
	Place       *string `json:"place"`
	Date        *string `json:"date"`
}

// ValidateFlightQuery checks a place/date lookup. Place and date are optional,
// but a value that is present, even an empty one, must be well formed.
func ValidateFlightQuery(req FlightQueryRequest) (domain.FlightQuery, error) {
	var errs Errors
	if err := checkStruct(req); err != nil {
		tagErrs, ok := AsErrors(err)
		if !ok {
			return domain.FlightQuery{}, err
		}
		errs = append(errs, tagErrs...)
	}

	var q domain.FlightQuery
	if req.AccessToken != nil {
		q.AccessToken = *req.AccessToken
	}

	if req.Place != nil {
		if utf8.RuneCountInString(*req.Place) != placeCodeLength {
			errs = append(errs, FieldError{Field: "place", Message: MsgPlaceLength})
		} else {
			q.Place = *req.Place
		}
	}

	if req.Date != nil {
		d, err := domain.ParseDate(*req.Date)
		if err != nil {
			errs = append(errs, FieldError{Field: "date", Message: MsgDateFormat})
		} else {
			q.Date = &d
		}
	}

	if len(errs) > 0 {
		return domain.FlightQuery{}, errs
	}
	return q, nil
}
