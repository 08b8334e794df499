package domain

import (
	"encoding/json"
	"time"
)

const DateLayout = "2006-01-02"

// Date is a calendar date without a time of day. It marshals as YYYY-MM-DD.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

func Today() Date {
	now := time.Now().UTC()
	return NewDate(now.Year(), now.Month(), now.Day())
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// FlightQuery is a validated flight lookup. Place and Date are optional.
type FlightQuery struct {
	AccessToken string
	Place       string
	Date        *Date
}

type FlightSummaryQuery struct {
	AccessToken string
	Flight      string
}

// FlightCounts is the raw record returned by a flight data provider.
type FlightCounts struct {
	Place      string `json:"place"`
	Date       Date   `json:"date"`
	Departures int    `json:"numberOfDepartures"`
	Arrivals   int    `json:"numberOfArrivals"`
}

type FlightResponse struct {
	Place              string `json:"place"`
	Date               Date   `json:"date"`
	NumberOfDepartures int    `json:"numberOfDepartures"`
	NumberOfArrivals   int    `json:"numberOfArrivals"`
}
