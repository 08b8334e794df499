package validation

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFlightQuery_Scenario(t *testing.T) {
	q, err := ValidateFlightQuery(FlightQueryRequest{
		AccessToken: strPtr("tok"),
		Place:       strPtr("JFK"),
		Date:        strPtr("2024-05-01"),
	})

	require.NoError(t, err)
	assert.Equal(t, "tok", q.AccessToken)
	assert.Equal(t, "JFK", q.Place)
	require.NotNil(t, q.Date)
	assert.Equal(t, 2024, q.Date.Year())
	assert.Equal(t, time.May, q.Date.Month())
	assert.Equal(t, 1, q.Date.Day())
}

func TestValidateFlightQuery_PlaceLength(t *testing.T) {
	testCases := []struct {
		place   string
		wantErr bool
	}{
		{place: "", wantErr: true},
		{place: "J", wantErr: true},
		{place: "JF", wantErr: true},
		{place: "JFK", wantErr: false},
		{place: "JFKX", wantErr: true},
		{place: "ÅÄÖ", wantErr: false},
	}

	for _, tc := range testCases {
		t.Run("place="+tc.place, func(t *testing.T) {
			q, err := ValidateFlightQuery(FlightQueryRequest{AccessToken: strPtr("tok"), Place: strPtr(tc.place)})
			if !tc.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tc.place, q.Place)
				return
			}
			errs, ok := AsErrors(err)
			require.True(t, ok)
			assert.Equal(t, []string{MsgPlaceLength}, errs.Messages("place"))
		})
	}
}

func TestValidateFlightQuery_OptionalFieldsAbsent(t *testing.T) {
	q, err := ValidateFlightQuery(FlightQueryRequest{AccessToken: strPtr("tok")})

	require.NoError(t, err)
	assert.Empty(t, q.Place)
	assert.Nil(t, q.Date)
}

func TestValidateFlightQuery_BadDate(t *testing.T) {
	for _, date := range []string{"", "2024-13-01", "01/05/2024", "yesterday", "2024-02-30"} {
		t.Run(date, func(t *testing.T) {
			_, err := ValidateFlightQuery(FlightQueryRequest{AccessToken: strPtr("tok"), Date: strPtr(date)})

			errs, ok := AsErrors(err)
			require.True(t, ok)
			assert.Equal(t, []string{MsgDateFormat}, errs.Messages("date"))
		})
	}
}

func TestValidateFlightQuery_AccessToken(t *testing.T) {
	_, err := ValidateFlightQuery(FlightQueryRequest{Place: strPtr("JFK")})
	errs, ok := AsErrors(err)
	require.True(t, ok)
	assert.Equal(t, []string{msgRequired}, errs.Messages("access_token"))

	_, err = ValidateFlightQuery(FlightQueryRequest{AccessToken: strPtr(strings.Repeat("t", 256))})
	errs, ok = AsErrors(err)
	require.True(t, ok)
	assert.Equal(t, []string{"Ensure this field has no more than 255 characters."}, errs.Messages("access_token"))

	_, err = ValidateFlightQuery(FlightQueryRequest{AccessToken: strPtr(strings.Repeat("t", 255))})
	assert.NoError(t, err)
}

func TestValidateFlightQuery_CollectsEveryFieldError(t *testing.T) {
	_, err := ValidateFlightQuery(FlightQueryRequest{Place: strPtr("JF"), Date: strPtr("nope")})

	errs, ok := AsErrors(err)
	require.True(t, ok)
	assert.True(t, errs.Has("access_token"))
	assert.True(t, errs.Has("place"))
	assert.True(t, errs.Has("date"))
}

func TestValidateFlightQuery_PresentButEmptyFromJSON(t *testing.T) {
	testCases := []struct {
		name  string
		body  string
		field string
		msg   string
	}{
		{name: "empty place", body: `{"access_token":"tok","place":""}`, field: "place", msg: MsgPlaceLength},
		{name: "empty date", body: `{"access_token":"tok","date":""}`, field: "date", msg: MsgDateFormat},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var req FlightQueryRequest
			require.NoError(t, json.Unmarshal([]byte(tc.body), &req))

			_, err := ValidateFlightQuery(req)

			errs, ok := AsErrors(err)
			require.True(t, ok)
			assert.Equal(t, []string{tc.msg}, errs.Messages(tc.field))
		})
	}
}

func TestValidateFlightQuery_OmittedFieldsFromJSON(t *testing.T) {
	var req FlightQueryRequest
	require.NoError(t, json.Unmarshal([]byte(`{"access_token":"tok"}`), &req))

	q, err := ValidateFlightQuery(req)

	require.NoError(t, err)
	assert.Empty(t, q.Place)
	assert.Nil(t, q.Date)
}
