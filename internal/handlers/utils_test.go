package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"fire-tracker/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	e := echo.New()
	now := time.Date(2024, time.February, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		query     string
		wantStart time.Time
		wantEnd   time.Time
		wantErr   bool
	}{
		{
			name:      "defaults to current month",
			wantStart: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, time.February, 29, 23, 59, 59, 999999999, time.UTC),
		},
		{
			name:      "explicit month",
			query:     "month=2023-12",
			wantStart: time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2023, time.December, 31, 23, 59, 59, 999999999, time.UTC),
		},
		{
			name:      "end date override only",
			query:     "endDate=2024-02-15",
			wantStart: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, time.February, 15, 23, 59, 59, 999999999, time.UTC),
		},
		{name: "malformed month", query: "month=02-2024", wantErr: true},
		{name: "start after end", query: "startDate=2024-02-20&endDate=2024-02-01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newJSONContext(e, http.MethodGet, "/?"+tt.query, nil)

			period, err := parsePeriod(c, now)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, period.Start)
			assert.Equal(t, tt.wantEnd, period.End)
		})
	}
}

func TestParseDecimalParam(t *testing.T) {
	e := echo.New()

	c, _ := newJSONContext(e, http.MethodGet, "/", nil)
	value, err := parseDecimalParam(c, "partTimeIncome")
	require.NoError(t, err)
	assert.Nil(t, value)

	c, _ = newJSONContext(e, http.MethodGet, "/?partTimeIncome=1200.75", nil)
	value, err = parseDecimalParam(c, "partTimeIncome")
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, "1200.75", value.String())

	c, _ = newJSONContext(e, http.MethodGet, "/?partTimeIncome=lots", nil)
	_, err = parseDecimalParam(c, "partTimeIncome")
	assert.EqualError(t, err, "partTimeIncome must be a number")
}

func TestGetUserIDFromContext(t *testing.T) {
	e := echo.New()

	c, _ := newJSONContext(e, http.MethodGet, "/", nil)
	_, err := getUserIDFromContext(c)
	assert.ErrorIs(t, err, ErrUnauthorized)

	c.Set("user_id", "not-a-uuid")
	_, err = getUserIDFromContext(c)
	assert.ErrorIs(t, err, ErrUnauthorized)

	id := uuid.New()
	withUser(c, id)
	got, err := getUserIDFromContext(c)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestGetClientIP(t *testing.T) {
	e := echo.New()

	c, _ := newJSONContext(e, http.MethodGet, "/", nil)
	c.Request().Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", getClientIP(c))

	c, _ = newJSONContext(e, http.MethodGet, "/", nil)
	c.Request().Header.Set("X-Real-IP", "198.51.100.4")
	assert.Equal(t, "198.51.100.4", getClientIP(c))
}

func TestValidationDetail(t *testing.T) {
	err := fmt.Errorf("%w: %w", services.ErrValidation, errors.New("amount must be positive"))
	assert.Equal(t, "amount must be positive", validationDetail(err))
}
