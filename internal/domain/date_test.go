package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-11-19")
	assert.NoError(t, err)
	assert.Equal(t, DateOf(2025, time.November, 19), d)

	_, err = ParseDate("19/11/2025")
	assert.Error(t, err)
}

func TestDate_Arithmetic(t *testing.T) {
	d := DateOf(2025, time.March, 1)

	assert.Equal(t, "2025-02-28", d.AddDays(-1).String())
	assert.Equal(t, "2025-03-01", DateOf(2025, time.March, 17).FirstOfMonth().String())
	assert.True(t, d.Before(d.AddDays(1)))
	assert.True(t, d.AddDays(1).After(d))
}

func TestToday_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	now := time.Date(2025, time.November, 19, 22, 30, 0, 0, time.UTC)

	assert.Equal(t, "2025-11-20", Today(now, loc).String())
	assert.Equal(t, "2025-11-19", Today(now, nil).String())
}

func TestDate_JSON(t *testing.T) {
	payload := struct {
		Date Date `json:"date"`
	}{Date: DateOf(2025, time.December, 1)}

	data, err := json.Marshal(payload)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"date":"2025-12-01"}`, string(data))

	var decoded struct {
		Date Date `json:"date"`
	}
	assert.NoError(t, json.Unmarshal([]byte(`{"date":"2025-12-05"}`), &decoded))
	assert.Equal(t, DateOf(2025, time.December, 5), decoded.Date)
}

func TestDate_Scan(t *testing.T) {
	var d Date

	assert.NoError(t, d.Scan(time.Date(2025, time.November, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-11-10", d.String())

	assert.NoError(t, d.Scan([]byte("2025-11-11")))
	assert.Equal(t, "2025-11-11", d.String())

	assert.Error(t, d.Scan(42))
}
