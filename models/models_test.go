package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	var tour Tournament
	err := json.Unmarshal([]byte(`{"tournament_name":"Cup","start_date":"2026-10-01","end_date":"2026-10-15","prize_pool":500}`), &tour)
	require.NoError(t, err)
	assert.Equal(t, NewDate(2026, time.October, 1), tour.StartDate)
	assert.Equal(t, "2026-10-15", tour.EndDate.String())

	out, err := json.Marshal(tour)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"start_date":"2026-10-01"`)

	err = json.Unmarshal([]byte(`{"start_date":"01/10/2026"}`), &tour)
	assert.Error(t, err)
	err = json.Unmarshal([]byte(`{"start_date":20261001}`), &tour)
	assert.Error(t, err)
}

func TestDateScan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2026, time.March, 4, 0, 0, 0, 0, time.FixedZone("", 0))))
	assert.Equal(t, "2026-03-04", d.String())

	require.NoError(t, d.Scan("2026-05-06"))
	assert.Equal(t, "2026-05-06", d.String())

	require.NoError(t, d.Scan([]byte("2026-07-08T00:00:00Z")))
	assert.Equal(t, "2026-07-08", d.String())

	assert.Error(t, d.Scan(42))
	assert.Error(t, d.Scan("not a date"))

	v, err := NewDate(2026, time.December, 31).Value()
	require.NoError(t, err)
	assert.Equal(t, "2026-12-31", v)
}

func TestDateOfKeepsCalendarDay(t *testing.T) {
	late := time.Date(2026, time.October, 15, 23, 59, 0, 0, time.Local)
	assert.Equal(t, "2026-10-15", DateOf(late).String())
	assert.Equal(t, "2026-10-14", DateOf(late).AddDays(-1).String())
}

func TestFlexNumbers(t *testing.T) {
	var in struct {
		ID    FlexInt   `json:"id"`
		Prize FlexFloat `json:"prize"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"id":5,"prize":1500.5}`), &in))
	assert.Equal(t, FlexInt(5), in.ID)
	assert.Equal(t, FlexFloat(1500.5), in.Prize)

	require.NoError(t, json.Unmarshal([]byte(`{"id":" 7 ","prize":"250"}`), &in))
	assert.Equal(t, FlexInt(7), in.ID)
	assert.Equal(t, FlexFloat(250), in.Prize)

	assert.Error(t, json.Unmarshal([]byte(`{"id":"seven"}`), &in))
	assert.Error(t, json.Unmarshal([]byte(`{"id":1.5}`), &in))
	assert.Error(t, json.Unmarshal([]byte(`{"prize":"lots"}`), &in))
}
