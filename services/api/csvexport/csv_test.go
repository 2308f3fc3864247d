package csvexport

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquaflow/water-quality-viewer/services/api/db"
	"github.com/aquaflow/water-quality-viewer/services/api/quality"
)

func loc(s string) *string { return &s }

func sampleReadings() []db.Reading {
	ts := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	return []db.Reading{
		{
			StationID: "station_a", StationName: "Estação A", Location: loc("Rio Principal"),
			Timestamp: ts,
			PH:        7.13, Turbidity: 2.5, DissolvedOxygen: 8.01, Temperature: 22.4,
			Conductivity: 213.7, TotalDissolvedSolids: 151.2, Nitrates: 3.3,
			Status: "normal",
		},
		{
			StationID: "station_b", StationName: "Estação B", Location: loc("Afluente Norte"),
			Timestamp: ts.Add(time.Hour),
			PH:        9.1, Turbidity: 5.5, DissolvedOxygen: 5.2, Temperature: 31.0,
			Conductivity: 410.0, TotalDissolvedSolids: 180.0, Nitrates: 11.0,
			Status: "critical",
		},
	}
}

func TestFilename(t *testing.T) {
	ts := time.Date(2026, 8, 30, 15, 45, 0, 0, time.UTC)
	assert.Equal(t, "water_quality_data_20260830_154500.csv", Filename(ts))
}

func TestColumnsDefaultAndSelection(t *testing.T) {
	all := Columns(nil)
	assert.Equal(t, "timestamp", all[0])
	assert.Equal(t, "status", all[len(all)-1])
	assert.Len(t, all, 3+len(quality.Parameters())+1)

	// Selection keeps canonical order regardless of request order.
	sel := Columns([]string{quality.ParamTemperature, quality.ParamPH})
	assert.Equal(t, []string{"timestamp", "station", "location", "ph", "temperature", "status"}, sel)
}

func TestWriteRoundTrip(t *testing.T) {
	readings := sampleReadings()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, readings, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(readings)+1)
	assert.Equal(t, Columns(nil), records[0])

	header := records[0]
	for i, r := range readings {
		row := records[i+1]
		got := map[string]string{}
		for j, col := range header {
			got[col] = row[j]
		}

		parsedTS, err := time.Parse(time.RFC3339, got["timestamp"])
		require.NoError(t, err)
		assert.True(t, parsedTS.Equal(r.Timestamp))
		assert.Equal(t, r.StationName, got["station"])
		assert.Equal(t, *r.Location, got["location"])
		assert.Equal(t, r.Status, got["status"])

		for _, p := range quality.Parameters() {
			want, _ := r.Value(p)
			parsed, err := strconv.ParseFloat(got[p], 64)
			require.NoError(t, err)
			assert.Equal(t, want, parsed, "parameter %s row %d", p, i)
		}
	}
}

func TestWriteParameterSelection(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleReadings(), []string{quality.ParamPH}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"timestamp", "station", "location", "ph", "status"}, records[0])
	require.Len(t, records[1], 5)
	assert.Equal(t, "7.13", records[1][3])
}

func TestWriteEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1) // header only
}

func TestWriteNilLocation(t *testing.T) {
	r := sampleReadings()[0]
	r.Location = nil

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []db.Reading{r}, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "", records[1][2])
}
